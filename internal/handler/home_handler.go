package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unilodge/rental-portal/internal/service"
	"github.com/unilodge/rental-portal/internal/view"
)

// HomeHandler serves the landing page with the average rent overview.
type HomeHandler struct {
	propertyService *service.PropertyService
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(propertyService *service.PropertyService) *HomeHandler {
	return &HomeHandler{propertyService: propertyService}
}

// Home godoc
// GET /
// Renders navigation and the average monthly rent per property type.
func (h *HomeHandler) Home(c *gin.Context) {
	rents, err := h.propertyService.AverageRents(c.Request.Context())
	if err != nil {
		view.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	view.HTML(c, http.StatusOK, "home.tmpl", gin.H{"AverageRents": rents})
}
