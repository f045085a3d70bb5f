package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unilodge/rental-portal/internal/service"
	"github.com/unilodge/rental-portal/internal/view"
)

// PropertyHandler serves the read-only property listing page.
type PropertyHandler struct {
	propertyService *service.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(propertyService *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// ListProperties godoc
// GET /properties
// Renders all properties with owners and manager.
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	properties, err := h.propertyService.ListProperties(c.Request.Context())
	if err != nil {
		view.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	view.HTML(c, http.StatusOK, "properties.tmpl", gin.H{"Properties": properties})
}
