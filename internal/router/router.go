package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unilodge/rental-portal/internal/config"
	"github.com/unilodge/rental-portal/internal/handler"
	"github.com/unilodge/rental-portal/internal/view"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Home     *handler.HomeHandler
	Property *handler.PropertyHandler
	Group    *handler.GroupHandler
}

// SetupRouter configures the Gin engine: templates, static assets and
// the server-rendered page routes.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	router.LoadHTMLGlob(cfg.TemplateGlob)
	router.Static("/static", cfg.StaticDir)

	// Apply request ID middleware globally so every page can show it.
	router.Use(view.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── Pages ─────────────────────────────────────────────────────────
	router.GET("/", handlers.Home.Home)
	router.GET("/properties", handlers.Property.ListProperties)
	router.GET("/groups", handlers.Group.ListGroups)
	router.GET("/groups/detail", handlers.Group.ShowGroup)
	router.POST("/groups/detail", handlers.Group.UpdateGroup)

	return router
}
