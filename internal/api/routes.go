package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the API endpoints.
func RegisterRoutes(router *gin.Engine, h *Handlers) {
	api := router.Group("/api")
	{
		api.POST("/analyze", h.Analyze)
		api.POST("/redesign", h.Redesign)
		api.GET("/providers", h.Providers)

		api.PUT("/keys/:provider", h.SaveKey)
		api.DELETE("/keys/:provider", h.DeleteKey)

		api.GET("/analyses", h.ListAnalyses)
		api.GET("/analyses/:id", h.GetAnalysis)
		api.GET("/analyses/:id/redesigns", h.ListRedesigns)
		api.GET("/redesigns/:id", h.GetRedesign)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
