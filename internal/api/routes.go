package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {

	// Submission form for browser/webview callers
	router.GET("/", h.ShowForm)

	// --- Project Lifecycle ---
	projectGroup := router.Group("/project")
	{
		projectGroup.POST("/generate", h.GenerateProject) // Generate a new project from a description
	}

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
