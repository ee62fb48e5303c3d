package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler holds shared dependencies (config) for all route handlers.
// The AI config carries the base URL so tests can point it at a mock server.
type Handler struct {
	aiConfig   aiConfig
	monitoring monitoringConfig
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if h.monitoring.PrometheusEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := router.Group("/api/fitness")
	api.POST("/metrics", h.calculateMetrics)
	api.GET("/methods", h.listMethods)
	api.GET("/methods/:key", h.getMethod)
	api.POST("/plan", h.generatePlan)
}
