package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusReporter is implemented by optional dependencies such as the cache.
type StatusReporter interface {
	GetStatus(ctx context.Context) map[string]interface{}
}

type HealthController struct {
	ping  func(ctx context.Context) error
	cache StatusReporter
	mode  string
}

// NewHealthController accepts a nil cache.
func NewHealthController(ping func(ctx context.Context) error, cache StatusReporter, mode string) *HealthController {
	return &HealthController{ping: ping, cache: cache, mode: mode}
}

// Index godoc
// @Summary Service status
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (hc *HealthController) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":  "Exercise log API is running",
		"version":  "1.0.0",
		"database": hc.mode,
		"cache":    hc.cache != nil,
	})
}

// Health godoc
// @Summary Dependency health
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (hc *HealthController) Health(c *gin.Context) {
	ctx := c.Request.Context()
	response := gin.H{
		"database_health": true,
		"mode":            hc.mode,
	}
	status := http.StatusOK

	if err := hc.ping(ctx); err != nil {
		response["database_health"] = false
		response["error"] = err.Error()
		status = http.StatusServiceUnavailable
	}
	if hc.cache != nil {
		response["cache"] = hc.cache.GetStatus(ctx)
	}

	c.JSON(status, response)
}
