package routes

import (
	"net/http"
	"time"

	"github.com/AbdullahKhetran/wellness-arcade/internal/api/dto"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/catalog"
	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check response structure
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`
	Timestamp time.Time `json:"timestamp" example:"2026-08-29T02:00:00Z"`
}

// SetupHealthRoutes registers health, ping and daily-tip endpoints
func SetupHealthRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
		})
	})

	router.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:    "ready",
			Timestamp: time.Now().UTC(),
		})
	})

	// @Summary Liveness probe used by the frontend
	// @Tags health
	// @Produce json
	// @Success 200 {object} map[string]string
	// @Router /api/ping [get]
	router.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "pong",
			"timestamp": time.Now().UTC(),
		})
	})

	// @Summary Get a random general wellness tip
	// @Tags health
	// @Produce json
	// @Success 200 {object} dto.DailyTipResponse
	// @Router /api/tip [get]
	router.GET("/api/tip", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.DailyTipResponse{Tip: catalog.RandomDailyTip()})
	})
}
