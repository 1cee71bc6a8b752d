package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthCheck returns the health status of the service
// @Summary Health check
// @Description Returns the health status of the marketplace service
// @Tags health
// @Produce json
// @Success 200 {object} object{status=string,timestamp=string,service=string}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "drinks-marketplace-service",
		"version":   "1.0.0",
	})
}

// ReadinessCheck returns the readiness status of the service
// @Summary Readiness check
// @Description Returns the readiness status of the marketplace service
// @Tags health
// @Produce json
// @Success 200 {object} object{status=string,timestamp=string,service=string}
// @Failure 503 {object} object{status=string}
// @Router /ready [get]
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "not ready",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "drinks-marketplace-service",
		"version":   "1.0.0",
	})
}
