package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"optiondesk/internal/repository"
)

type HealthHandler struct {
	Repo repository.Repository
}

func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/healthz", h.health)
	r.GET("/readyz", h.ready)
}

// @Summary Health check
// @Tags health
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *HealthHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Readiness check
// @Tags health
// @Success 200 {object} map[string]string
// @Router /readyz [get]
func (h *HealthHandler) ready(c *gin.Context) {
	if h.Repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "store_missing"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
