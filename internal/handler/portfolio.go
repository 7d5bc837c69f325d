package handler

import (
	"github.com/gin-gonic/gin"

	"optiondesk/internal/service"
)

type PortfolioHandler struct {
	Snapshots *service.PortfolioSnapshotService
}

func (h *PortfolioHandler) Register(r *gin.Engine) {
	r.GET("/api/portfolio/history", h.history)
}

// @Summary Portfolio snapshots, newest first
// @Tags portfolio
// @Param limit query int false "max entries (default 168)"
// @Success 200 {object} handler.apiResponse
// @Router /api/portfolio/history [get]
func (h *PortfolioHandler) history(c *gin.Context) {
	limit := intQuery(c, "limit", 168)
	items, err := h.Snapshots.History(c.Request.Context(), limit)
	if err != nil {
		fail(c, err)
		return
	}
	Ok(c, items, nil)
}
