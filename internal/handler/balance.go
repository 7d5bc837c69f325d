package handler

import (
	"github.com/gin-gonic/gin"

	"optiondesk/internal/service"
)

type BalanceHandler struct {
	Ledger *service.LedgerService
}

func (h *BalanceHandler) Register(r *gin.Engine) {
	r.GET("/api/bankbalance", h.get)
}

// @Summary Bank balance of the default account
// @Tags balance
// @Success 200 {object} handler.apiResponse
// @Router /api/bankbalance [get]
func (h *BalanceHandler) get(c *gin.Context) {
	bal, err := h.Ledger.Balance(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	Ok(c, bal, nil)
}
