package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"optiondesk/internal/service"
)

// UserHandler serves the user-scoped view. There is no auth: the acting
// user id comes from config, the way the original dashboard pinned user "1".
type UserHandler struct {
	Account *service.AccountService
	UserID  string
}

func (h *UserHandler) Register(r *gin.Engine) {
	r.GET("/api/user", h.get)

	g := r.Group("/api/user/positions")
	g.GET("", h.listPositions)
	g.POST("", h.addPosition)
	g.PATCH("", h.updatePosition)
	g.DELETE("", h.deletePosition)

	r.GET("/api/user/bankbalance", h.bankBalance)
	r.PUT("/api/user/bankbalance", h.setBankBalance)
}

// @Summary User with positions and bank balance
// @Tags user
// @Success 200 {object} handler.apiResponse
// @Router /api/user [get]
func (h *UserHandler) get(c *gin.Context) {
	ctx := c.Request.Context()
	user, err := h.Account.GetUser(ctx, h.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	if user == nil {
		Error(c, http.StatusNotFound, "user not found", nil)
		return
	}
	positions, err := h.Account.UserPositions(ctx, h.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	bal, err := h.Account.UserBankBalance(ctx, h.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	Ok(c, gin.H{"user": user, "positions": positions, "bankBalance": bal}, nil)
}

func (h *UserHandler) listPositions(c *gin.Context) {
	items, err := h.Account.UserPositions(c.Request.Context(), h.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	Ok(c, items, nil)
}

func (h *UserHandler) addPosition(c *gin.Context) {
	var req positionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	created, err := h.Account.AddUserPosition(c.Request.Context(), h.UserID, req.toModel(""))
	if err != nil {
		fail(c, err)
		return
	}
	Ok(c, created, nil)
}

func (h *UserHandler) updatePosition(c *gin.Context) {
	var req updatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	updated, err := h.Account.UpdateUserPosition(c.Request.Context(), h.UserID, req.toModel(req.ID))
	if err != nil {
		fail(c, err)
		return
	}
	Ok(c, updated, nil)
}

func (h *UserHandler) deletePosition(c *gin.Context) {
	var req deletePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	deleted, err := h.Account.DeleteUserPosition(c.Request.Context(), h.UserID, req.ID)
	if err != nil {
		fail(c, err)
		return
	}
	Ok(c, deleted, nil)
}

// @Summary Bank balance of the acting user
// @Tags user
// @Success 200 {object} handler.apiResponse
// @Router /api/user/bankbalance [get]
func (h *UserHandler) bankBalance(c *gin.Context) {
	bal, err := h.Account.UserBankBalance(c.Request.Context(), h.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	Ok(c, bal, nil)
}

type setBankBalanceRequest struct {
	BankBalance decimal.Decimal `json:"bankBalance" binding:"required"`
}

func (h *UserHandler) setBankBalance(c *gin.Context) {
	var req setBankBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	bal, err := h.Account.SetUserBankBalance(c.Request.Context(), h.UserID, req.BankBalance)
	if err != nil {
		fail(c, err)
		return
	}
	Ok(c, bal, nil)
}
