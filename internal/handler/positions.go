package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"optiondesk/internal/models"
	"optiondesk/internal/service"
)

type PositionHandler struct {
	Ledger *service.LedgerService
}

func (h *PositionHandler) Register(r *gin.Engine) {
	g := r.Group("/api/positions")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PATCH("", h.update)
	g.DELETE("", h.delete)
}

type expiryRequest struct {
	Date  int `json:"date" binding:"required"`
	Month int `json:"month" binding:"required"`
	Year  int `json:"year" binding:"required"`
}

type positionRequest struct {
	Strike          decimal.Decimal `json:"strike" binding:"required"`
	InstrumentType  string          `json:"instrument_type" binding:"required,oneof=CE PE"`
	TransactionType string          `json:"transaction_type" binding:"required,oneof=BUY SELL"`
	NetQuantity     int64           `json:"net_quantity" binding:"required"`
	NetPrice        decimal.Decimal `json:"net_price" binding:"required"`
	Timestamp       string          `json:"timestamp"`
	Expiry          expiryRequest   `json:"expiry" binding:"required"`
	UnderlyingID    string          `json:"underlyingId" binding:"required"`
}

func (r *positionRequest) toModel(id string) models.Position {
	return models.Position{
		ID:              id,
		Strike:          r.Strike,
		InstrumentType:  r.InstrumentType,
		TransactionType: r.TransactionType,
		NetQuantity:     r.NetQuantity,
		NetPrice:        r.NetPrice,
		Timestamp:       r.Timestamp,
		Expiry:          models.Expiry{Date: r.Expiry.Date, Month: r.Expiry.Month, Year: r.Expiry.Year},
		UnderlyingID:    r.UnderlyingID,
	}
}

type updatePositionRequest struct {
	ID string `json:"id" binding:"required"`
	positionRequest
}

type deletePositionRequest struct {
	ID string `json:"id" binding:"required"`
}

// @Summary List positions
// @Tags positions
// @Success 200 {object} handler.apiResponse
// @Router /api/positions [get]
func (h *PositionHandler) list(c *gin.Context) {
	items, err := h.Ledger.GetAllPositions(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	Ok(c, items, nil)
}

func (h *PositionHandler) get(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	item, err := h.Ledger.GetPositionByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "position not found", nil)
		return
	}
	Ok(c, item, nil)
}

// @Summary Create a position and apply its balance effect
// @Tags positions
// @Success 200 {object} handler.apiResponse
// @Router /api/positions [post]
func (h *PositionHandler) create(c *gin.Context) {
	var req positionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	created, err := h.Ledger.AddPosition(c.Request.Context(), req.toModel(""))
	if err != nil {
		fail(c, err)
		return
	}
	Ok(c, created, nil)
}

// @Summary Update a position, reversing and reapplying its balance effect
// @Tags positions
// @Success 200 {object} handler.apiResponse
// @Router /api/positions [patch]
func (h *PositionHandler) update(c *gin.Context) {
	var req updatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	updated, err := h.Ledger.UpdatePosition(c.Request.Context(), req.toModel(req.ID))
	if err != nil {
		fail(c, err)
		return
	}
	Ok(c, updated, nil)
}

// @Summary Delete a position (balance effect is kept)
// @Tags positions
// @Success 200 {object} handler.apiResponse
// @Router /api/positions [delete]
func (h *PositionHandler) delete(c *gin.Context) {
	var req deletePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	deleted, err := h.Ledger.DeletePosition(c.Request.Context(), req.ID)
	if err != nil {
		fail(c, err)
		return
	}
	Ok(c, deleted, nil)
}
