package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"optiondesk/internal/service"
)

type MarketHandler struct {
	Market *service.MarketDataService
	Ledger *service.LedgerService
}

func (h *MarketHandler) Register(r *gin.Engine) {
	r.GET("/api/cmp", h.cmp)
	r.GET("/api/underlyings", h.underlyings)
	r.GET("/api/time", h.currentTime)

	g := r.Group("/api/strikes")
	g.GET("", h.strikes)
	g.GET("/pnl", h.strikePnL)
}

// @Summary Current market price of an underlying
// @Tags market
// @Param underlyingId query string true "underlying id"
// @Success 200 {object} handler.apiResponse
// @Router /api/cmp [get]
func (h *MarketHandler) cmp(c *gin.Context) {
	id := strings.TrimSpace(c.Query("underlyingId"))
	if id == "" {
		Error(c, http.StatusBadRequest, "underlyingId is required", nil)
		return
	}
	cmp, err := h.Market.CMPByUnderlyingID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	Ok(c, gin.H{"cmp": cmp}, nil)
}

// @Summary List underlyings
// @Tags market
// @Success 200 {object} handler.apiResponse
// @Router /api/underlyings [get]
func (h *MarketHandler) underlyings(c *gin.Context) {
	items, err := h.Market.Repo.ListUnderlyings(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	Ok(c, items, nil)
}

// @Summary Server time for the dashboard clock
// @Tags market
// @Success 200 {object} handler.apiResponse
// @Router /api/time [get]
func (h *MarketHandler) currentTime(c *gin.Context) {
	Ok(c, gin.H{"currentTime": time.Now().Format(time.RFC3339)}, nil)
}

// @Summary Strike ladder around the CMP
// @Tags market
// @Param underlyingId query string true "underlying id"
// @Param cmp query number false "override cmp; defaults to the underlying's quote"
// @Success 200 {object} handler.apiResponse
// @Router /api/strikes [get]
func (h *MarketHandler) strikes(c *gin.Context) {
	cmp, ok := h.resolveCMP(c)
	if !ok {
		return
	}
	Ok(c, h.Market.AvailableStrikes(cmp), nil)
}

// @Summary Strike ladder merged with per-strike PnL of the current book
// @Tags market
// @Param underlyingId query string true "underlying id"
// @Success 200 {object} handler.apiResponse
// @Router /api/strikes/pnl [get]
func (h *MarketHandler) strikePnL(c *gin.Context) {
	cmp, ok := h.resolveCMP(c)
	if !ok {
		return
	}
	positions, err := h.Ledger.GetAllPositions(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	strikes := h.Market.AvailableStrikes(cmp)
	Ok(c, h.Market.StrikePnL(positions, strikes), nil)
}

// resolveCMP takes an explicit cmp query value when present, otherwise the
// underlying's quoted price. Writes the error response on failure.
func (h *MarketHandler) resolveCMP(c *gin.Context) (cmp decimal.Decimal, ok bool) {
	if d := decimalQueryPtr(c, "cmp"); d != nil {
		return *d, true
	}
	id := strings.TrimSpace(c.Query("underlyingId"))
	if id == "" {
		Error(c, http.StatusBadRequest, "underlyingId is required", nil)
		return decimal.Zero, false
	}
	quoted, err := h.Market.CMPByUnderlyingID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return decimal.Zero, false
	}
	return quoted, true
}
