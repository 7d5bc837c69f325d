package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"optiondesk/internal/models"
	"optiondesk/internal/repository"
)

// Hardcoded demo prices. This map is the seam where a real market-data feed
// would be substituted.
var cmpByUnderlying = map[string]decimal.Decimal{
	"b7e6e2e2-1c2a-4b1a-8e2a-1e2a1e2a1e2a": decimal.NewFromInt(20000), // NIFTY50
	"a1b2c3d4-e5f6-7a8b-9c0d-1e2f3a4b5c6d": decimal.NewFromInt(3200),  // ASIANPAINT
	"c0ffee00-1234-5678-9abc-def012345678": decimal.NewFromInt(2800),  // RELIANCE
}

// MarketDataService answers CMP lookups and generates the strike ladder the
// dashboard plots against.
type MarketDataService struct {
	Repo repository.UnderlyingRepository

	// Ladder half-width and spacing. Non-positive values fall back to the
	// demo defaults (1000 / 100).
	Band decimal.Decimal
	Step decimal.Decimal
}

func (s *MarketDataService) CMPByUnderlyingID(ctx context.Context, id string) (decimal.Decimal, error) {
	cmp, ok := cmpByUnderlying[id]
	if !ok {
		return decimal.Zero, fmt.Errorf("cmp for underlying %s: %w", id, repository.ErrNotFound)
	}
	return cmp, nil
}

func (s *MarketDataService) CMPByUnderlyingName(ctx context.Context, name string) (decimal.Decimal, error) {
	u, err := s.Repo.GetUnderlyingByName(ctx, name)
	if err != nil {
		return decimal.Zero, err
	}
	if u == nil {
		return decimal.Zero, fmt.Errorf("underlying %q: %w", name, repository.ErrNotFound)
	}
	return s.CMPByUnderlyingID(ctx, u.ID)
}

// AvailableStrikes lists every multiple of step from
// floor((cmp-band)/step)*step to ceil((cmp+band)/step)*step inclusive,
// ascending. Pure function: same cmp, same ladder.
func (s *MarketDataService) AvailableStrikes(cmp decimal.Decimal) []decimal.Decimal {
	band := s.Band
	if !band.IsPositive() {
		band = decimal.NewFromInt(1000)
	}
	step := s.Step
	if !step.IsPositive() {
		step = decimal.NewFromInt(100)
	}
	minStrike := cmp.Sub(band).Div(step).Floor().Mul(step)
	maxStrike := cmp.Add(band).Div(step).Ceil().Mul(step)

	var strikes []decimal.Decimal
	for strike := minStrike; strike.LessThanOrEqual(maxStrike); strike = strike.Add(step) {
		strikes = append(strikes, strike)
	}
	return strikes
}

// StrikePnLPoint is one point of the dashboard's strike-vs-PnL chart.
type StrikePnLPoint struct {
	Strike decimal.Decimal `json:"strike"`
	PnL    decimal.Decimal `json:"pnl"`
}

// StrikePnL merges positions onto the strike ladder: per strike, BUY legs
// contribute -net_price and SELL legs +net_price; strikes with no position
// plot at zero.
func (s *MarketDataService) StrikePnL(positions []models.Position, strikes []decimal.Decimal) []StrikePnLPoint {
	bystrike := make(map[string]decimal.Decimal, len(positions))
	for i := range positions {
		p := &positions[i]
		key := p.Strike.String()
		bystrike[key] = bystrike[key].Add(balanceEffect(p))
	}
	out := make([]StrikePnLPoint, 0, len(strikes))
	for _, strike := range strikes {
		out = append(out, StrikePnLPoint{Strike: strike, PnL: bystrike[strike.String()]})
	}
	return out
}
