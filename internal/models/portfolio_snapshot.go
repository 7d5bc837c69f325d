package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioSnapshot is a periodic record of account state, kept for the
// dashboard's history view.
type PortfolioSnapshot struct {
	TakenAt       time.Time       `json:"taken_at"`
	BankBalance   decimal.Decimal `json:"bank_balance"`
	OpenPositions int             `json:"open_positions"`
	NetPremium    decimal.Decimal `json:"net_premium"`
}
