package memory

import (
	"github.com/shopspring/decimal"

	"optiondesk/internal/models"
)

// Demo builds a store preloaded with the dashboard's canned data set: three
// underlyings, two open positions, one funded balance record and one user.
// The user starts without owned positions; the seeded positions live in the
// global book only.
func Demo(userID, balanceID string, seedBalance decimal.Decimal) *Store {
	s := New()
	s.underlyings = []models.Underlying{
		{ID: "b7e6e2e2-1c2a-4b1a-8e2a-1e2a1e2a1e2a", Name: "NIFTY50"},
		{ID: "a1b2c3d4-e5f6-7a8b-9c0d-1e2f3a4b5c6d", Name: "ASIANPAINT"},
		{ID: "c0ffee00-1234-5678-9abc-def012345678", Name: "RELIANCE"},
	}
	s.positions = []models.Position{
		{
			ID:              "1",
			Strike:          decimal.NewFromInt(20000),
			InstrumentType:  models.InstrumentCall,
			TransactionType: models.TransactionBuy,
			NetQuantity:     100,
			NetPrice:        decimal.NewFromInt(100),
			Timestamp:       "2021-01-01 12:00:00",
			Expiry:          models.Expiry{Date: 1, Month: 1, Year: 2026},
			UnderlyingID:    "1",
		},
		{
			ID:              "2",
			Strike:          decimal.NewFromInt(20000),
			InstrumentType:  models.InstrumentPut,
			TransactionType: models.TransactionBuy,
			NetQuantity:     100,
			NetPrice:        decimal.NewFromInt(100),
			Timestamp:       "2021-01-01 12:00:00",
			Expiry:          models.Expiry{Date: 1, Month: 1, Year: 2026},
			UnderlyingID:    "1",
		},
	}
	s.balances = []models.BankBalance{
		{ID: balanceID, BankBalance: seedBalance},
	}
	s.users = []models.User{
		{ID: userID, PositionIDs: []string{}, BankBalanceID: balanceID},
	}
	return s
}
