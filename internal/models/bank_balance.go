package models

import (
	"github.com/shopspring/decimal"
)

// BankBalance is a single cash balance record. The demo keeps exactly one,
// but balances are stored by id so each user can reference its own.
type BankBalance struct {
	ID          string          `json:"id"`
	BankBalance decimal.Decimal `json:"bankBalance"`
}
