package models

import (
	"github.com/shopspring/decimal"
)

const (
	InstrumentCall = "CE"
	InstrumentPut  = "PE"

	TransactionBuy  = "BUY"
	TransactionSell = "SELL"
)

// Expiry is a plain date triple. No calendar validation is applied;
// the dashboard displays it verbatim.
type Expiry struct {
	Date  int `json:"date"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Position is one simulated option leg. JSON field names follow the
// dashboard wire format.
type Position struct {
	ID              string          `json:"id"`
	Strike          decimal.Decimal `json:"strike"`
	InstrumentType  string          `json:"instrument_type"`
	TransactionType string          `json:"transaction_type"`
	NetQuantity     int64           `json:"net_quantity"`
	NetPrice        decimal.Decimal `json:"net_price"`
	Timestamp       string          `json:"timestamp"`
	Expiry          Expiry          `json:"expiry"`
	UnderlyingID    string          `json:"underlyingId"`
}
