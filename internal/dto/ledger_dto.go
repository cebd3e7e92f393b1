package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/receipt"
)

// LedgerQuery is bound from the admin ledger lookup endpoints. Month/Year
// apply to employee ledgers only.
type LedgerQuery struct {
	Phone string `form:"phone" validate:"required,min=7,max=15"`
	Month int    `form:"month" validate:"omitempty,min=1,max=12"`
	Year  int    `form:"year"  validate:"omitempty,min=2020,max=2100"`
}

// SettlementRequest records a payment against a ledger.
type SettlementRequest struct {
	Phone  string          `json:"phone"  validate:"required,min=7,max=15"`
	Amount decimal.Decimal `json:"amount" validate:"required,gt=0"`
	Method string          `json:"method" validate:"required,oneof=cash card upi transfer"`
	Note   string          `json:"note"   validate:"max=200"`
	Month  int             `json:"month"  validate:"omitempty,min=1,max=12"`
	Year   int             `json:"year"   validate:"omitempty,min=2020,max=2100"`
}

// LedgerResponse pairs the raw ledger with the balance summary. The summary
// labels which source the balance figure came from.
type LedgerResponse struct {
	Ledger  model.Ledger           `json:"ledger"`
	Summary receipt.AccountSummary `json:"summary"`
}
