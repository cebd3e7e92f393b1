package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Settlement is a recorded payment event that reduces a ledger's balance.
type Settlement struct {
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"` // cash | card | upi | transfer
	Note       string          `json:"note,omitempty"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// Ledger is a running account of order charges versus recorded payments for
// a customer or employee. Balance is server-computed and authoritative when
// present; consumers fall back to max(orders − payments, 0) otherwise.
type Ledger struct {
	UserID              uuid.UUID        `json:"user_id"`
	Name                string           `json:"name"`
	Phone               string           `json:"phone"`
	TotalOrdersAmount   decimal.Decimal  `json:"total_orders_amount"`
	TotalPaymentsAmount decimal.Decimal  `json:"total_payments_amount"`
	Balance             *decimal.Decimal `json:"balance,omitempty"`
	Settlements         []Settlement     `json:"settlements,omitempty"`

	// Billing period — employee ledgers only
	Month int `json:"month,omitempty"`
	Year  int `json:"year,omitempty"`
}
