package upstream

import (
	"context"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
)

// SettlementRequest records a payment against a ledger.
type SettlementRequest struct {
	Phone  string          `json:"phone"`
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"` // cash | card | upi | transfer
	Note   string          `json:"note,omitempty"`

	// Billing period — employee settlements only
	Month int `json:"month,omitempty"`
	Year  int `json:"year,omitempty"`
}

// CustomerLedger looks up a customer's running account by phone.
func (c *Client) CustomerLedger(ctx context.Context, token, phone string) (*model.Ledger, error) {
	q := url.Values{}
	q.Set("phone", phone)
	var out model.Ledger
	if err := c.get(ctx, "/admin/ledgers/customer", token, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EmployeeLedger looks up an employee's account for a billing period.
func (c *Client) EmployeeLedger(ctx context.Context, token, phone string, month, year int) (*model.Ledger, error) {
	q := url.Values{}
	q.Set("phone", phone)
	q.Set("month", strconv.Itoa(month))
	q.Set("year", strconv.Itoa(year))
	var out model.Ledger
	if err := c.get(ctx, "/admin/ledgers/employee", token, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordSettlement posts a payment event. Uses the strict retry variant.
func (c *Client) RecordSettlement(ctx context.Context, token string, req SettlementRequest) (*model.Ledger, error) {
	var out model.Ledger
	if err := c.postStrict(ctx, "/admin/ledgers/settlements", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
