package upstream

import (
	"context"
	"net/url"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
)

// UserWithTotals is a user row decorated with ledger totals for the admin
// user listing.
type UserWithTotals struct {
	ID                  uuid.UUID       `json:"id"`
	Name                string          `json:"name"`
	Phone               string          `json:"phone"`
	Role                string          `json:"role"`
	TotalOrdersAmount   decimal.Decimal `json:"total_orders_amount"`
	TotalPaymentsAmount decimal.Decimal `json:"total_payments_amount"`
}

// UserOrdersWithLedger pairs a user's orders with their ledger summary.
type UserOrdersWithLedger struct {
	Orders []model.Order `json:"orders"`
	Ledger model.Ledger  `json:"ledger"`
}

// ListUsers returns all users with their running totals (admin).
func (c *Client) ListUsers(ctx context.Context, token string) ([]UserWithTotals, error) {
	var out []UserWithTotals
	if err := c.get(ctx, "/admin/users", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UsersByRole filters the user list by role (admin).
func (c *Client) UsersByRole(ctx context.Context, token, role string) ([]UserWithTotals, error) {
	q := url.Values{}
	q.Set("role", role)
	var out []UserWithTotals
	if err := c.get(ctx, "/admin/users", token, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateUser edits a user record (admin).
func (c *Client) UpdateUser(ctx context.Context, token string, user UserWithTotals) (*UserWithTotals, error) {
	var out UserWithTotals
	if err := c.put(ctx, "/admin/users/"+user.ID.String(), token, user, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes a user record (admin).
func (c *Client) DeleteUser(ctx context.Context, token string, id uuid.UUID) error {
	return c.delete(ctx, "/admin/users/"+id.String(), token)
}

// UserOrders returns a user's orders together with their ledger summary.
func (c *Client) UserOrders(ctx context.Context, token string, id uuid.UUID) (*UserOrdersWithLedger, error) {
	var out UserOrdersWithLedger
	if err := c.get(ctx, "/admin/users/"+id.String()+"/orders", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
