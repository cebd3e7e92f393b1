package upstream

import (
	"context"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
)

// CustomerProfile is the self-service profile record.
type CustomerProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// CustomerLogin authenticates a customer by phone + password.
func (c *Client) CustomerLogin(ctx context.Context, phone, password string) (*AuthToken, error) {
	var out AuthToken
	body := map[string]string{"phone": phone, "password": password}
	if err := c.post(ctx, "/customers/login", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterCustomer creates a self-service account.
func (c *Client) RegisterCustomer(ctx context.Context, name, phone, email, password string) (*AuthToken, error) {
	var out AuthToken
	req := registerRequest{Name: name, Phone: phone, Email: email, Password: password}
	if err := c.post(ctx, "/customers/register", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProfile fetches the caller's profile.
func (c *Client) GetProfile(ctx context.Context, token string) (*CustomerProfile, error) {
	var out CustomerProfile
	if err := c.get(ctx, "/customers/me", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile updates name/email on the caller's profile.
func (c *Client) UpdateProfile(ctx context.Context, token string, profile CustomerProfile) (*CustomerProfile, error) {
	var out CustomerProfile
	if err := c.put(ctx, "/customers/me", token, profile, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword rotates the caller's password.
func (c *Client) ChangePassword(ctx context.Context, token, current, next string) error {
	body := map[string]string{"current_password": current, "new_password": next}
	return c.post(ctx, "/customers/me/password", token, body, nil)
}

// CustomerOrders lists the caller's own orders.
func (c *Client) CustomerOrders(ctx context.Context, token string) ([]model.Order, error) {
	var out []model.Order
	if err := c.get(ctx, "/customers/me/orders", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
