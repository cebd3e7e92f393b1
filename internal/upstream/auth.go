package upstream

import (
	"context"
)

// AuthUser is the authenticated principal returned by the auth endpoints.
type AuthUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"` // admin | employee | customer
}

// AuthToken pairs a bearer token with its principal.
type AuthToken struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates an admin/staff user.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthToken, error) {
	var out AuthToken
	err := c.post(ctx, "/auth/login", "", loginRequest{Username: username, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateOTP asks the upstream to send a one-time code to the phone.
func (c *Client) GenerateOTP(ctx context.Context, phone string) error {
	return c.post(ctx, "/auth/otp/generate", "", map[string]string{"phone": phone}, nil)
}

// VerifyOTP exchanges a one-time code for a customer token.
func (c *Client) VerifyOTP(ctx context.Context, phone, code string) (*AuthToken, error) {
	var out AuthToken
	err := c.post(ctx, "/auth/otp/verify", "", map[string]string{"phone": phone, "otp": code}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
