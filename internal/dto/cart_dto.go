package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/cart"
)

// AddToCartRequest adds qty of a menu item to the session cart. Non-positive
// quantities are rejected here, before the store is touched.
type AddToCartRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required,uuid"`
	Quantity   int    `json:"quantity"     validate:"required,min=1"`
}

// UpdateQuantityRequest replaces a line's quantity; zero or less removes the
// line, so no lower bound is enforced.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetTierRequest switches the session between pricing tiers.
type SetTierRequest struct {
	Tier string `json:"tier" validate:"required,oneof=standard in-house"`
}

// CartResponse is the session cart view returned after every mutation.
type CartResponse struct {
	Lines []cart.CartLine `json:"lines"`
	Total decimal.Decimal `json:"total"`
	Tier  string          `json:"pricing_tier"`
	User  *cart.User      `json:"user,omitempty"`
}

// NewCartResponse projects a session onto the wire shape (token excluded).
func NewCartResponse(s *cart.Session) CartResponse {
	return CartResponse{
		Lines: s.Lines,
		Total: s.Total,
		Tier:  string(s.Tier),
		User:  s.User,
	}
}
