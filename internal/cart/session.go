// Package cart owns the client-side cart/session state: line items, the
// derived total, and the authenticated user + token. Every mutation is
// written through to durable storage so a page reload loses nothing.
package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
)

// CartLine is a menu item snapshot plus a positive quantity. A cart holds at
// most one line per item id — adding again increments the quantity.
type CartLine struct {
	Item     model.MenuItem `json:"item"`
	Quantity int            `json:"quantity"`
}

// User is the authenticated principal bound to a session.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// Session is the mutable cart/session state. Total is always a pure
// derivation — recomputed after every mutation, never stored independently.
type Session struct {
	ID        string            `json:"id"`
	Lines     []CartLine        `json:"lines"`
	Total     decimal.Decimal   `json:"total"`
	Tier      model.PricingTier `json:"pricing_tier"`
	User      *User             `json:"user,omitempty"`
	Token     string            `json:"token,omitempty"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewSession returns an empty standard-tier session.
func NewSession(id string) *Session {
	return &Session{
		ID:    id,
		Lines: []CartLine{},
		Total: decimal.Zero,
		Tier:  model.TierStandard,
	}
}

// AddLine merges qty into an existing line for the item or appends a new one
// in display-insertion order. Non-positive quantities are a no-op — rejecting
// them is the API boundary's job.
func (s *Session) AddLine(item model.MenuItem, qty int) {
	if qty <= 0 {
		return
	}
	for i := range s.Lines {
		if s.Lines[i].Item.ID == item.ID {
			s.Lines[i].Quantity += qty
			s.recompute()
			return
		}
	}
	s.Lines = append(s.Lines, CartLine{Item: item, Quantity: qty})
	s.recompute()
}

// RemoveLine drops the line for the item id; no-op if absent.
func (s *Session) RemoveLine(itemID uuid.UUID) {
	for i := range s.Lines {
		if s.Lines[i].Item.ID == itemID {
			s.Lines = append(s.Lines[:i], s.Lines[i+1:]...)
			break
		}
	}
	s.recompute()
}

// SetQuantity replaces the line's quantity; qty <= 0 removes the line, so a
// zero or negative quantity never persists.
func (s *Session) SetQuantity(itemID uuid.UUID, qty int) {
	if qty <= 0 {
		s.RemoveLine(itemID)
		return
	}
	for i := range s.Lines {
		if s.Lines[i].Item.ID == itemID {
			s.Lines[i].Quantity = qty
			break
		}
	}
	s.recompute()
}

// Clear empties the cart and resets the total.
func (s *Session) Clear() {
	s.Lines = []CartLine{}
	s.recompute()
}

// SetTier switches the pricing tier and reprices the cart.
func (s *Session) SetTier(tier model.PricingTier) {
	s.Tier = tier
	s.recompute()
}

// Empty reports whether the cart holds no lines.
func (s *Session) Empty() bool {
	return len(s.Lines) == 0
}

func (s *Session) recompute() {
	total := decimal.Zero
	for _, line := range s.Lines {
		unit := line.Item.EffectiveUnitPrice(s.Tier)
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	s.Total = total
}
