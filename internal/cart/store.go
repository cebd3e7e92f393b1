package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
)

// ErrNotOrderable means the item is unavailable or out of stock.
var ErrNotOrderable = errors.New("item is not orderable")

// Store is the session-scoped cart state container. Every mutation loads the
// session, applies the change, recomputes the total, and writes through to
// durable storage before returning.
type Store struct {
	repo Repository
}

func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// Get rehydrates the session, creating an empty one when none exists.
// Rehydration reconciles a token that may still live under the legacy
// storage key: it is migrated into the session and the old key cleared.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	sess, err := s.repo.Load(ctx, id)
	if errors.Is(err, ErrSessionNotFound) {
		sess = NewSession(id)
	} else if err != nil {
		return nil, err
	}

	if sess.Token == "" {
		legacy, err := s.repo.LegacyToken(ctx, id)
		if err != nil {
			return nil, err
		}
		if legacy != "" {
			sess.Token = legacy
			if err := s.repo.Save(ctx, sess); err != nil {
				return nil, err
			}
			_ = s.repo.ClearLegacyToken(ctx, id)
		}
	}
	return sess, nil
}

// AddToCart merges qty of the item into the cart. Items that are unavailable
// or out of stock are rejected before any state changes.
func (s *Store) AddToCart(ctx context.Context, id string, item model.MenuItem, qty int) (*Session, error) {
	if !item.Orderable() {
		return nil, fmt.Errorf("%s: %w", item.Name, ErrNotOrderable)
	}
	return s.mutate(ctx, id, func(sess *Session) {
		sess.AddLine(item, qty)
	})
}

// RemoveFromCart drops the line for the item id; no-op if absent.
func (s *Store) RemoveFromCart(ctx context.Context, id string, itemID uuid.UUID) (*Session, error) {
	return s.mutate(ctx, id, func(sess *Session) {
		sess.RemoveLine(itemID)
	})
}

// UpdateQuantity replaces the line's quantity; qty <= 0 removes the line.
func (s *Store) UpdateQuantity(ctx context.Context, id string, itemID uuid.UUID, qty int) (*Session, error) {
	return s.mutate(ctx, id, func(sess *Session) {
		sess.SetQuantity(itemID, qty)
	})
}

// ClearCart empties the cart. Called on explicit clear and after a
// successful order placement.
func (s *Store) ClearCart(ctx context.Context, id string) (*Session, error) {
	return s.mutate(ctx, id, func(sess *Session) {
		sess.Clear()
	})
}

// SetTier switches between standard and in-house pricing and reprices.
func (s *Store) SetTier(ctx context.Context, id string, tier model.PricingTier) (*Session, error) {
	return s.mutate(ctx, id, func(sess *Session) {
		sess.SetTier(tier)
	})
}

// Login binds the authenticated user and token to the session and refreshes
// the customer data blob through the consolidated accessor.
func (s *Store) Login(ctx context.Context, id string, user User, token string) (*Session, error) {
	sess, err := s.mutate(ctx, id, func(sess *Session) {
		sess.User = &user
		sess.Token = token
	})
	if err != nil {
		return nil, err
	}
	cd := &CustomerData{Name: user.Name, Phone: user.Phone, Role: user.Role}
	if err := s.repo.SaveCustomerData(ctx, id, cd); err != nil {
		return nil, err
	}
	return sess, nil
}

// Logout clears user and token from both the session and durable storage,
// including the legacy token key.
func (s *Store) Logout(ctx context.Context, id string) (*Session, error) {
	sess, err := s.mutate(ctx, id, func(sess *Session) {
		sess.User = nil
		sess.Token = ""
	})
	if err != nil {
		return nil, err
	}
	_ = s.repo.ClearLegacyToken(ctx, id)
	return sess, nil
}

// CustomerProfile is the single read path for the legacy customer blob.
func (s *Store) CustomerProfile(ctx context.Context, id string) (*CustomerData, error) {
	return s.repo.CustomerData(ctx, id)
}

func (s *Store) mutate(ctx context.Context, id string, fn func(*Session)) (*Session, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	fn(sess)
	if err := s.repo.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}
