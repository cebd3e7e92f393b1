package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingTier selects which unit price applies to an order.
type PricingTier string

const (
	TierStandard PricingTier = "standard"
	TierInHouse  PricingTier = "in-house" // staff / on-premises pricing
)

// MenuItem is the catalog entry as served by the upstream menu endpoints.
type MenuItem struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	Category     string           `json:"category"`
	Price        decimal.Decimal  `json:"price"`
	InHousePrice *decimal.Decimal `json:"inhouse_price,omitempty"`
	Stock        int              `json:"stock"`
	Available    bool             `json:"available"`
	Rating       *float64         `json:"rating,omitempty"` // 0–5, absent until first review
	PrepTimeMin  *int             `json:"prep_time_min,omitempty"`
	Portion      *string          `json:"portion,omitempty"`
}

// EffectiveUnitPrice returns the in-house price when the viewing context is
// in-house and one exists, else the base price.
func (m MenuItem) EffectiveUnitPrice(tier PricingTier) decimal.Decimal {
	if tier == TierInHouse && m.InHousePrice != nil {
		return *m.InHousePrice
	}
	return m.Price
}

// Orderable reports whether the item can currently be added to a cart.
func (m MenuItem) Orderable() bool {
	return m.Available && m.Stock > 0
}
