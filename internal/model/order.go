package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MealTime classifies when the order is to be fulfilled.
type MealTime string

const (
	MealBreakfast MealTime = "breakfast"
	MealLunch     MealTime = "lunch"
	MealDinner    MealTime = "dinner"
	MealPreOrder  MealTime = "pre-order"
)

// CreatedBy records which channel placed the order.
type CreatedBy string

const (
	CreatedByCustomer CreatedBy = "customer"
	CreatedByAdmin    CreatedBy = "admin"
)

// OrderItem is a line on an order. Name and UnitPrice are snapshots taken at
// order time — the referenced menu item may change or disappear later.
type OrderItem struct {
	MenuItemID uuid.UUID       `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

// Order mirrors the upstream order record. The server owns every mutation;
// this service only reads it or requests a transition and re-fetches.
type Order struct {
	ID            uuid.UUID       `json:"id"`
	Number        string          `json:"order_number"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	Items         []OrderItem     `json:"items"`
	MealTime      MealTime        `json:"meal_time"`
	Status        OrderStatus     `json:"status"`
	Total         decimal.Decimal `json:"total"`
	ScheduledFor  *time.Time      `json:"scheduled_for,omitempty"` // pre-orders only
	Instructions  string          `json:"instructions,omitempty"`
	ReceiptEmail  string          `json:"receipt_email,omitempty"` // emailed a receipt on completion
	Tier          PricingTier     `json:"pricing_tier"`
	CreatedBy     CreatedBy       `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
}
