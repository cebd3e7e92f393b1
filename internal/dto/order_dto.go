package dto

// CheckoutRequest places the session cart as an order. ScheduledFor is
// required when meal_time is pre-order (RFC 3339).
type CheckoutRequest struct {
	CustomerName  string `json:"customer_name"  validate:"required,min=2,max=100"`
	CustomerPhone string `json:"customer_phone" validate:"required,min=7,max=15"`
	MealTime      string `json:"meal_time"      validate:"required,oneof=breakfast lunch dinner pre-order"`
	ScheduledFor  string `json:"scheduled_for"  validate:"omitempty"`
	Instructions  string `json:"instructions"   validate:"max=500"`
	// Email, when present, gets a receipt mailed once the order completes.
	Email string `json:"email" validate:"omitempty,email"`
}

// AdminOrderItem is one line of an admin-placed order.
type AdminOrderItem struct {
	MenuItemID string `json:"menu_item_id" validate:"required,uuid"`
	Quantity   int    `json:"quantity"     validate:"required,min=1"`
}

// AdminOrderRequest places an order on behalf of a walk-in or staff member,
// bypassing the session cart.
type AdminOrderRequest struct {
	CustomerName  string           `json:"customer_name"  validate:"required,min=2,max=100"`
	CustomerPhone string           `json:"customer_phone" validate:"required,min=7,max=15"`
	Items         []AdminOrderItem `json:"items"          validate:"required,min=1,dive"`
	MealTime      string           `json:"meal_time"      validate:"required,oneof=breakfast lunch dinner pre-order"`
	ScheduledFor  string           `json:"scheduled_for"  validate:"omitempty"`
	Instructions  string           `json:"instructions"   validate:"max=500"`
	Tier          string           `json:"pricing_tier"   validate:"required,oneof=standard in-house"`
}

// AdvanceStatusRequest moves an order one step along the flow. ReceiptEmail
// is attached to the bill print job fired when the order completes.
type AdvanceStatusRequest struct {
	ReceiptEmail string `json:"receipt_email" validate:"omitempty,email"`
}

// OrderLookupQuery is bound from GET /v1/orders/lookup.
type OrderLookupQuery struct {
	Phone string `form:"phone" validate:"required,min=7,max=15"`
}
