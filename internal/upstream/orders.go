package upstream

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
)

// OrderItemRequest is one line of an order placement.
type OrderItemRequest struct {
	MenuItemID uuid.UUID       `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// OrderRequest is the order placement payload. ScheduledFor marks a
// pre-order.
type OrderRequest struct {
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	Items         []OrderItemRequest `json:"items"`
	MealTime      model.MealTime     `json:"meal_time"`
	ScheduledFor  *time.Time         `json:"scheduled_for,omitempty"`
	Instructions  string             `json:"instructions,omitempty"`
	Tier          model.PricingTier  `json:"pricing_tier"`
	// ReceiptEmail is stored with the order and echoed back on reads, so
	// the bill print fired at completion can attach an emailed receipt.
	ReceiptEmail string `json:"receipt_email,omitempty"`
}

// OrderFilter narrows the admin order listing.
type OrderFilter struct {
	Channel string // customer | admin
	Status  model.OrderStatus
	Date    string // YYYY-MM-DD
}

// CreateOrder places a customer order. Uses the strict retry variant.
func (c *Client) CreateOrder(ctx context.Context, token string, req OrderRequest) (*model.Order, error) {
	var out model.Order
	if err := c.postStrict(ctx, "/orders", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminCreateOrder places an order on behalf of a walk-in or staff member.
func (c *Client) AdminCreateOrder(ctx context.Context, token string, req OrderRequest) (*model.Order, error) {
	var out model.Order
	if err := c.postStrict(ctx, "/admin/orders", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var out model.Order
	if err := c.get(ctx, "/orders/"+id.String(), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OrdersByPhone lists a customer's orders for the public lookup screen.
func (c *Client) OrdersByPhone(ctx context.Context, phone string) ([]model.Order, error) {
	q := url.Values{}
	q.Set("phone", phone)
	var out []model.Order
	if err := c.get(ctx, "/orders/lookup", "", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminListOrders lists orders for the admin workflow screens.
func (c *Client) AdminListOrders(ctx context.Context, token string, filter OrderFilter) ([]model.Order, error) {
	q := url.Values{}
	if filter.Channel != "" {
		q.Set("channel", filter.Channel)
	}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	if filter.Date != "" {
		q.Set("date", filter.Date)
	}
	var out []model.Order
	if err := c.get(ctx, "/admin/orders", token, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateOrderStatus requests a single-step transition. The server owns the
// state machine; callers must have checked legality via model.OrderStatus.
func (c *Client) UpdateOrderStatus(ctx context.Context, token string, id uuid.UUID, next model.OrderStatus) (*model.Order, error) {
	var out model.Order
	body := map[string]string{"status": string(next)}
	if err := c.patch(ctx, "/admin/orders/"+id.String()+"/status", token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
