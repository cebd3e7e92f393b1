package upstream

import (
	"context"

	"github.com/google/uuid"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
)

// FeedbackItem carries both ratings for one menu item on an order. A zero
// rating means "not rated" and is filtered out before submission.
type FeedbackItem struct {
	MenuItemID    uuid.UUID `json:"menu_item_id"`
	FoodRating    int       `json:"food_rating"`
	ServiceRating int       `json:"service_rating"`
}

// FeedbackRequest is the review submission payload.
type FeedbackRequest struct {
	OrderID   uuid.UUID      `json:"order_id"`
	Items     []FeedbackItem `json:"items"`
	Comment   string         `json:"comment,omitempty"`
	Anonymous bool           `json:"anonymous"`
}

// SubmitFeedback posts a review set for an order.
func (c *Client) SubmitFeedback(ctx context.Context, token string, req FeedbackRequest) error {
	return c.post(ctx, "/feedback", token, req, nil)
}

// ListFeedback returns all reviews (admin moderation view).
func (c *Client) ListFeedback(ctx context.Context, token string) ([]model.Review, error) {
	var out []model.Review
	if err := c.get(ctx, "/admin/feedback", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FeedbackEligibility reports whether the order may still be reviewed.
func (c *Client) FeedbackEligibility(ctx context.Context, orderID uuid.UUID) (bool, error) {
	var out struct {
		Eligible bool `json:"eligible"`
	}
	if err := c.get(ctx, "/feedback/eligibility/"+orderID.String(), "", nil, &out); err != nil {
		return false, err
	}
	return out.Eligible, nil
}

// OrderFeedback returns existing reviews for an order, used to pre-populate
// the update flow keyed by (menu item, review type).
func (c *Client) OrderFeedback(ctx context.Context, orderID uuid.UUID) ([]model.Review, error) {
	var out []model.Review
	if err := c.get(ctx, "/feedback/order/"+orderID.String(), "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MenuItemFeedback returns reviews for a single menu item.
func (c *Client) MenuItemFeedback(ctx context.Context, itemID uuid.UUID) ([]model.Review, error) {
	var out []model.Review
	if err := c.get(ctx, "/feedback/menu-item/"+itemID.String(), "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
