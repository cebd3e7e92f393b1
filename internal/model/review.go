package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewType distinguishes the two independent ratings collected per item.
type ReviewType string

const (
	ReviewFood    ReviewType = "food"
	ReviewService ReviewType = "service"
)

// Review is one rating record as stored upstream: one (menu item, type) pair
// per row, 1–5, with an optional shared comment.
type Review struct {
	ID         uuid.UUID  `json:"id"`
	OrderID    uuid.UUID  `json:"order_id"`
	MenuItemID uuid.UUID  `json:"menu_item_id"`
	Type       ReviewType `json:"review_type"`
	Rating     int        `json:"rating"` // 1–5
	Comment    string     `json:"comment,omitempty"`
	Reviewer   string     `json:"reviewer,omitempty"` // empty when anonymous
	Anonymous  bool       `json:"anonymous"`
	CreatedAt  time.Time  `json:"created_at"`
}
