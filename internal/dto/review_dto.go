package dto

// ReviewItemRequest carries both ratings for one menu item. Zero means "not
// rated" — items with both ratings at zero are filtered out before
// submission.
type ReviewItemRequest struct {
	MenuItemID    string `json:"menu_item_id"   validate:"required,uuid"`
	FoodRating    int    `json:"food_rating"    validate:"min=0,max=5"`
	ServiceRating int    `json:"service_rating" validate:"min=0,max=5"`
}

// SubmitReviewRequest is the review set for one order.
type SubmitReviewRequest struct {
	OrderID   string              `json:"order_id"  validate:"required,uuid"`
	Items     []ReviewItemRequest `json:"items"     validate:"required,min=1,dive"`
	Comment   string              `json:"comment"   validate:"max=500"`
	Anonymous bool                `json:"anonymous"`
}
