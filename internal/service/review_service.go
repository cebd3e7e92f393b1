package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/dto"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/upstream"
)

// ErrNoRatings — every item in the submission had both ratings at zero.
// Rejected client-side; nothing reaches the upstream.
var ErrNoRatings = errors.New("at least one non-zero rating is required")

// ReviewService collects per-item food/service ratings for an order.
type ReviewService interface {
	Submit(ctx context.Context, token string, req dto.SubmitReviewRequest) error
	Eligibility(ctx context.Context, orderID uuid.UUID) (bool, error)
	// Existing returns prior reviews keyed by (menuItemID, reviewType) for
	// pre-populating the update flow.
	Existing(ctx context.Context, orderID uuid.UUID) (map[string]model.Review, error)
	ForMenuItem(ctx context.Context, itemID uuid.UUID) ([]model.Review, error)
	AdminList(ctx context.Context, token string) ([]model.Review, error)
}

type reviewService struct {
	api *upstream.Client
}

func NewReviewService(api *upstream.Client) ReviewService {
	return &reviewService{api: api}
}

// Submit filters the set down to items with at least one non-zero rating and
// rejects an empty result before any network call.
func (s *reviewService) Submit(ctx context.Context, token string, req dto.SubmitReviewRequest) error {
	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return fmt.Errorf("invalid order id: %w", err)
	}

	qualifying := make([]upstream.FeedbackItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.FoodRating == 0 && item.ServiceRating == 0 {
			continue
		}
		itemID, err := uuid.Parse(item.MenuItemID)
		if err != nil {
			return fmt.Errorf("invalid menu item id %q", item.MenuItemID)
		}
		qualifying = append(qualifying, upstream.FeedbackItem{
			MenuItemID:    itemID,
			FoodRating:    item.FoodRating,
			ServiceRating: item.ServiceRating,
		})
	}
	if len(qualifying) == 0 {
		return ErrNoRatings
	}

	return s.api.SubmitFeedback(ctx, token, upstream.FeedbackRequest{
		OrderID:   orderID,
		Items:     qualifying,
		Comment:   req.Comment,
		Anonymous: req.Anonymous,
	})
}

func (s *reviewService) Eligibility(ctx context.Context, orderID uuid.UUID) (bool, error) {
	return s.api.FeedbackEligibility(ctx, orderID)
}

func (s *reviewService) Existing(ctx context.Context, orderID uuid.UUID) (map[string]model.Review, error) {
	reviews, err := s.api.OrderFeedback(ctx, orderID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]model.Review, len(reviews))
	for _, review := range reviews {
		out[ReviewKey(review.MenuItemID, review.Type)] = review
	}
	return out, nil
}

func (s *reviewService) ForMenuItem(ctx context.Context, itemID uuid.UUID) ([]model.Review, error) {
	return s.api.MenuItemFeedback(ctx, itemID)
}

func (s *reviewService) AdminList(ctx context.Context, token string) ([]model.Review, error) {
	return s.api.ListFeedback(ctx, token)
}

// ReviewKey is the composite map key for the update flow.
func ReviewKey(itemID uuid.UUID, t model.ReviewType) string {
	return itemID.String() + ":" + string(t)
}
