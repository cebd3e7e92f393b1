package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/cart"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/dto"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/upstream"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/worker"
)

var (
	// ErrEmptyCart — checkout attempted with nothing in the cart. Caught
	// before any upstream call.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNoTransition — the order is in a terminal state.
	ErrNoTransition = errors.New("no transition offered from current status")

	// ErrNotCancellable — cancellation is only possible while pending.
	ErrNotCancellable = errors.New("order can no longer be cancelled")

	// ErrScheduleRequired — a pre-order needs a scheduled-for timestamp.
	ErrScheduleRequired = errors.New("pre-orders require a scheduled time")
)

// OrderService owns order placement and the admin status workflow.
type OrderService interface {
	Checkout(ctx context.Context, sessionID string, req dto.CheckoutRequest) (*model.Order, error)
	AdminPlace(ctx context.Context, token string, req dto.AdminOrderRequest) (*model.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Order, error)
	LookupByPhone(ctx context.Context, phone string) ([]model.Order, error)
	AdminList(ctx context.Context, token string, filter upstream.OrderFilter) ([]model.Order, error)
	Advance(ctx context.Context, token string, id uuid.UUID, receiptEmail string) (*model.Order, error)
	Cancel(ctx context.Context, token string, id uuid.UUID) (*model.Order, error)
}

type orderService struct {
	api        *upstream.Client
	carts      *cart.Store
	dispatcher *worker.Dispatcher
}

func NewOrderService(api *upstream.Client, carts *cart.Store, dispatcher *worker.Dispatcher) OrderService {
	return &orderService{api: api, carts: carts, dispatcher: dispatcher}
}

// Checkout places the session cart as an order and clears the cart on
// success. Validation failures never reach the upstream.
func (s *orderService) Checkout(ctx context.Context, sessionID string, req dto.CheckoutRequest) (*model.Order, error) {
	sess, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Empty() {
		return nil, ErrEmptyCart
	}

	mealTime := model.MealTime(req.MealTime)
	var scheduledFor *time.Time
	if mealTime == model.MealPreOrder {
		if req.ScheduledFor == "" {
			return nil, ErrScheduleRequired
		}
		t, err := time.Parse(time.RFC3339, req.ScheduledFor)
		if err != nil {
			return nil, fmt.Errorf("invalid scheduled_for: %w", err)
		}
		scheduledFor = &t
	}

	items := make([]upstream.OrderItemRequest, 0, len(sess.Lines))
	for _, line := range sess.Lines {
		items = append(items, upstream.OrderItemRequest{
			MenuItemID: line.Item.ID,
			Name:       line.Item.Name,
			Quantity:   line.Quantity,
			UnitPrice:  line.Item.EffectiveUnitPrice(sess.Tier),
		})
	}

	order, err := s.api.CreateOrder(ctx, sess.Token, upstream.OrderRequest{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Items:         items,
		MealTime:      mealTime,
		ScheduledFor:  scheduledFor,
		Instructions:  req.Instructions,
		Tier:          sess.Tier,
		ReceiptEmail:  req.Email,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.carts.ClearCart(ctx, sessionID); err != nil {
		// The order is placed; a failed clear only risks a stale cart.
		log.Warn().Err(err).Str("session", sessionID).Msg("cart clear after checkout failed")
	}
	return order, nil
}

// AdminPlace builds an order from explicit items, pricing each line from the
// current catalog at the requested tier.
func (s *orderService) AdminPlace(ctx context.Context, token string, req dto.AdminOrderRequest) (*model.Order, error) {
	tier := model.PricingTier(req.Tier)
	mealTime := model.MealTime(req.MealTime)

	var scheduledFor *time.Time
	if mealTime == model.MealPreOrder {
		if req.ScheduledFor == "" {
			return nil, ErrScheduleRequired
		}
		t, err := time.Parse(time.RFC3339, req.ScheduledFor)
		if err != nil {
			return nil, fmt.Errorf("invalid scheduled_for: %w", err)
		}
		scheduledFor = &t
	}

	items := make([]upstream.OrderItemRequest, 0, len(req.Items))
	for _, reqItem := range req.Items {
		id, err := uuid.Parse(reqItem.MenuItemID)
		if err != nil {
			return nil, fmt.Errorf("invalid menu item id %q", reqItem.MenuItemID)
		}
		item, err := s.api.GetMenuItem(ctx, id)
		if err != nil {
			return nil, err
		}
		if !item.Orderable() {
			return nil, fmt.Errorf("%s: %w", item.Name, cart.ErrNotOrderable)
		}
		items = append(items, upstream.OrderItemRequest{
			MenuItemID: item.ID,
			Name:       item.Name,
			Quantity:   reqItem.Quantity,
			UnitPrice:  item.EffectiveUnitPrice(tier),
		})
	}

	return s.api.AdminCreateOrder(ctx, token, upstream.OrderRequest{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Items:         items,
		MealTime:      mealTime,
		ScheduledFor:  scheduledFor,
		Instructions:  req.Instructions,
		Tier:          tier,
	})
}

func (s *orderService) Get(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	return s.api.GetOrder(ctx, id)
}

func (s *orderService) LookupByPhone(ctx context.Context, phone string) ([]model.Order, error) {
	return s.api.OrdersByPhone(ctx, phone)
}

func (s *orderService) AdminList(ctx context.Context, token string, filter upstream.OrderFilter) ([]model.Order, error) {
	return s.api.AdminListOrders(ctx, token, filter)
}

// Advance moves the order exactly one step along the flow. The print side
// effects fire only after the upstream acknowledges the transition, and a
// dispatch failure never rolls it back.
func (s *orderService) Advance(ctx context.Context, token string, id uuid.UUID, receiptEmail string) (*model.Order, error) {
	order, err := s.api.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	next, ok := order.Status.Next()
	if !ok {
		return nil, ErrNoTransition
	}

	updated, err := s.api.UpdateOrderStatus(ctx, token, id, next)
	if err != nil {
		return nil, err
	}

	switch next {
	case model.StatusConfirmed:
		s.dispatchPrint(ctx, worker.PrintJobPayload{Kind: worker.PrintKOT, Order: *updated})
	case model.StatusCompleted:
		// An address supplied on the advance call wins; otherwise the one
		// the customer gave at checkout rides along with the order.
		email := receiptEmail
		if email == "" {
			email = updated.ReceiptEmail
		}
		s.dispatchPrint(ctx, worker.PrintJobPayload{Kind: worker.PrintBill, Order: *updated, Email: email})
	}
	return updated, nil
}

// Cancel is offered from pending only; cancelled is terminal.
func (s *orderService) Cancel(ctx context.Context, token string, id uuid.UUID) (*model.Order, error) {
	order, err := s.api.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.Cancellable() {
		return nil, ErrNotCancellable
	}
	return s.api.UpdateOrderStatus(ctx, token, id, model.StatusCancelled)
}

// dispatchPrint is best-effort: printing is cosmetic, never transactional.
func (s *orderService) dispatchPrint(ctx context.Context, payload worker.PrintJobPayload) {
	if err := s.dispatcher.EnqueuePrint(ctx, payload); err != nil {
		log.Warn().
			Err(err).
			Str("kind", payload.Kind).
			Str("order", payload.Order.Number).
			Msg("print dispatch failed")
	}
}
