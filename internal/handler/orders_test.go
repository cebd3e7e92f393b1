package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/dto"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/upstream"
)

// stubOrderService records the arguments the handler passed down.
type stubOrderService struct {
	filter upstream.OrderFilter
	orders []model.Order
}

func (s *stubOrderService) Checkout(context.Context, string, dto.CheckoutRequest) (*model.Order, error) {
	return &model.Order{}, nil
}

func (s *stubOrderService) AdminPlace(context.Context, string, dto.AdminOrderRequest) (*model.Order, error) {
	return &model.Order{}, nil
}

func (s *stubOrderService) Get(context.Context, uuid.UUID) (*model.Order, error) {
	return &model.Order{}, nil
}

func (s *stubOrderService) LookupByPhone(context.Context, string) ([]model.Order, error) {
	return nil, nil
}

func (s *stubOrderService) AdminList(_ context.Context, _ string, filter upstream.OrderFilter) ([]model.Order, error) {
	s.filter = filter
	return s.orders, nil
}

func (s *stubOrderService) Advance(context.Context, string, uuid.UUID, string) (*model.Order, error) {
	return &model.Order{}, nil
}

func (s *stubOrderService) Cancel(context.Context, string, uuid.UUID) (*model.Order, error) {
	return &model.Order{}, nil
}

func TestAdminListBindsTypedStatusFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubOrderService{orders: []model.Order{{Status: model.StatusPreparing}}}
	h := NewOrderHandler(svc)

	r := gin.New()
	r.GET("/admin/orders", h.AdminList)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders?channel=admin&status=preparing&date=2026-08-31", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", svc.filter.Channel)
	assert.Equal(t, model.StatusPreparing, svc.filter.Status)
	assert.Equal(t, "2026-08-31", svc.filter.Date)
}

func TestAdminListUnfiltered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubOrderService{}
	h := NewOrderHandler(svc)

	r := gin.New()
	r.GET("/admin/orders", h.AdminList)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, upstream.OrderFilter{}, svc.filter)
}
