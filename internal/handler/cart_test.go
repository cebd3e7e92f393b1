package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/cart"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/dto"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/middleware"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/upstream"
)

// stubMenuService serves a fixed catalog and counts lookups.
type stubMenuService struct {
	items   map[uuid.UUID]model.MenuItem
	lookups int
}

func (s *stubMenuService) Browse(context.Context, dto.MenuQuery) (*dto.MenuPageResponse, error) {
	return &dto.MenuPageResponse{}, nil
}

func (s *stubMenuService) Item(_ context.Context, id uuid.UUID) (*model.MenuItem, error) {
	s.lookups++
	item, ok := s.items[id]
	if !ok {
		return nil, upstream.ErrNotFound
	}
	return &item, nil
}

func (s *stubMenuService) Categories(context.Context) ([]string, error) { return nil, nil }
func (s *stubMenuService) InvalidateCatalog(context.Context, string)    {}

type memRepo struct {
	sessions map[string]*cart.Session
}

func (r *memRepo) Load(_ context.Context, id string) (*cart.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, cart.ErrSessionNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *memRepo) Save(_ context.Context, s *cart.Session) error {
	copied := *s
	r.sessions[s.ID] = &copied
	return nil
}

func (r *memRepo) Delete(_ context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

func (r *memRepo) LegacyToken(context.Context, string) (string, error) { return "", nil }
func (r *memRepo) ClearLegacyToken(context.Context, string) error      { return nil }
func (r *memRepo) CustomerData(context.Context, string) (*cart.CustomerData, error) {
	return nil, nil
}
func (r *memRepo) SaveCustomerData(context.Context, string, *cart.CustomerData) error { return nil }

func cartRouter(menus *stubMenuService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	carts := cart.NewStore(&memRepo{sessions: map[string]*cart.Session{}})
	h := NewCartHandler(carts, menus)

	r := gin.New()
	r.Use(middleware.SessionID())
	r.GET("/cart", h.Get)
	r.POST("/cart/items", h.Add)
	r.PUT("/cart/items/:itemId", h.UpdateQuantity)
	return r
}

func postJSON(t *testing.T, r http.Handler, path string, body any, sessionID string) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", sessionID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCartAddRejectsNonPositiveQuantity(t *testing.T) {
	menus := &stubMenuService{items: map[uuid.UUID]model.MenuItem{}}
	r := cartRouter(menus)

	for _, qty := range []int{0, -2} {
		w := postJSON(t, r, "/cart/items", dto.AddToCartRequest{
			MenuItemID: uuid.NewString(),
			Quantity:   qty,
		}, "s1")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "quantity %d must be rejected", qty)
	}
	assert.Zero(t, menus.lookups, "validation failures must not hit the catalog")
}

func TestCartAddMergesAndReturnsDerivedTotal(t *testing.T) {
	tea := model.MenuItem{
		ID:        uuid.New(),
		Name:      "Tea",
		Price:     decimal.NewFromInt(20),
		Stock:     10,
		Available: true,
	}
	menus := &stubMenuService{items: map[uuid.UUID]model.MenuItem{tea.ID: tea}}
	r := cartRouter(menus)

	w := postJSON(t, r, "/cart/items", dto.AddToCartRequest{MenuItemID: tea.ID.String(), Quantity: 2}, "s1")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = postJSON(t, r, "/cart/items", dto.AddToCartRequest{MenuItemID: tea.ID.String(), Quantity: 1}, "s1")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 3, resp.Lines[0].Quantity)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(60)), "got %s", resp.Total)
}

func TestCartAddRejectsSoldOutItem(t *testing.T) {
	soldOut := model.MenuItem{
		ID:        uuid.New(),
		Name:      "Cake",
		Price:     decimal.NewFromInt(120),
		Stock:     0,
		Available: true,
	}
	menus := &stubMenuService{items: map[uuid.UUID]model.MenuItem{soldOut.ID: soldOut}}
	r := cartRouter(menus)

	w := postJSON(t, r, "/cart/items", dto.AddToCartRequest{MenuItemID: soldOut.ID.String(), Quantity: 1}, "s1")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCartSessionIsolation(t *testing.T) {
	tea := model.MenuItem{
		ID:        uuid.New(),
		Name:      "Tea",
		Price:     decimal.NewFromInt(20),
		Stock:     10,
		Available: true,
	}
	menus := &stubMenuService{items: map[uuid.UUID]model.MenuItem{tea.ID: tea}}
	r := cartRouter(menus)

	w := postJSON(t, r, "/cart/items", dto.AddToCartRequest{MenuItemID: tea.ID.String(), Quantity: 2}, "s1")
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("X-Session-ID", "s2")
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	var resp dto.CartResponse
	require.NoError(t, json.Unmarshal(got.Body.Bytes(), &resp))
	assert.Empty(t, resp.Lines, "another session must see an empty cart")
}
