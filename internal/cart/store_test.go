package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
)

// memRepository is an in-memory Repository for tests.
type memRepository struct {
	sessions     map[string]*Session
	legacyTokens map[string]string
	customerData map[string]*CustomerData
	saves        int
}

func newMemRepository() *memRepository {
	return &memRepository{
		sessions:     map[string]*Session{},
		legacyTokens: map[string]string{},
		customerData: map[string]*CustomerData{},
	}
}

func (r *memRepository) Load(_ context.Context, id string) (*Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *memRepository) Save(_ context.Context, s *Session) error {
	copied := *s
	r.sessions[s.ID] = &copied
	r.saves++
	return nil
}

func (r *memRepository) Delete(_ context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

func (r *memRepository) LegacyToken(_ context.Context, id string) (string, error) {
	return r.legacyTokens[id], nil
}

func (r *memRepository) ClearLegacyToken(_ context.Context, id string) error {
	delete(r.legacyTokens, id)
	return nil
}

func (r *memRepository) CustomerData(_ context.Context, id string) (*CustomerData, error) {
	return r.customerData[id], nil
}

func (r *memRepository) SaveCustomerData(_ context.Context, id string, cd *CustomerData) error {
	r.customerData[id] = cd
	return nil
}

func item(name string, price int64, inHouse *int64) model.MenuItem {
	m := model.MenuItem{
		ID:        uuid.New(),
		Name:      name,
		Category:  "beverages",
		Price:     decimal.NewFromInt(price),
		Stock:     10,
		Available: true,
	}
	if inHouse != nil {
		p := decimal.NewFromInt(*inHouse)
		m.InHousePrice = &p
	}
	return m
}

func TestAddToCartTotalIsAlwaysDerived(t *testing.T) {
	store := NewStore(newMemRepository())
	ctx := context.Background()

	tea := item("Tea", 20, nil)
	toast := item("Toast", 35, nil)

	sess, err := store.AddToCart(ctx, "s1", tea, 2)
	require.NoError(t, err)
	assert.True(t, sess.Total.Equal(decimal.NewFromInt(40)), "got %s", sess.Total)

	sess, err = store.AddToCart(ctx, "s1", toast, 1)
	require.NoError(t, err)
	assert.True(t, sess.Total.Equal(decimal.NewFromInt(75)), "got %s", sess.Total)

	sess, err = store.RemoveFromCart(ctx, "s1", tea.ID)
	require.NoError(t, err)
	assert.True(t, sess.Total.Equal(decimal.NewFromInt(35)), "got %s", sess.Total)

	sess, err = store.ClearCart(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, sess.Total.IsZero())
	assert.True(t, sess.Empty())
}

func TestAddToCartMergesDuplicateLines(t *testing.T) {
	store := NewStore(newMemRepository())
	ctx := context.Background()

	tea := item("Tea", 20, nil)

	_, err := store.AddToCart(ctx, "s1", tea, 1)
	require.NoError(t, err)
	sess, err := store.AddToCart(ctx, "s1", tea, 3)
	require.NoError(t, err)

	require.Len(t, sess.Lines, 1, "same item must never produce a second line")
	assert.Equal(t, 4, sess.Lines[0].Quantity)
	assert.True(t, sess.Total.Equal(decimal.NewFromInt(80)))
}

func TestAddToCartRejectsUnorderable(t *testing.T) {
	store := NewStore(newMemRepository())
	ctx := context.Background()

	soldOut := item("Cake", 120, nil)
	soldOut.Stock = 0

	_, err := store.AddToCart(ctx, "s1", soldOut, 1)
	assert.ErrorIs(t, err, ErrNotOrderable)

	unavailable := item("Pie", 90, nil)
	unavailable.Available = false

	_, err = store.AddToCart(ctx, "s1", unavailable, 1)
	assert.ErrorIs(t, err, ErrNotOrderable)

	sess, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, sess.Empty(), "rejected adds must not change state")
}

func TestUpdateQuantityZeroOrNegativeRemovesLine(t *testing.T) {
	store := NewStore(newMemRepository())
	ctx := context.Background()

	tea := item("Tea", 20, nil)
	toast := item("Toast", 35, nil)

	_, err := store.AddToCart(ctx, "s1", tea, 2)
	require.NoError(t, err)
	_, err = store.AddToCart(ctx, "s1", toast, 1)
	require.NoError(t, err)

	sess, err := store.UpdateQuantity(ctx, "s1", tea.ID, 0)
	require.NoError(t, err)
	require.Len(t, sess.Lines, 1)
	assert.Equal(t, "Toast", sess.Lines[0].Item.Name)

	sess, err = store.UpdateQuantity(ctx, "s1", toast.ID, -3)
	require.NoError(t, err)
	assert.True(t, sess.Empty())
	assert.True(t, sess.Total.IsZero())
}

func TestSetTierReprices(t *testing.T) {
	store := NewStore(newMemRepository())
	ctx := context.Background()

	inHouse := int64(15)
	tea := item("Tea", 20, &inHouse)

	_, err := store.AddToCart(ctx, "s1", tea, 2)
	require.NoError(t, err)

	sess, err := store.SetTier(ctx, "s1", model.TierInHouse)
	require.NoError(t, err)
	assert.True(t, sess.Total.Equal(decimal.NewFromInt(30)), "got %s", sess.Total)

	sess, err = store.SetTier(ctx, "s1", model.TierStandard)
	require.NoError(t, err)
	assert.True(t, sess.Total.Equal(decimal.NewFromInt(40)), "got %s", sess.Total)
}

func TestGetMigratesLegacyToken(t *testing.T) {
	repo := newMemRepository()
	repo.legacyTokens["s1"] = "tok-legacy"
	store := NewStore(repo)
	ctx := context.Background()

	sess, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "tok-legacy", sess.Token)

	// The legacy key is cleared and the token now lives on the session.
	_, ok := repo.legacyTokens["s1"]
	assert.False(t, ok)

	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "tok-legacy", again.Token)
}

func TestRehydrationSurvivesReload(t *testing.T) {
	repo := newMemRepository()
	store := NewStore(repo)
	ctx := context.Background()

	tea := item("Tea", 20, nil)
	_, err := store.AddToCart(ctx, "s1", tea, 2)
	require.NoError(t, err)

	// A fresh store over the same repository sees the same cart.
	reloaded := NewStore(repo)
	sess, err := reloaded.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, sess.Lines, 1)
	assert.True(t, sess.Total.Equal(decimal.NewFromInt(40)))
}

func TestLoginLogout(t *testing.T) {
	repo := newMemRepository()
	store := NewStore(repo)
	ctx := context.Background()

	user := User{ID: "u1", Name: "Asha", Phone: "9876543210", Role: "customer"}
	sess, err := store.Login(ctx, "s1", user, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, sess.User)
	assert.Equal(t, "tok-1", sess.Token)

	cd, err := store.CustomerProfile(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, cd)
	assert.Equal(t, "Asha", cd.Name)

	sess, err = store.Logout(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, sess.User)
	assert.Empty(t, sess.Token)
}
