package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/dto"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/upstream"
)

func testUpstream(t *testing.T, handler http.Handler) (*upstream.Client, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	policy := upstream.RetryPolicy{Attempts: 1, Delay: time.Millisecond}
	return upstream.NewClient(srv.URL, time.Second, policy, policy), &hits
}

func jsonDecode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func TestSubmitRejectsAllZeroRatingsBeforeNetwork(t *testing.T) {
	api, hits := testUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	reviews := NewReviewService(api)

	err := reviews.Submit(context.Background(), "tok", dto.SubmitReviewRequest{
		OrderID: uuid.NewString(),
		Items: []dto.ReviewItemRequest{
			{MenuItemID: uuid.NewString(), FoodRating: 0, ServiceRating: 0},
			{MenuItemID: uuid.NewString(), FoodRating: 0, ServiceRating: 0},
		},
	})

	assert.ErrorIs(t, err, ErrNoRatings)
	assert.Equal(t, int32(0), atomic.LoadInt32(hits), "an all-zero submission must never reach the upstream")
}

func TestSubmitFiltersZeroRatedItems(t *testing.T) {
	var received struct {
		Items []struct {
			MenuItemID    string `json:"menu_item_id"`
			FoodRating    int    `json:"food_rating"`
			ServiceRating int    `json:"service_rating"`
		} `json:"items"`
	}
	api, hits := testUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, jsonDecode(r, &received))
		w.WriteHeader(http.StatusCreated)
	}))
	reviews := NewReviewService(api)

	rated := uuid.NewString()
	err := reviews.Submit(context.Background(), "tok", dto.SubmitReviewRequest{
		OrderID: uuid.NewString(),
		Items: []dto.ReviewItemRequest{
			{MenuItemID: uuid.NewString(), FoodRating: 0, ServiceRating: 0},
			{MenuItemID: rated, FoodRating: 4, ServiceRating: 0},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
	require.Len(t, received.Items, 1, "zero-rated items are dropped from the submission")
	assert.Equal(t, rated, received.Items[0].MenuItemID)
	assert.Equal(t, 4, received.Items[0].FoodRating)
}

func TestSubmitRejectsMalformedIDs(t *testing.T) {
	api, hits := testUpstream(t, http.NotFoundHandler())
	reviews := NewReviewService(api)

	err := reviews.Submit(context.Background(), "tok", dto.SubmitReviewRequest{
		OrderID: "not-a-uuid",
		Items:   []dto.ReviewItemRequest{{MenuItemID: uuid.NewString(), FoodRating: 3}},
	})
	assert.Error(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
}
