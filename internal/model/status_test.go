package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusNext(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		want    OrderStatus
		offered bool
	}{
		{"pending advances to confirmed", StatusPending, StatusConfirmed, true},
		{"confirmed advances to preparing", StatusConfirmed, StatusPreparing, true},
		{"preparing advances to ready", StatusPreparing, StatusReady, true},
		{"ready advances to completed", StatusReady, StatusCompleted, true},
		{"completed advances to paid", StatusCompleted, StatusPaid, true},
		{"paid is terminal", StatusPaid, "", false},
		{"cancelled is terminal", StatusCancelled, "", false},
		{"unknown status offers nothing", OrderStatus("shipped"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := tt.from.Next()
			assert.Equal(t, tt.offered, ok)
			if tt.offered {
				assert.Equal(t, tt.want, next)
			}
		})
	}
}

func TestStatusNeverSkipsSteps(t *testing.T) {
	// Walking the table from pending must visit every working state exactly
	// once and end at paid.
	want := []OrderStatus{StatusConfirmed, StatusPreparing, StatusReady, StatusCompleted, StatusPaid}

	current := StatusPending
	var visited []OrderStatus
	for {
		next, ok := current.Next()
		if !ok {
			break
		}
		visited = append(visited, next)
		current = next
	}

	assert.Equal(t, want, visited)
	assert.True(t, current.Terminal())
}

func TestStatusCancellable(t *testing.T) {
	assert.True(t, StatusPending.Cancellable())

	for _, s := range []OrderStatus{StatusConfirmed, StatusPreparing, StatusReady, StatusCompleted, StatusPaid, StatusCancelled} {
		assert.False(t, s.Cancellable(), "status %s must not be cancellable", s)
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusPaid.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusReady.Terminal())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPreparing.Valid())
	assert.False(t, OrderStatus("").Valid())
	assert.False(t, OrderStatus("refunded").Valid())
}
