package worker

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
)

func sampleOrder() model.Order {
	price := decimal.NewFromInt(20)
	return model.Order{
		ID:     uuid.New(),
		Number: "ORD-0042",
		Items: []model.OrderItem{{
			MenuItemID: uuid.New(),
			Name:       "Masala Chai",
			Quantity:   2,
			UnitPrice:  price,
			LineTotal:  price.Mul(decimal.NewFromInt(2)),
		}},
		Total:  decimal.NewFromInt(40),
		Status: model.StatusConfirmed,
	}
}

func testPrintWorker(t *testing.T) (*PrintWorker, string) {
	t.Helper()
	dir := t.TempDir()
	dispatcher := NewDispatcher(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))
	return NewPrintWorker("Cafe Tamarind", dir, dispatcher), dir
}

func TestPrintWorkerGeneratesKOT(t *testing.T) {
	w, dir := testPrintWorker(t)

	raw, err := json.Marshal(PrintJobPayload{Kind: PrintKOT, Order: sampleOrder()})
	require.NoError(t, err)
	require.NoError(t, w.Process(context.Background(), raw))

	info, err := os.Stat(filepath.Join(dir, "kot_ORD-0042.pdf"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPrintWorkerGeneratesBill(t *testing.T) {
	w, dir := testPrintWorker(t)

	raw, err := json.Marshal(PrintJobPayload{Kind: PrintBill, Order: sampleOrder()})
	require.NoError(t, err)
	require.NoError(t, w.Process(context.Background(), raw))

	_, err = os.Stat(filepath.Join(dir, "bill_ORD-0042.pdf"))
	require.NoError(t, err)
}

func TestPrintWorkerSkipsMalformedPayload(t *testing.T) {
	w, dir := testPrintWorker(t)

	// Not retryable: a bad payload will never render, so Process reports
	// success and the job is dropped instead of cycling through the DLQ.
	assert.NoError(t, w.Process(context.Background(), json.RawMessage(`{broken`)))
	assert.NoError(t, w.Process(context.Background(), mustMarshal(t, PrintJobPayload{Kind: "poster", Order: sampleOrder()})))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func mustMarshal(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}
