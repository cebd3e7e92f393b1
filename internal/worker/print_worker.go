package worker

// print_worker.go
// Renders KOT/bill PDFs for orders whose status transition fired a print
// side effect. Printing is best-effort by contract: the transition has
// already been acknowledged upstream by the time a job lands here, and
// nothing in this file can undo it.

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/receipt"
)

// Print document kinds.
const (
	PrintKOT  = "kot"
	PrintBill = "bill"
)

// PrintJobPayload carries a full order snapshot so the worker never needs a
// re-fetch — the order as acknowledged at transition time is what prints.
type PrintJobPayload struct {
	Kind  string      `json:"kind"` // kot | bill
	Order model.Order `json:"order"`
	// Email, when set on a bill job, chains an emailed receipt.
	Email string `json:"email,omitempty"`
}

// PrintWorker processes print jobs from QueuePrint.
type PrintWorker struct {
	cafeName    string
	storagePath string
	dispatcher  *Dispatcher
}

func NewPrintWorker(cafeName, storagePath string, dispatcher *Dispatcher) *PrintWorker {
	return &PrintWorker{cafeName: cafeName, storagePath: storagePath, dispatcher: dispatcher}
}

// Process renders the requested document. Returns an error only for render
// failures, which the pool retries and then parks in the DLQ.
func (w *PrintWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload PrintJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("print_worker: invalid payload")
		return nil // malformed payloads will never succeed — don't retry
	}

	var path string
	var err error
	switch payload.Kind {
	case PrintKOT:
		path, err = receipt.GenerateKOTPDF(w.cafeName, payload.Order, w.storagePath)
	case PrintBill:
		path, err = receipt.GenerateBillPDF(w.cafeName, payload.Order, w.storagePath)
	default:
		log.Warn().Str("kind", payload.Kind).Msg("print_worker: unknown document kind — skipping")
		return nil
	}
	if err != nil {
		return err
	}

	log.Info().
		Str("kind", payload.Kind).
		Str("order", payload.Order.Number).
		Str("path", path).
		Msg("print_worker: document generated")

	if payload.Kind == PrintBill && payload.Email != "" {
		emailJob := EmailJobPayload{
			ToEmail: payload.Email,
			Subject: "Your receipt from " + w.cafeName,
			Body:    "Thank you for your order " + payload.Order.Number + ". Your receipt is attached.",
			PDFPath: path,
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
			// Emailed receipt is a courtesy on top of a courtesy.
			log.Warn().Err(err).Str("order", payload.Order.Number).Msg("print_worker: failed to enqueue receipt email")
		}
	}
	return nil
}
