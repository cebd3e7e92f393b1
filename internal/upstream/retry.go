package upstream

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// RetryPolicy bounds re-attempts of an upstream call with a fixed
// inter-attempt delay. 429 and other non-retryable failures short-circuit
// (see Retryable).
type RetryPolicy struct {
	Attempts int           // total attempts, including the first (default 3)
	Delay    time.Duration // fixed delay between attempts (default 1s)
}

// DefaultPolicy is the general-purpose wrapper: up to 3 attempts, 1s apart.
func DefaultPolicy() RetryPolicy {
	return RetryPolicy{Attempts: 3, Delay: time.Second}
}

// StrictPolicy is the slower variant used for money-moving calls
// (order placement, settlement recording).
func StrictPolicy() RetryPolicy {
	return RetryPolicy{Attempts: 3, Delay: 2 * time.Second}
}

// Do runs fn up to p.Attempts times, sleeping p.Delay between failures.
// A non-retryable error propagates immediately with zero further attempts.
func (p RetryPolicy) Do(ctx context.Context, op string, fn func() error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !Retryable(err) {
			return err
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		log.Warn().
			Str("op", op).
			Int("attempt", attempt).
			Err(err).
			Msg("upstream call failed, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.Delay):
		}
	}
	return lastErr
}
