package upstream

import (
	"errors"
	"fmt"
)

// Sentinel errors for the upstream failure taxonomy. Handlers map these onto
// HTTP responses; the retry wrapper uses them to decide whether another
// attempt is allowed.
var (
	// ErrRateLimited is a 429 from the upstream. Never retried — surfaced
	// immediately.
	ErrRateLimited = errors.New("upstream rate limited")

	// ErrUnauthorized is a 401. The caller's session token is invalidated
	// and the client is redirected to login; never retried.
	ErrUnauthorized = errors.New("upstream unauthorized")

	// ErrNotFound is a 404 for a single-resource lookup.
	ErrNotFound = errors.New("upstream resource not found")

	// ErrCircuitOpen is returned without touching the network while the
	// breaker is tripped.
	ErrCircuitOpen = errors.New("upstream circuit breaker is open")
)

// StatusError carries a non-2xx upstream response that has no sentinel.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("upstream returned %d: %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("upstream returned %d", e.Code)
}

// Retryable reports whether another attempt may succeed. Client-side errors
// (4xx) are deterministic; only network failures and 5xx are worth retrying.
func Retryable(err error) bool {
	if errors.Is(err, ErrRateLimited) || errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrNotFound) || errors.Is(err, ErrCircuitOpen) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code >= 500
	}
	return true
}
