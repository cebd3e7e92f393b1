// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (upstream payloads, stack traces).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
// Retryable tells the UI whether offering a manual retry makes sense
// (network/timeout failures after the bounded retry is exhausted).
// Redirect, when set, is the route the client must navigate to
// (admin login after a 401, public home after a 403).
type APIError struct {
	Detail    string `json:"detail"`
	Retryable bool   `json:"retryable,omitempty"`
	Redirect  string `json:"redirect,omitempty"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// NewRetryable marks a network-class failure the user may retry manually.
func NewRetryable(msg string) *APIError {
	return &APIError{Detail: msg, Retryable: true}
}

// NewRedirect pairs an auth failure with the route the client must go to.
func NewRedirect(msg, route string) *APIError {
	return &APIError{Detail: msg, Redirect: route}
}

// ValidationError wraps multiple field errors. Validation failures are caught
// before any upstream call is made.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation failed", Fields: fields}
}
