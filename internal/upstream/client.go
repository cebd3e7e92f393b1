// Package upstream is the HTTP client for the café backend API. Every
// authoritative fact — pricing, stock, order transitions, ledger balances —
// lives behind these endpoints; this service only reads and requests
// mutations. All calls funnel through the bounded retry wrapper and the
// circuit breaker.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the upstream café API.
type Client struct {
	baseURL string
	http    *http.Client
	policy  RetryPolicy
	strict  RetryPolicy
	breaker *Breaker
}

// NewClient builds a client with a fixed per-request timeout. baseURL must
// not end with a slash.
func NewClient(baseURL string, timeout time.Duration, policy, strict RetryPolicy) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		policy:  policy,
		strict:  strict,
		breaker: NewBreaker(DefaultBreakerConfig()),
	}
}

// BreakerState exposes the breaker position for the health endpoint.
func (c *Client) BreakerState() BreakerState {
	return c.breaker.State()
}

func (c *Client) get(ctx context.Context, path, token string, query url.Values, out any) error {
	return c.do(ctx, c.policy, http.MethodGet, path, token, query, nil, out)
}

func (c *Client) post(ctx context.Context, path, token string, body, out any) error {
	return c.do(ctx, c.policy, http.MethodPost, path, token, nil, body, out)
}

// postStrict uses the slower retry variant for money-moving calls.
func (c *Client) postStrict(ctx context.Context, path, token string, body, out any) error {
	return c.do(ctx, c.strict, http.MethodPost, path, token, nil, body, out)
}

func (c *Client) put(ctx context.Context, path, token string, body, out any) error {
	return c.do(ctx, c.policy, http.MethodPut, path, token, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path, token string, body, out any) error {
	return c.do(ctx, c.policy, http.MethodPatch, path, token, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path, token string) error {
	return c.do(ctx, c.policy, http.MethodDelete, path, token, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, policy RetryPolicy, method, path, token string, query url.Values, body, out any) error {
	op := method + " " + path
	return policy.Do(ctx, op, func() error {
		var callErr error
		err := c.breaker.Execute(func() error {
			callErr = c.once(ctx, method, path, token, query, body, out)
			if callErr != nil && !Retryable(callErr) {
				// Deterministic 4xx — the upstream is healthy, don't trip.
				return nil
			}
			return callErr
		})
		if errors.Is(err, ErrCircuitOpen) {
			return err
		}
		return callErr
	})
}

// once performs a single HTTP exchange and maps the status code onto the
// error taxonomy.
func (c *Client) once(ctx context.Context, method, path, token string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("upstream: marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("upstream: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", path, ErrUnauthorized)
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%s: %w", path, ErrRateLimited)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	case resp.StatusCode >= 400:
		var envelope struct {
			Detail string `json:"detail"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return &StatusError{Code: resp.StatusCode, Detail: envelope.Detail}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("upstream: decode response: %w", err)
	}
	return nil
}
