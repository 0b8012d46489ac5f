// Package retry provides bounded retry with exponential backoff for
// calls against hosted APIs.
package retry

import (
	"context"
	"math"
	"math/rand"
	"net/http"
	"time"
)

// Defaults used when no options are given.
const (
	DefaultMaxAttempts = 3
	DefaultBaseWait    = 1 * time.Second
)

// APIError is implemented by errors that carry an HTTP status code.
type APIError interface {
	error
	StatusCode() int
}

// RetryableFunc represents a function that can be retried.
type RetryableFunc func() error

// Option configures a retry loop.
type Option func(*config)

type config struct {
	maxAttempts int
	baseWait    time.Duration
}

// WithMaxAttempts sets the total number of attempts, including the first.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithBaseWait sets the base wait used for exponential backoff.
func WithBaseWait(d time.Duration) Option {
	return func(c *config) {
		c.baseWait = d
	}
}

// Do executes the given function, retrying with exponential backoff and
// jitter until it succeeds, the attempt ceiling is reached, or the
// context is canceled. An APIError with a non-retryable status code
// stops the loop immediately.
func Do(ctx context.Context, f RetryableFunc, opts ...Option) error {
	c := &config{
		maxAttempts: DefaultMaxAttempts,
		baseWait:    DefaultBaseWait,
	}
	for _, opt := range opts {
		opt(c)
	}

	var lastError error
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(float64(c.baseWait) * math.Pow(2, float64(attempt-1)))
			jitter := time.Duration(rand.Float64() * float64(backoff) * 0.1)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff + jitter):
			}
		}
		if err := f(); err != nil {
			lastError = err
			if apiErr, ok := err.(APIError); ok && !ShouldRetry(apiErr.StatusCode()) {
				return err
			}
			continue
		}
		return nil
	}
	return lastError
}

// ShouldRetry determines if the given status code should trigger a retry.
func ShouldRetry(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || // 429
		statusCode == http.StatusInternalServerError || // 500
		statusCode == http.StatusServiceUnavailable || // 503
		statusCode == http.StatusGatewayTimeout || // 504
		statusCode == 520 // Cloudflare
}
