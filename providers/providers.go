// Package providers contains shared behavior for LLM provider clients.
package providers

import "fmt"

// ProviderError represents an error returned by an LLM provider API.
type ProviderError struct {
	statusCode int
	body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider api error (status %d): %s", e.statusCode, e.body)
}

func (e *ProviderError) StatusCode() int {
	return e.statusCode
}

// NewError creates a new ProviderError for the given status code and
// response body.
func NewError(statusCode int, body string) *ProviderError {
	return &ProviderError{statusCode: statusCode, body: body}
}
