// Package llm defines the message types and client interface used to
// interact with hosted chat-completion APIs.
package llm

import (
	"context"

	"github.com/deepnoodle-ai/contextcraft/slogger"
)

// LLM is a client for a hosted chat-completion endpoint. Calls are
// synchronous: Generate blocks until the model responds or the context
// is canceled.
type LLM interface {
	// Name identifies the provider backing this client.
	Name() string

	// Generate a response from the LLM by passing messages.
	Generate(ctx context.Context, messages []*Message, opts ...GenerateOption) (*Response, error)
}

// GenerateOption is a function that configures the generation.
type GenerateOption func(*GenerateConfig)

// GenerateConfig holds configuration parameters for LLM generation.
type GenerateConfig struct {
	Model        string
	SystemPrompt string
	MaxTokens    *int
	Temperature  *float64
	Logger       slogger.Logger
}

// Apply applies the given options to the config.
func (c *GenerateConfig) Apply(opts ...GenerateOption) {
	for _, opt := range opts {
		opt(c)
	}
}

// WithModel sets the LLM model for the generation.
func WithModel(model string) GenerateOption {
	return func(config *GenerateConfig) {
		config.Model = model
	}
}

// WithSystemPrompt sets the system prompt.
func WithSystemPrompt(systemPrompt string) GenerateOption {
	return func(config *GenerateConfig) {
		config.SystemPrompt = systemPrompt
	}
}

// WithMaxTokens sets the max tokens.
func WithMaxTokens(maxTokens int) GenerateOption {
	return func(config *GenerateConfig) {
		config.MaxTokens = &maxTokens
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float64) GenerateOption {
	return func(config *GenerateConfig) {
		config.Temperature = &temperature
	}
}

// WithLogger sets the logger used during the generation.
func WithLogger(logger slogger.Logger) GenerateOption {
	return func(config *GenerateConfig) {
		config.Logger = logger
	}
}
