// Package structured enforces JSON-shaped responses from an LLM. It
// wraps a completion call with formatting instructions, Markdown fence
// stripping, shallow schema validation, and a bounded retry loop that
// amends the prompt after each failed attempt.
package structured

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/contextcraft/llm"
	"github.com/deepnoodle-ai/contextcraft/schema"
)

const (
	DefaultMaxAttempts  = 3
	DefaultSystemPrompt = "You are a JSON-only API. Return only valid JSON."
	DefaultTemperature  = 0.1
)

// Extractor enforces that an LLM's response parses as a JSON object
// containing every key declared by its schema.
type Extractor struct {
	client       llm.LLM
	schema       *schema.Schema
	maxAttempts  int
	systemPrompt string
	generateOpts []llm.GenerateOption
}

// Option is a function that configures the Extractor.
type Option func(*Extractor)

// WithMaxAttempts sets the total attempt ceiling, including the first
// call.
func WithMaxAttempts(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.maxAttempts = n
		}
	}
}

// WithSystemPrompt overrides the default JSON-only system prompt.
func WithSystemPrompt(systemPrompt string) Option {
	return func(e *Extractor) {
		e.systemPrompt = systemPrompt
	}
}

// WithGenerateOptions appends options passed to every Generate call,
// e.g. llm.WithModel or llm.WithTemperature.
func WithGenerateOptions(opts ...llm.GenerateOption) Option {
	return func(e *Extractor) {
		e.generateOpts = append(e.generateOpts, opts...)
	}
}

// New creates an Extractor that asks the given client for responses
// matching the given schema.
func New(client llm.LLM, s *schema.Schema, opts ...Option) *Extractor {
	e := &Extractor{
		client:       client,
		schema:       s,
		maxAttempts:  DefaultMaxAttempts,
		systemPrompt: DefaultSystemPrompt,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract sends the prompt with JSON formatting instructions appended
// and returns the parsed object. On a parse or missing-key failure it
// appends a corrective note to the prompt and retries, up to the
// attempt ceiling. Request errors from the underlying client are
// returned immediately; they are not shape failures.
func (e *Extractor) Extract(ctx context.Context, prompt string) (map[string]any, error) {
	jsonPrompt := fmt.Sprintf(`%s

CRITICAL: Return ONLY valid JSON matching this exact schema:
%s

Rules:
- NO explanatory text
- NO markdown formatting
- NO code blocks
- ONLY the JSON object
- ALL required fields must be present`, prompt, e.schema.PromptText())

	opts := append([]llm.GenerateOption{
		llm.WithSystemPrompt(e.systemPrompt),
		llm.WithTemperature(DefaultTemperature),
	}, e.generateOpts...)

	var lastErr error
	for attempt := 0; attempt < e.maxAttempts; attempt++ {
		response, err := e.client.Generate(ctx, llm.NewSingleUserMessage(jsonPrompt), opts...)
		if err != nil {
			return nil, err
		}

		text := StripFence(strings.TrimSpace(response.Text()))

		var parsed map[string]any
		if err := json.Unmarshal([]byte(text), &parsed); err != nil {
			lastErr = fmt.Errorf("invalid json: %w", err)
		} else if !schema.ValidateKeys(parsed, e.schema) {
			lastErr = fmt.Errorf("schema validation failed: missing required keys (want %s)",
				strings.Join(e.schema.Keys(), ", "))
		} else {
			return parsed, nil
		}

		jsonPrompt += fmt.Sprintf("\n\nATTEMPT %d: Previous attempt failed. Return ONLY valid JSON.", attempt+2)
	}
	return nil, fmt.Errorf("failed to get valid JSON after %d attempts: %w", e.maxAttempts, lastErr)
}

// StripFence removes a leading "```json" or "```" marker and a trailing
// "```" marker from the given text. Text without a leading fence is
// returned unchanged.
func StripFence(s string) string {
	trimmed := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(trimmed, "```json"):
		trimmed = trimmed[len("```json"):]
	case strings.HasPrefix(trimmed, "```"):
		trimmed = trimmed[len("```"):]
	default:
		return s
	}
	trimmed = strings.TrimSpace(trimmed)
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}
