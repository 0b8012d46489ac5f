package structured

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/contextcraft/llm"
	"github.com/deepnoodle-ai/contextcraft/schema"
)

// scriptedLLM returns canned responses in order and records the prompts
// it was given. The last response repeats if more calls arrive.
type scriptedLLM struct {
	responses []string
	prompts   []string
	err       error
}

func (s *scriptedLLM) Name() string { return "scripted" }

func (s *scriptedLLM) Generate(ctx context.Context, messages []*llm.Message, opts ...llm.GenerateOption) (*llm.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.prompts = append(s.prompts, messages[len(messages)-1].Text())
	i := len(s.prompts) - 1
	if i >= len(s.responses) {
		i = len(s.responses) - 1
	}
	return &llm.Response{
		Role:    llm.Assistant,
		Message: *llm.NewAssistantMessage(s.responses[i]),
	}, nil
}

func statusSchema() *schema.Schema {
	return schema.New(map[string]string{
		"status":  "success|error",
		"message": "string",
		"data":    "any valid JSON value or null",
	})
}

func TestExtract_FencedResponse(t *testing.T) {
	client := &scriptedLLM{responses: []string{
		"```json\n{\"status\": \"success\", \"message\": \"ok\", \"data\": null}\n```",
	}}
	extractor := New(client, statusSchema())

	result, err := extractor.Extract(context.Background(), "Report status.")
	require.NoError(t, err)
	require.Equal(t, 1, len(client.prompts))

	require.Equal(t, "success", result["status"])
	require.Equal(t, "ok", result["message"])
	require.Contains(t, result, "data")
	require.Nil(t, result["data"])
}

func TestExtract_ReturnsImmediatelyOnSuccess(t *testing.T) {
	client := &scriptedLLM{responses: []string{
		`{"status": "success", "message": "ok", "data": 1}`,
	}}
	extractor := New(client, statusSchema(), WithMaxAttempts(5))

	_, err := extractor.Extract(context.Background(), "Report status.")
	require.NoError(t, err)
	require.Equal(t, 1, len(client.prompts))
}

func TestExtract_InvalidJSONRetriesWithAmendedPrompt(t *testing.T) {
	client := &scriptedLLM{responses: []string{"not json at all"}}
	extractor := New(client, statusSchema(), WithMaxAttempts(3))

	_, err := extractor.Extract(context.Background(), "Report status.")
	require.Error(t, err)
	require.Contains(t, err.Error(), "after 3 attempts")
	require.Contains(t, err.Error(), "invalid json")

	require.Equal(t, 3, len(client.prompts))
	require.NotContains(t, client.prompts[0], "ATTEMPT")
	require.Contains(t, client.prompts[1], "ATTEMPT 2: Previous attempt failed")
	require.Contains(t, client.prompts[2], "ATTEMPT 3: Previous attempt failed")
}

func TestExtract_MissingKeyThenSuccess(t *testing.T) {
	client := &scriptedLLM{responses: []string{
		`{"status": "success"}`,
		`{"status": "success", "message": "ok", "data": null}`,
	}}
	extractor := New(client, statusSchema())

	result, err := extractor.Extract(context.Background(), "Report status.")
	require.NoError(t, err)
	require.Equal(t, 2, len(client.prompts))
	require.Equal(t, "ok", result["message"])
}

func TestExtract_MissingKeysExhaustCeiling(t *testing.T) {
	client := &scriptedLLM{responses: []string{`{"status": "success"}`}}
	extractor := New(client, statusSchema(), WithMaxAttempts(2))

	_, err := extractor.Extract(context.Background(), "Report status.")
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing required keys")
	require.Equal(t, 2, len(client.prompts))
}

func TestExtract_RequestErrorNotRetried(t *testing.T) {
	client := &scriptedLLM{err: errors.New("connection refused")}
	extractor := New(client, statusSchema(), WithMaxAttempts(3))

	_, err := extractor.Extract(context.Background(), "Report status.")
	require.Error(t, err)
	require.Contains(t, err.Error(), "connection refused")
	require.Empty(t, client.prompts)
}

func TestExtract_PromptIncludesSchemaAndRules(t *testing.T) {
	client := &scriptedLLM{responses: []string{
		`{"status": "success", "message": "ok", "data": null}`,
	}}
	extractor := New(client, statusSchema())

	_, err := extractor.Extract(context.Background(), "Report status.")
	require.NoError(t, err)

	prompt := client.prompts[0]
	require.Contains(t, prompt, "Report status.")
	require.Contains(t, prompt, "Return ONLY valid JSON")
	require.Contains(t, prompt, `"status"`)
	require.Contains(t, prompt, "ALL required fields must be present")
}

func TestStripFence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tagged fence",
			input:    "```json\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "untagged fence",
			input:    "```\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "no fence returned unchanged",
			input:    `{"a": 1}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "plain text unchanged",
			input:    "not json at all",
			expected: "not json at all",
		},
		{
			name:     "fence with surrounding whitespace",
			input:    "  ```json\n{\"a\": 1}\n```  ",
			expected: `{"a": 1}`,
		},
		{
			name:     "missing trailing fence",
			input:    "```json\n{\"a\": 1}",
			expected: `{"a": 1}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, StripFence(tc.input))
		})
	}
}
