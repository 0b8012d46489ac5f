package demos

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/contextcraft/llm"
)

// failingLLM errors on every call and counts how many it received.
type failingLLM struct {
	calls int
}

func (f *failingLLM) Name() string { return "failing" }

func (f *failingLLM) Generate(ctx context.Context, messages []*llm.Message, opts ...llm.GenerateOption) (*llm.Response, error) {
	f.calls++
	return nil, errors.New("simulated api failure")
}

func TestAll(t *testing.T) {
	demos := All()
	names := make([]string, 0, len(demos))
	for _, demo := range demos {
		require.NotEmpty(t, demo.Description)
		require.NotNil(t, demo.Run)
		names = append(names, demo.Name)
	}
	require.Equal(t, []string{
		"system-prompts",
		"few-shot",
		"chain-of-thought",
		"role-play",
		"constraints",
		"structured-output",
	}, names)
}

func TestGet(t *testing.T) {
	demo, err := Get("few-shot")
	require.NoError(t, err)
	require.Equal(t, "few-shot", demo.Name)

	_, err = Get("nonexistent")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown demo")
}

// Demos report failing examples and keep going, so a broken client must
// never abort a run partway through.
func TestRunContinuesPastFailures(t *testing.T) {
	for _, demo := range All() {
		t.Run(demo.Name, func(t *testing.T) {
			client := &failingLLM{}
			err := demo.Run(context.Background(), client)
			require.NoError(t, err)
			require.Greater(t, client.calls, 1, "expected the demo to keep issuing requests after a failure")
		})
	}
}
