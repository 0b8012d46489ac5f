// Package demos contains the runnable context-engineering
// demonstrations. Each demo builds role-tagged
// message lists, sends them to the model, and prints the responses for
// side-by-side comparison. A failing example is reported and never
// aborts the rest of its demo.
package demos

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/contextcraft/llm"
)

// Demo is a named, runnable demonstration.
type Demo struct {
	Name        string
	Description string
	Run         func(ctx context.Context, client llm.LLM) error
}

// All returns the demos in presentation order, simplest technique
// first.
func All() []*Demo {
	return []*Demo{
		SystemPrompts,
		FewShot,
		ChainOfThought,
		RolePlay,
		Constraints,
		StructuredOutput,
	}
}

// Get returns the demo with the given name.
func Get(name string) (*Demo, error) {
	for _, demo := range All() {
		if demo.Name == name {
			return demo, nil
		}
	}
	return nil, fmt.Errorf("unknown demo: %q", name)
}

// generate issues one completion and returns the response text.
func generate(ctx context.Context, client llm.LLM, messages []*llm.Message, opts ...llm.GenerateOption) (string, error) {
	response, err := client.Generate(ctx, messages, opts...)
	if err != nil {
		return "", err
	}
	return response.Text(), nil
}
