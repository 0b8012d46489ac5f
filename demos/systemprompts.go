package demos

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/contextcraft/console"
	"github.com/deepnoodle-ai/contextcraft/llm"
	"github.com/deepnoodle-ai/contextcraft/providers/openrouter"
)

// SystemPrompts shows the difference between cramming everything into
// one user message and properly separating system context from the
// user request.
var SystemPrompts = &Demo{
	Name:        "system-prompts",
	Description: "System vs user prompts: separation of concerns",
	Run:         runSystemPrompts,
}

func runSystemPrompts(ctx context.Context, client llm.LLM) error {
	fmt.Println("System vs User Prompts Demo")
	fmt.Println()

	badApproach(ctx, client)
	goodApproach(ctx, client)
	compareSystemPrompts(ctx, client)
	return nil
}

// badApproach crams the role instructions into the user message.
func badApproach(ctx context.Context, client llm.LLM) {
	console.Header("bad approach")

	text, err := generate(ctx, client, llm.NewSingleUserMessage(
		"You are a SQL expert. Fix this query: SELECT * FROM users WHERE age = '25'",
	))
	if err != nil {
		console.Error(err)
		return
	}
	fmt.Println("Query fix (bad approach):")
	console.Blue(text)
	fmt.Println()
	console.Rule(50)
	fmt.Println()
}

// goodApproach separates the behavioral instruction from the request.
func goodApproach(ctx context.Context, client llm.LLM) {
	console.Header("good approach")

	text, err := generate(ctx, client,
		llm.NewSingleUserMessage("Fix this query: SELECT * FROM users WHERE age = '25'"),
		llm.WithSystemPrompt("You are a SQL optimization expert. Focus on performance and security."),
	)
	if err != nil {
		console.Error(err)
		return
	}
	fmt.Println("Query fix (good approach):")
	console.Blue(text)
}

// compareSystemPrompts runs the same request under increasingly
// specific system prompts.
func compareSystemPrompts(ctx context.Context, client llm.LLM) {
	testQuery := "SELECT * FROM orders o, users u WHERE o.user_id = u.id AND o.total > 1000"

	approaches := []struct {
		name   string
		prompt string
	}{
		{"Generic", "You are a helpful assistant."},
		{"Specific", "You are a SQL optimization expert with 10 years of experience."},
		{"Context-Rich", `You are a senior database architect at a high-traffic e-commerce company.
Your expertise includes query optimization, index design, and performance troubleshooting.
Always consider scalability and maintainability in your recommendations.`},
	}

	console.Header("system prompt comparison")
	for _, approach := range approaches {
		console.Subheader(approach.name + " System Prompt")

		text, err := generate(ctx, client,
			llm.NewSingleUserMessage("Optimize this query: "+testQuery),
			llm.WithModel(openrouter.ModelLlama318BInstruct),
			llm.WithSystemPrompt(approach.prompt),
			llm.WithTemperature(0.3),
		)
		if err != nil {
			console.Error(err)
			continue
		}
		console.Blue(text)
		fmt.Println()
		console.Rule(50)
		fmt.Println()
	}
}
