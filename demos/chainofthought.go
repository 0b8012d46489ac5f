package demos

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deepnoodle-ai/contextcraft/console"
	"github.com/deepnoodle-ai/contextcraft/llm"
	"github.com/deepnoodle-ai/contextcraft/providers/openrouter"
)

// ChainOfThought demonstrates getting the model to show its reasoning
// step by step.
var ChainOfThought = &Demo{
	Name:        "chain-of-thought",
	Description: "Chain-of-thought: making the model show its reasoning",
	Run:         runChainOfThought,
}

// executionStats describes query runtime characteristics included in
// the debugging prompt.
type executionStats struct {
	ExecutionTime string `json:"execution_time"`
	RowsExamined  int    `json:"rows_examined"`
	RowsReturned  int    `json:"rows_returned"`
	TempTables    int    `json:"temp_tables"`
	Filesort      bool   `json:"filesort"`
}

func runChainOfThought(ctx context.Context, client llm.LLM) error {
	fmt.Println("Chain-of-Thought Reasoning Demo")
	fmt.Println()

	compareReasoningApproaches(ctx, client)

	fmt.Println()
	console.Rule(80)
	fmt.Println()

	demonstrateComplexReasoning(ctx, client)
	return nil
}

// analyzeQueryPerformance asks for a step-by-step analysis of one query.
func analyzeQueryPerformance(ctx context.Context, client llm.LLM, sqlQuery string) (string, error) {
	cotPrompt := fmt.Sprintf(`Analyze this SQL query step by step:
%s

Follow these steps:
1. Identify the tables involved
2. Check for missing indexes
3. Spot potential N+1 problems
4. Suggest optimizations

Show your reasoning for each step.`, sqlQuery)

	return generate(ctx, client,
		llm.NewSingleUserMessage(cotPrompt),
		llm.WithSystemPrompt("You are a database performance expert. Think step-by-step."),
		llm.WithTemperature(0.2),
	)
}

// debugSlowQuery walks through a slow query systematically, with the
// execution statistics rendered into the prompt as JSON.
func debugSlowQuery(ctx context.Context, client llm.LLM, query string, stats executionStats) (string, error) {
	statsText, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshaling stats: %w", err)
	}

	debugPrompt := fmt.Sprintf(`I have a slow SQL query that needs debugging. Let me walk through this systematically.

Query:
%s

Execution Statistics:
%s

Please debug this step by step:

Step 1: Analyze the execution plan
- What does the execution plan tell us?
- Where are the bottlenecks?

Step 2: Identify performance issues
- What specific operations are slow?
- Are there missing indexes?
- Are there inefficient joins?

Step 3: Propose solutions
- What indexes should be added?
- How can the query be rewritten?
- What alternative approaches exist?

Step 4: Estimate impact
- How much improvement can we expect?
- What are the trade-offs?

Think through each step carefully and show your reasoning.`, query, statsText)

	return generate(ctx, client,
		llm.NewSingleUserMessage(debugPrompt),
		llm.WithModel(openrouter.ModelLlama3170BInstruct),
		llm.WithSystemPrompt("You are a senior database performance engineer. Always show your step-by-step reasoning."),
		llm.WithTemperature(0.3),
	)
}

// designDatabaseSchema asks for a schema design with explicit reasoning
// at every step.
func designDatabaseSchema(ctx context.Context, client llm.LLM, requirements string) (string, error) {
	designPrompt := fmt.Sprintf(`Design a database schema for these requirements:
%s

Work through this systematically:

Step 1: Identify entities
- What are the main objects/concepts?
- What are their key attributes?

Step 2: Define relationships
- How do entities relate to each other?
- What are the cardinalities (1:1, 1:N, N:N)?

Step 3: Normalize the design
- Are there any redundant data?
- Should we split or merge tables?
- What normal form should we target?

Step 4: Consider performance
- What queries will be most common?
- Where should we add indexes?
- Are there denormalization opportunities?

Step 5: Plan for scale
- How will this grow over time?
- What are potential bottlenecks?

Show your reasoning for each step and provide the final schema.`, requirements)

	return generate(ctx, client,
		llm.NewSingleUserMessage(designPrompt),
		llm.WithModel(openrouter.ModelLlama3170BInstruct),
		llm.WithSystemPrompt("You are a database architect. Always explain your design decisions step-by-step."),
		llm.WithTemperature(0.2),
	)
}

func compareReasoningApproaches(ctx context.Context, client llm.LLM) {
	testQuery := `SELECT u.name, COUNT(o.id) as order_count, SUM(o.total) as total_spent
FROM users u
LEFT JOIN orders o ON u.id = o.user_id
WHERE u.created_at > '2024-01-01'
GROUP BY u.id
HAVING order_count > 5
ORDER BY total_spent DESC`

	console.Header("direct vs chain-of-thought comparison")
	fmt.Println()

	console.Subheader("Direct Approach")
	directResult, err := generate(ctx, client,
		llm.NewSingleUserMessage("Optimize this query: "+testQuery),
		llm.WithSystemPrompt("You are a SQL expert. Optimize this query."),
		llm.WithTemperature(0.3),
	)
	if err != nil {
		console.Error(err)
	} else {
		console.Blue(directResult)
	}

	fmt.Println()
	console.Rule(60)
	fmt.Println()

	console.Subheader("Chain-of-Thought Approach")
	cotResult, err := analyzeQueryPerformance(ctx, client, testQuery)
	if err != nil {
		console.Error(err)
	} else {
		console.Blue(cotResult)
	}
}

func demonstrateComplexReasoning(ctx context.Context, client llm.LLM) {
	console.Header("complex reasoning demo")
	fmt.Println()

	console.Subheader("Query Debugging Example")
	slowQuery := "SELECT * FROM orders o, users u, products p WHERE o.user_id = u.id AND o.product_id = p.id"
	stats := executionStats{
		ExecutionTime: "15.2 seconds",
		RowsExamined:  50000000,
		RowsReturned:  25000,
		TempTables:    2,
		Filesort:      true,
	}

	debugResult, err := debugSlowQuery(ctx, client, slowQuery, stats)
	if err != nil {
		console.Error(err)
	} else {
		console.Blue(debugResult)
	}

	fmt.Println()
	console.Rule(60)
	fmt.Println()

	console.Subheader("Schema Design Example")
	requirements := `E-commerce platform requirements:
- Users can place orders containing multiple products
- Products belong to categories and have variants (size, color)
- Track inventory levels for each product variant
- Users have shipping addresses and payment methods
- Need to handle returns and refunds
- Support discount codes and promotions
- Track user behavior and analytics`

	designResult, err := designDatabaseSchema(ctx, client, requirements)
	if err != nil {
		console.Error(err)
	} else {
		console.Blue(designResult)
	}
}
