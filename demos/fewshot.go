package demos

import (
	"context"
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/deepnoodle-ai/contextcraft/console"
	"github.com/deepnoodle-ai/contextcraft/llm"
)

// FewShot demonstrates how providing examples improves model output
// compared to instructions alone.
var FewShot = &Demo{
	Name:        "few-shot",
	Description: "Few-shot learning: teaching patterns through examples",
	Run:         runFewShot,
}

const sqlExtractionPrompt = "Extract SQL queries from natural language. Return only valid SQL."

// mock database schema used by the schema-aware variant
var mockSchema = []struct {
	table   string
	columns []string
}{
	{"customers", []string{"customer_id", "name", "email", "total_spent", "created_at"}},
	{"products", []string{"product_id", "name", "price", "inventory_count", "category"}},
	{"orders", []string{"order_id", "customer_id", "status", "total", "created_at", "shipped_at"}},
	{"employees", []string{"employee_id", "name", "department", "start_date", "salary"}},
}

func runFewShot(ctx context.Context, client llm.LLM) error {
	fmt.Println("Few-Shot Learning Demo")
	fmt.Println()

	compareFewShotApproaches(ctx, client)
	demonstratePatternLearning(ctx, client)
	return nil
}

// zeroShot sends just instructions, no examples.
func zeroShot(ctx context.Context, client llm.LLM, userQuery string) (string, error) {
	return generate(ctx, client,
		llm.NewSingleUserMessage(userQuery),
		llm.WithSystemPrompt(sqlExtractionPrompt),
	)
}

// fewShot provides examples to establish the pattern before the actual
// query.
func fewShot(ctx context.Context, client llm.LLM, userQuery string) (string, error) {
	var messages []*llm.Message
	messages = llm.NewExchange(messages,
		"Show me all users from Texas",
		"SELECT * FROM users WHERE state = 'TX';")
	messages = llm.NewExchange(messages,
		"Count orders from last month",
		"SELECT COUNT(*) FROM orders WHERE date >= DATE_SUB(CURDATE(), INTERVAL 1 MONTH);")
	messages = llm.NewExchange(messages,
		"Find users who joined this year",
		"SELECT * FROM users WHERE YEAR(created_at) = YEAR(CURDATE());")
	messages = append(messages, llm.NewUserMessage(userQuery))

	return generate(ctx, client, messages,
		llm.WithSystemPrompt(sqlExtractionPrompt),
	)
}

// advancedFewShot adds the table schema to the system prompt along with
// context-aware examples.
func advancedFewShot(ctx context.Context, client llm.LLM, userQuery string) (string, error) {
	var schemaInfo strings.Builder
	schemaInfo.WriteString("Available tables and columns:\n")
	for _, t := range mockSchema {
		schemaInfo.WriteString(fmt.Sprintf("- %s: %s\n", t.table, strings.Join(t.columns, ", ")))
	}

	var messages []*llm.Message
	messages = llm.NewExchange(messages,
		"Show high-value customers",
		"SELECT customer_id, name, total_spent FROM customers WHERE total_spent > 10000 ORDER BY total_spent DESC;")
	messages = llm.NewExchange(messages,
		"Find recent orders that are still processing",
		"SELECT order_id, customer_id, created_at FROM orders WHERE status = 'processing' AND created_at >= DATE_SUB(NOW(), INTERVAL 7 DAY);")
	messages = append(messages, llm.NewUserMessage(userQuery))

	return generate(ctx, client, messages,
		llm.WithSystemPrompt("You are a SQL expert. Generate queries based on the schema.\n\n"+schemaInfo.String()),
		llm.WithTemperature(0.2),
	)
}

func compareFewShotApproaches(ctx context.Context, client llm.LLM) {
	testQueries := []string{
		"Find customers who spent over 1000",
		"Get products that are running low on inventory",
		"Show me orders from the last week that haven't shipped",
		"List employees who started this month",
	}

	console.Header("zero-shot vs few-shot comparison")
	fmt.Println()

	for i, query := range testQueries {
		fmt.Printf("Query %d: '%s'\n", i+1, query)
		console.Divider(50)

		fmt.Println("Zero-shot result:")
		zeroResult, err := zeroShot(ctx, client, query)
		if err != nil {
			console.Error(err)
		} else {
			console.Blue(zeroResult)
		}

		fmt.Println("\nFew-shot result:")
		fewResult, err := fewShot(ctx, client, query)
		if err != nil {
			console.Error(err)
		} else {
			console.Blue(fewResult)
		}

		if zeroResult != "" && fewResult != "" {
			fmt.Println("\nZero-shot vs few-shot diff:")
			fmt.Println(unifiedDiff(zeroResult, fewResult))
		}

		fmt.Println("\nAdvanced few-shot with schema:")
		advancedResult, err := advancedFewShot(ctx, client, query)
		if err != nil {
			console.Error(err)
		} else {
			console.Blue(advancedResult)
		}

		fmt.Println()
		console.Rule(70)
		fmt.Println()
	}
}

// unifiedDiff renders a unified diff between two model outputs.
func unifiedDiff(a, b string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: "zero-shot",
		ToFile:   "few-shot",
		Context:  2,
	})
	if err != nil {
		return ""
	}
	return diff
}

// demonstratePatternLearning shows how few-shot examples teach specific
// output formats.
func demonstratePatternLearning(ctx context.Context, client llm.LLM) {
	console.Header("pattern learning demo")
	fmt.Println()

	patterns := []struct {
		name     string
		examples [][2]string
		test     string
	}{
		{
			name: "Error Analysis",
			examples: [][2]string{
				{"This query is slow", "ISSUE: Performance | CAUSE: Missing index | FIX: ADD INDEX idx_user_email ON users(email)"},
				{"Query returns wrong data", "ISSUE: Logic error | CAUSE: Incorrect JOIN condition | FIX: Change INNER JOIN to LEFT JOIN"},
			},
			test: "Query times out",
		},
		{
			name: "Code Review",
			examples: [][2]string{
				{"SELECT * FROM users", "RATING: 2/5 | ISSUES: Using SELECT *, no WHERE clause | IMPROVE: Specify columns, add filtering"},
				{"SELECT u.id, u.name FROM users u WHERE u.active = 1", "RATING: 4/5 | ISSUES: None major | IMPROVE: Consider adding LIMIT for large datasets"},
			},
			test: "SELECT COUNT(*) FROM orders o, users u WHERE o.user_id = u.id",
		},
	}

	for _, pattern := range patterns {
		console.Subheader(pattern.name + " Pattern")

		var messages []*llm.Message
		for _, example := range pattern.examples {
			messages = llm.NewExchange(messages, example[0], example[1])
		}
		messages = append(messages, llm.NewUserMessage(pattern.test))

		text, err := generate(ctx, client, messages,
			llm.WithSystemPrompt("You are a SQL expert. Follow the exact format shown in examples."),
			llm.WithTemperature(0.1),
		)
		if err != nil {
			console.Error(err)
			continue
		}
		fmt.Printf("Input: %s\n", pattern.test)
		fmt.Println("Output:")
		console.Blue(text)
		fmt.Println()
	}
}
