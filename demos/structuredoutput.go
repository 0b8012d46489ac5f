package demos

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/contextcraft/console"
	"github.com/deepnoodle-ai/contextcraft/llm"
	"github.com/deepnoodle-ai/contextcraft/schema"
	"github.com/deepnoodle-ai/contextcraft/structured"
)

// StructuredOutput demonstrates forcing reliable JSON responses instead
// of free-form text, using the bounded-retry extractor.
var StructuredOutput = &Demo{
	Name:        "structured-output",
	Description: "Structured output: force reliable JSON responses",
	Run:         runStructuredOutput,
}

// queryAnalysis is the shape of a structured query analysis. The field
// tags become the schema rendered into the prompt.
type queryAnalysis struct {
	Tables                  []string `json:"tables" description:"list of table names"`
	Operations              []string `json:"operations" description:"list of SQL operations"`
	Complexity              string   `json:"complexity" enum:"low,medium,high"`
	EstimatedRuntime        int      `json:"estimated_runtime" description:"seconds as integer"`
	PotentialIssues         []string `json:"potential_issues" description:"list of potential problems"`
	OptimizationSuggestions []string `json:"optimization_suggestions" description:"list of improvements"`
	ConfidenceScore         float64  `json:"confidence_score" description:"float between 0 and 1"`
}

// securityAudit is the shape of a structured security audit.
type securityAudit struct {
	VulnerabilityLevel     string   `json:"vulnerability_level" enum:"low,medium,high,critical"`
	VulnerabilitiesFound   []string `json:"vulnerabilities_found" description:"list of security issues"`
	SQLInjectionRisk       bool     `json:"sql_injection_risk"`
	DataExposureRisk       bool     `json:"data_exposure_risk"`
	Recommendations        []string `json:"recommendations" description:"list of security fixes"`
	CompliantWithStandards []string `json:"compliant_with_standards" description:"list of standards: OWASP, PCI-DSS, etc"`
	AuditScore             int      `json:"audit_score" description:"integer 1-10"`
}

// performanceReport is the shape of a structured performance report,
// including a nested resource usage object.
type performanceReport struct {
	EstimatedExecutionTime string `json:"estimated_execution_time" description:"string with units"`
	ResourceUsage          struct {
		CPUIntensive    bool `json:"cpu_intensive"`
		MemoryIntensive bool `json:"memory_intensive"`
		IOIntensive     bool `json:"io_intensive"`
	} `json:"resource_usage"`
	ScalabilityConcerns   []string `json:"scalability_concerns" description:"list of scalability issues"`
	RecommendedIndexes    []string `json:"recommended_indexes" description:"list of index suggestions"`
	AlternativeApproaches []string `json:"alternative_approaches" description:"list of alternative query strategies"`
	Bottlenecks           []string `json:"bottlenecks" description:"list of performance bottlenecks"`
	OptimizationPriority  string   `json:"optimization_priority" enum:"low,medium,high"`
}

func runStructuredOutput(ctx context.Context, client llm.LLM) error {
	fmt.Println("Structured Output Demo")
	fmt.Println()

	if err := demonstrateBasicExtraction(ctx, client); err != nil {
		return err
	}

	fmt.Println()
	console.Rule(80)
	fmt.Println()

	if err := demonstrateQueryAnalysis(ctx, client); err != nil {
		return err
	}
	console.Rule(80)
	fmt.Println()

	if err := demonstrateSecurityAudit(ctx, client); err != nil {
		return err
	}
	console.Rule(80)
	fmt.Println()

	if err := demonstratePerformanceReport(ctx, client); err != nil {
		return err
	}
	console.Rule(80)
	fmt.Println()

	testEdgeCases(ctx, client)
	return nil
}

// printResult renders an extracted mapping as indented JSON.
func printResult(result map[string]any) {
	rendered, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		console.Error(err)
		return
	}
	console.Blue(string(rendered))
}

// demonstrateBasicExtraction shows a single-attempt extraction from
// free text using an informal description-only schema.
func demonstrateBasicExtraction(ctx context.Context, client llm.LLM) error {
	basicSchema := schema.New(map[string]string{
		"tables":            "list of table names",
		"operations":        "list of SQL operations",
		"complexity":        "low|medium|high",
		"estimated_runtime": "seconds as integer",
	})

	queryText := "This query joins users with orders and filters by date, grouping results by region"

	console.Header("basic extraction")
	fmt.Printf("Input: %s\n", queryText)

	extractor := structured.New(client, basicSchema,
		structured.WithMaxAttempts(1),
		structured.WithSystemPrompt("You are a JSON extraction expert. Output only valid JSON."),
	)
	result, err := extractor.Extract(ctx, "Extract information from this text: "+queryText)
	if err != nil {
		console.Error(err)
		return nil
	}
	fmt.Println("Extracted:")
	printResult(result)
	return nil
}

func demonstrateQueryAnalysis(ctx context.Context, client llm.LLM) error {
	analysisSchema, err := schema.Generate(queryAnalysis{})
	if err != nil {
		return err
	}
	extractor := structured.New(client, analysisSchema,
		structured.WithSystemPrompt("You are a SQL analysis API that returns only JSON."),
	)

	queriesToAnalyze := []string{
		`SELECT u.name, COUNT(o.id) as order_count, SUM(o.total) as total_spent
FROM users u
LEFT JOIN orders o ON u.id = o.user_id
WHERE u.created_at > '2024-01-01'
GROUP BY u.id
HAVING order_count > 5
ORDER BY total_spent DESC`,
		`SELECT * FROM products p, categories c, orders o, order_items oi
WHERE p.category_id = c.id
AND oi.product_id = p.id
AND oi.order_id = o.id`,
		`SELECT user_id FROM sessions WHERE last_activity > NOW() - INTERVAL 1 HOUR`,
	}

	console.Header("structured query analysis")
	fmt.Println()

	for i, query := range queriesToAnalyze {
		console.Subheader(fmt.Sprintf("Analysis %d", i+1))
		fmt.Printf("Query: %s\n", strings.TrimSpace(query))

		result, err := extractor.Extract(ctx, "Analyze this SQL query and provide structured output: "+query)
		if err != nil {
			console.Error(err)
			fmt.Println()
			continue
		}
		fmt.Println("Analysis:")
		printResult(result)
		fmt.Println()
	}
	return nil
}

func demonstrateSecurityAudit(ctx context.Context, client llm.LLM) error {
	auditSchema, err := schema.Generate(securityAudit{})
	if err != nil {
		return err
	}
	extractor := structured.New(client, auditSchema,
		structured.WithSystemPrompt("You are a security audit API that identifies vulnerabilities and returns only JSON."),
	)

	vulnerableQueries := []string{
		"SELECT * FROM users WHERE username = '" + "user_input" + "'",
		"SELECT * FROM credit_cards WHERE user_id = 123",
		"SELECT password_hash, salt FROM users WHERE email = ?",
		"UPDATE users SET admin = 1 WHERE user_id = " + "user_controlled_id",
	}

	console.Header("structured security audit")
	fmt.Println()

	for i, query := range vulnerableQueries {
		console.Subheader(fmt.Sprintf("Security Audit %d", i+1))
		fmt.Printf("Query: %s\n", query)

		result, err := extractor.Extract(ctx, "Perform a security audit on this SQL query: "+query)
		if err != nil {
			console.Error(err)
			fmt.Println()
			continue
		}
		fmt.Println("Security Audit:")
		printResult(result)
		fmt.Println()
	}
	return nil
}

func demonstratePerformanceReport(ctx context.Context, client llm.LLM) error {
	reportSchema, err := schema.Generate(performanceReport{})
	if err != nil {
		return err
	}
	extractor := structured.New(client, reportSchema,
		structured.WithSystemPrompt("You are a database performance analysis API that returns only JSON."),
	)

	performanceQueries := []string{
		`SELECT COUNT(*) FROM orders o
JOIN order_items oi ON o.id = oi.order_id
JOIN products p ON oi.product_id = p.id
WHERE o.created_at > '2023-01-01'`,
		`SELECT u.*,
       (SELECT COUNT(*) FROM orders WHERE user_id = u.id) as order_count,
       (SELECT SUM(total) FROM orders WHERE user_id = u.id) as total_spent
FROM users u`,
		`SELECT * FROM logs
WHERE message LIKE '%error%'
AND created_at BETWEEN '2024-01-01' AND '2024-12-31'
ORDER BY created_at DESC`,
	}

	console.Header("structured performance report")
	fmt.Println()

	for i, query := range performanceQueries {
		console.Subheader(fmt.Sprintf("Performance Report %d", i+1))
		fmt.Printf("Query: %s\n", strings.TrimSpace(query))

		result, err := extractor.Extract(ctx, "Analyze the performance characteristics of this query: "+query)
		if err != nil {
			console.Error(err)
			fmt.Println()
			continue
		}
		fmt.Println("Performance Report:")
		printResult(result)
		fmt.Println()
	}
	return nil
}

// testEdgeCases feeds awkward inputs through a minimal schema. Failures
// here are expected and reported without stopping the loop.
func testEdgeCases(ctx context.Context, client llm.LLM) {
	simpleSchema := schema.New(map[string]string{
		"status":  "success|error",
		"message": "string",
		"data":    "any valid JSON value or null",
	})
	extractor := structured.New(client, simpleSchema,
		structured.WithSystemPrompt("Handle any input and return structured JSON response."),
	)

	edgeCases := []string{
		"Analyze this completely invalid SQL: SELECT * FROM nowhere WHERE nothing = everything",
		"What is the meaning of life?",
		"Generate a SQL query for something impossible",
		"", // empty input
	}

	console.Header("edge cases test")
	fmt.Println()

	for i, edgeCase := range edgeCases {
		console.Subheader(fmt.Sprintf("Edge Case %d", i+1))
		fmt.Printf("Input: '%s'\n", edgeCase)

		result, err := extractor.Extract(ctx, edgeCase)
		if err != nil {
			console.Error(err)
			fmt.Println()
			continue
		}
		fmt.Println("Response:")
		printResult(result)
		fmt.Println()
	}
}
