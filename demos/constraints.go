package demos

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deepnoodle-ai/contextcraft/config"
	"github.com/deepnoodle-ai/contextcraft/console"
	"github.com/deepnoodle-ai/contextcraft/llm"
	"github.com/deepnoodle-ai/contextcraft/structured"
)

// Constraints demonstrates using strict constraints and rules to get
// reliable, predictable outputs.
var Constraints = &Demo{
	Name:        "constraints",
	Description: "Constraint-based prompting: hard boundaries for consistent outputs",
	Run:         runConstraints,
}

// migrationChanges describes the schema changes requested from the
// migration generator.
type migrationChanges struct {
	AddTable   string   `json:"add_table"`
	AddColumns []string `json:"add_columns"`
	AddIndex   string   `json:"add_index"`
}

func runConstraints(ctx context.Context, client llm.LLM) error {
	fmt.Println("Constraint-Based Prompting Demo")
	fmt.Println()

	if err := validateConstraintAdherence(ctx, client); err != nil {
		return err
	}

	fmt.Println()
	console.Rule(80)
	fmt.Println()

	demonstrateConstraintEnforcement(ctx, client)

	fmt.Println()
	console.Rule(80)
	fmt.Println()

	return testBoundaryConditions(ctx, client)
}

// generateMigrationScript generates a database migration under strict
// safety constraints.
func generateMigrationScript(ctx context.Context, client llm.LLM, changes migrationChanges) (string, error) {
	changesText, err := json.MarshalIndent(changes, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshaling changes: %w", err)
	}

	prompt := fmt.Sprintf(`Generate a migration script for these changes:
%s

HARD CONSTRAINTS (MUST follow):
- Use transactions for all DDL operations
- Include rollback statements
- Add IF EXISTS checks
- Maximum 5 operations per transaction
- Include timing estimates as comments

FORBIDDEN:
- Direct table drops without backups
- Changing primary keys
- Removing columns without deprecation notice
- Operations without explicit transaction boundaries

REQUIRED FORMAT:
- Start with migration metadata comment
- Each operation in separate transaction
- Rollback script at the end

Output format: Valid SQL with comments`, changesText)

	return generate(ctx, client,
		llm.NewSingleUserMessage(prompt),
		llm.WithSystemPrompt("You are a database migration expert. Safety is paramount."),
		llm.WithTemperature(0.1), // low temperature for consistency
	)
}

// generateConstrainedQuery generates SQL under a rule set, with
// optional request context rendered as JSON.
func generateConstrainedQuery(ctx context.Context, client llm.LLM, ruleSet *config.RuleSet, request string, requestContext map[string]any) (string, error) {
	contextText := ""
	if requestContext != nil {
		rendered, err := json.MarshalIndent(requestContext, "", "  ")
		if err != nil {
			return "", fmt.Errorf("error marshaling context: %w", err)
		}
		contextText = fmt.Sprintf("\nCONTEXT:\n%s\n", rendered)
	}

	prompt := fmt.Sprintf(`Generate SQL query for: %s

%s
%s
VIOLATION OF ANY CONSTRAINT WILL RESULT IN REJECTION.

Return only valid SQL that follows ALL constraints.`, request, ruleSet.ConstraintsText(), contextText)

	return generate(ctx, client,
		llm.NewSingleUserMessage(prompt),
		llm.WithSystemPrompt("You are a SQL generator. You MUST follow all constraints exactly. Never violate security or performance rules."),
		llm.WithTemperature(0.0), // zero temperature for maximum consistency
	)
}

func validateConstraintAdherence(ctx context.Context, client llm.LLM) error {
	console.Header("constraint adherence test")
	fmt.Println()

	console.Subheader("Migration Script Generation")
	changes := migrationChanges{
		AddTable:   "user_preferences",
		AddColumns: []string{"theme", "notification_settings"},
		AddIndex:   "idx_user_preferences_user_id",
	}
	script, err := generateMigrationScript(ctx, client, changes)
	if err != nil {
		console.Error(err)
	} else {
		fmt.Println("Generated Migration:")
		console.Blue(script)
	}
	console.Divider(50)

	console.Subheader("Security Constrained Generator")
	securityRules, err := config.GetRuleSet("security")
	if err != nil {
		return err
	}
	securityRequests := []string{
		"Find users by email address",
		"Get user login history",
		"Search products by name",
	}
	for _, request := range securityRequests {
		fmt.Printf("\nRequest: %s\n", request)
		result, err := generateConstrainedQuery(ctx, client, securityRules, request,
			map[string]any{"max_results": 100, "user_role": "admin"})
		if err != nil {
			console.Error(err)
			continue
		}
		fmt.Println("Generated Query:")
		console.Blue(result)
	}
	console.Divider(50)

	console.Subheader("Performance Constrained Generator")
	performanceRules, err := config.GetRuleSet("performance")
	if err != nil {
		return err
	}
	performanceRequests := []string{
		"Get top selling products",
		"Find customers with high order values",
		"Generate monthly sales report",
	}
	for _, request := range performanceRequests {
		fmt.Printf("\nRequest: %s\n", request)
		result, err := generateConstrainedQuery(ctx, client, performanceRules, request,
			map[string]any{"reporting_period": "last_30_days"})
		if err != nil {
			console.Error(err)
			continue
		}
		fmt.Println("Generated Query:")
		console.Blue(result)
	}
	return nil
}

// demonstrateConstraintEnforcement forces a strict JSON output format
// and checks whether the responses actually parse.
func demonstrateConstraintEnforcement(ctx context.Context, client llm.LLM) {
	console.Header("constraint enforcement demo")
	fmt.Println()

	formatRules := &config.RuleSet{
		Name: "format",
		Categories: []config.RuleCategory{
			{Name: "output_format", Rules: []string{
				"MUST return valid JSON only",
				"NO explanatory text outside JSON",
				"INCLUDE confidence score (0-1)",
				"REQUIRED fields: query, explanation, estimated_cost",
				"USE lowercase keys only",
			}},
			{Name: "query_rules", Rules: []string{
				"MAXIMUM 100 characters per line",
				"PROPER indentation (2 spaces)",
				"INCLUDE query type comment",
				"END with semicolon",
			}},
		},
	}

	fmt.Println("Testing format constraints:")
	requests := []string{
		"Count active users",
		"Find expensive orders",
		"List product categories",
	}

	for _, request := range requests {
		fmt.Printf("\nRequest: %s\n", request)

		prompt := fmt.Sprintf(`Generate SQL query for: %s

%s
RETURN ONLY VALID JSON:
{
    "query": "SQL query here",
    "explanation": "brief explanation",
    "estimated_cost": "low|medium|high",
    "confidence": 0.95
}

NO OTHER TEXT ALLOWED.`, request, formatRules.ConstraintsText())

		result, err := generate(ctx, client,
			llm.NewSingleUserMessage(prompt),
			llm.WithSystemPrompt("You are a JSON-only SQL generator. Output ONLY valid JSON. No explanations."),
			llm.WithTemperature(0.0),
		)
		if err != nil {
			console.Error(err)
			continue
		}
		fmt.Println("JSON Output:")
		console.Blue(result)

		if json.Valid([]byte(structured.StripFence(result))) {
			fmt.Println("OK: valid JSON format")
		} else {
			fmt.Println("FAIL: invalid JSON format")
		}
	}
}

// testBoundaryConditions probes how the model handles conflicting
// constraints and difficult requests.
func testBoundaryConditions(ctx context.Context, client llm.LLM) error {
	console.Header("boundary conditions test")
	fmt.Println()

	conflictingRules, err := config.GetRuleSet("conflicting")
	if err != nil {
		return err
	}

	difficultRequests := []string{
		"Search all text fields for any mention of a user-provided term",
		"Generate a dynamic report with user-defined columns and filters",
		"Find similar records using fuzzy matching across all tables",
	}

	for _, request := range difficultRequests {
		fmt.Printf("Challenging request: %s\n", request)
		result, err := generateConstrainedQuery(ctx, client, conflictingRules, request, nil)
		if err != nil {
			console.Error(err)
		} else {
			fmt.Println("Response:")
			console.Blue(result)
		}
		console.Divider(40)
	}
	return nil
}
