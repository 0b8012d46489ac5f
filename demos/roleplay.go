package demos

import (
	"context"
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/contextcraft/config"
	"github.com/deepnoodle-ai/contextcraft/console"
	"github.com/deepnoodle-ai/contextcraft/llm"
)

// RolePlay demonstrates how detailed role definitions improve output
// quality compared to generic "expert" prompts.
var RolePlay = &Demo{
	Name:        "role-play",
	Description: "Role-playing prompts: specialized expert personas",
	Run:         runRolePlay,
}

var expertRoles = []struct {
	name   string
	prompt string
}{
	{"junior", `You are a junior developer learning SQL best practices.
You focus on basic correctness and readability.
You ask clarifying questions when unsure.`},
	{"senior", `You are a senior database architect with 15 years optimizing Fortune 500 databases.
You've worked with systems handling millions of records daily.
You consider performance, maintainability, and scalability in every recommendation.`},
	{"security", `You are a database security specialist focused on SQL injection prevention.
You've seen countless breaches caused by poor SQL practices.
Security is your top priority, followed by performance.`},
	{"consultant", `You are a database consultant who bills $300/hour.
Clients expect practical, business-focused solutions that save money.
You always consider the business impact of your technical recommendations.`},
}

var industryContexts = []struct {
	name   string
	prompt string
}{
	{"fintech", `You are a financial technology database expert.
You've worked with trading systems requiring microsecond latency.
Compliance (SOX, PCI-DSS) and audit trails are non-negotiable.
Data consistency and ACID properties are paramount.`},
	{"ecommerce", `You are a database architect specializing in e-commerce platforms.
You've scaled systems from startup to handling Black Friday traffic.
You understand inventory management, order processing, and customer analytics.
Performance during peak shopping periods is critical.`},
	{"gaming", `You are a database engineer for online gaming platforms.
You've handled millions of concurrent players and real-time leaderboards.
Low latency and high availability are essential for player experience.
Anti-cheat measures and data analytics drive your decisions.`},
	{"healthcare", `You are a healthcare database specialist.
You understand HIPAA compliance and patient data protection.
Uptime is critical - lives depend on system availability.
Data integrity and audit trails are legally required.`},
}

func runRolePlay(ctx context.Context, client llm.LLM) error {
	fmt.Println("Role-Playing Prompts Demo")
	fmt.Println()

	demonstrateRoleDifferences(ctx, client)

	fmt.Println()
	console.Rule(80)
	fmt.Println()

	demonstrateIndustryPerspectives(ctx, client)

	fmt.Println()
	console.Rule(80)
	fmt.Println()

	return demonstrateDetailedPersonas(ctx, client)
}

// analyzeAsExpert runs an analysis under a role definition with a
// shared approach and response format appended.
func analyzeAsExpert(ctx context.Context, client llm.LLM, rolePrompt, query, queryContext string) (string, error) {
	systemPrompt := fmt.Sprintf(`%s

Your approach:
- Identify issues before suggesting fixes
- Explain trade-offs, not just solutions
- Consider the business context
- Provide actionable recommendations

Response format:
1. ISSUES FOUND: [list]
2. IMPACT: [business impact]
3. RECOMMENDATIONS: [specific fixes]
4. ALTERNATIVE APPROACHES: [if applicable]`, rolePrompt)

	return generate(ctx, client,
		llm.NewSingleUserMessage(fmt.Sprintf("Context: %s\n\nQuery: %s", queryContext, query)),
		llm.WithSystemPrompt(systemPrompt),
		llm.WithTemperature(0.3),
	)
}

// analyzeForIndustry runs an analysis under an industry-specific
// context.
func analyzeForIndustry(ctx context.Context, client llm.LLM, industryPrompt, query, queryContext string) (string, error) {
	systemPrompt := fmt.Sprintf(`%s

Consider industry-specific requirements:
- Regulatory compliance
- Performance characteristics
- Business criticality
- Risk tolerance

Provide recommendations that fit this industry context.`, industryPrompt)

	return generate(ctx, client,
		llm.NewSingleUserMessage(fmt.Sprintf("Context: %s\n\nQuery: %s", queryContext, query)),
		llm.WithSystemPrompt(systemPrompt),
		llm.WithTemperature(0.2),
	)
}

func demonstrateRoleDifferences(ctx context.Context, client llm.LLM) {
	vulnerableQuery := "SELECT * FROM users WHERE username = '" + "user_input" + "'"
	queryContext := "Public-facing login system with 10M users"

	console.Header("role-based analysis comparison")
	fmt.Println()
	fmt.Printf("Query: %s\n", vulnerableQuery)
	fmt.Printf("Context: %s\n", queryContext)
	console.Rule(60)

	for _, role := range expertRoles {
		console.Subheader(strings.ToUpper(role.name) + " PERSPECTIVE")
		result, err := analyzeAsExpert(ctx, client, role.prompt, vulnerableQuery, queryContext)
		if err != nil {
			console.Error(err)
		} else {
			console.Blue(result)
		}
		console.Divider(40)
	}
}

func demonstrateIndustryPerspectives(ctx context.Context, client llm.LLM) {
	query := `SELECT user_id, COUNT(*) as transaction_count, SUM(amount) as total_amount
FROM transactions
WHERE created_at > NOW() - INTERVAL 1 DAY
GROUP BY user_id
HAVING total_amount > 10000`
	queryContext := "Daily suspicious activity report"

	console.Header("industry-specific analysis")
	fmt.Println()
	fmt.Printf("Query: %s\n", query)
	fmt.Printf("Context: %s\n", queryContext)
	console.Rule(60)

	for _, industry := range industryContexts {
		console.Subheader(strings.ToUpper(industry.name) + " INDUSTRY")
		result, err := analyzeForIndustry(ctx, client, industry.prompt, query, queryContext)
		if err != nil {
			console.Error(err)
		} else {
			console.Blue(result)
		}
		console.Divider(40)
	}
}

// demonstrateDetailedPersonas shows how fully specified personas with a
// background and personality affect the analysis. Persona definitions
// ship as embedded YAML.
func demonstrateDetailedPersonas(ctx context.Context, client llm.LLM) error {
	personas, err := config.LoadPersonas()
	if err != nil {
		return err
	}

	query := "SELECT * FROM user_activity WHERE session_duration > 3600"
	queryContext := "Analyzing user engagement patterns"

	console.Header("detailed persona analysis")
	fmt.Println()
	fmt.Printf("Query: %s\n", query)
	fmt.Printf("Context: %s\n", queryContext)
	console.Rule(60)

	for _, persona := range personas {
		console.Subheader(fmt.Sprintf("%s (%s)", strings.ToUpper(persona.Name), persona.Title))
		result, err := generate(ctx, client,
			llm.NewSingleUserMessage(fmt.Sprintf("Context: %s\n\nQuery: %s", queryContext, query)),
			llm.WithSystemPrompt(persona.SystemPrompt()),
			llm.WithTemperature(0.4), // slightly higher for personality
		)
		if err != nil {
			console.Error(err)
		} else {
			console.Blue(result)
		}
		console.Divider(40)
	}
	return nil
}
