package openrouter

// Model identifiers in OpenRouter's provider/model format. The demos
// default to small free-tier models so they can be run without a paid
// account.
const (
	// OpenAI models
	ModelGPTOSS20BFree = "openai/gpt-oss-20b:free"
	ModelGPTOSS20B     = "openai/gpt-oss-20b"
	ModelGPT4o         = "openai/gpt-4o"
	ModelGPT4oMini     = "openai/gpt-4o-mini"
	ModelGPT5          = "openai/gpt-5"

	// Meta models
	ModelLlama318BInstruct  = "meta-llama/llama-3.1-8b-instruct"
	ModelLlama3170BInstruct = "meta-llama/llama-3.1-70b-instruct"

	// Anthropic models
	ModelClaudeSonnet45 = "anthropic/claude-sonnet-4-5"
	ModelClaudeHaiku45  = "anthropic/claude-haiku-4-5"

	// Google models
	ModelGemini25Pro   = "google/gemini-2.5-pro"
	ModelGemini25Flash = "google/gemini-2.5-flash"

	// DeepSeek models
	ModelDeepSeekR1 = "deepseek/deepseek-r1-0528"
)
