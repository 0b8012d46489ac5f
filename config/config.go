// Package config handles environment loading, model selection, and the
// embedded demo data files.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/deepnoodle-ai/contextcraft/llm"
	"github.com/deepnoodle-ai/contextcraft/providers/openrouter"
)

// EnvAPIKey is the environment variable holding the OpenRouter API
// credential, the only credential the demos need.
const EnvAPIKey = "OPENROUTER_API_KEY"

// LoadEnv loads variables from a .env file in the working directory if
// one exists. Missing files are not an error; real environment
// variables always win.
func LoadEnv() {
	_ = godotenv.Load()
}

// GetModel returns an LLM client for the given OpenRouter model
// identifier. An empty model selects the provider default.
func GetModel(model string) llm.LLM {
	opts := []openrouter.Option{}
	if model != "" {
		opts = append(opts, openrouter.WithModel(model))
	}
	return openrouter.New(opts...)
}

// CheckCredentials verifies that the API credential is present, so the
// demos can fail with a clear message before issuing requests.
func CheckCredentials() error {
	if os.Getenv(EnvAPIKey) == "" {
		return fmt.Errorf("%s is not set (create a .env file or export it)", EnvAPIKey)
	}
	return nil
}
