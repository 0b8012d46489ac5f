package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/contextcraft/llm"
	openaic "github.com/deepnoodle-ai/contextcraft/providers/openaicompletions"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "env-key")
	provider := New()
	require.Equal(t, "env-key", provider.apiKey)
	require.Equal(t, DefaultEndpoint, provider.endpoint)
	require.Equal(t, ModelGPTOSS20BFree, provider.model)
	require.Equal(t, DefaultMaxTokens, provider.maxTokens)
	require.Equal(t, "https://github.com/deepnoodle-ai/contextcraft", provider.siteURL)
	require.Equal(t, "contextcraft", provider.siteName)
	require.Equal(t, "openrouter", provider.Name())
}

func TestNewOptions(t *testing.T) {
	provider := New(
		WithAPIKey("test-key"),
		WithModel(ModelLlama318BInstruct),
		WithMaxTokens(1024),
		WithSiteURL("https://example.com"),
		WithSiteName("example-app"),
	)
	require.Equal(t, "test-key", provider.apiKey)
	require.Equal(t, ModelLlama318BInstruct, provider.model)
	require.Equal(t, 1024, provider.maxTokens)
	require.Equal(t, "https://example.com", provider.siteURL)
	require.Equal(t, "example-app", provider.siteName)
}

func TestGenerate_RankingHeaders(t *testing.T) {
	var gotReferer, gotTitle, gotAuth string
	var captured openaic.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReferer = r.Header.Get("HTTP-Referer")
		gotTitle = r.Header.Get("X-Title")
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		require.NoError(t, json.NewEncoder(w).Encode(openaic.Response{
			ID: "gen-123",
			Choices: []openaic.Choice{{
				Message: openaic.Message{Role: "assistant", Content: "hello"},
			}},
		}))
	}))
	defer server.Close()

	provider := New(
		WithAPIKey("test-key"),
		WithEndpoint(server.URL),
		WithSiteURL("https://example.com"),
		WithSiteName("example-app"),
	)
	response, err := provider.Generate(context.Background(),
		llm.NewSingleUserMessage("hi"),
		llm.WithSystemPrompt("Be brief."),
	)
	require.NoError(t, err)

	require.Equal(t, "https://example.com", gotReferer)
	require.Equal(t, "example-app", gotTitle)
	require.Equal(t, "Bearer test-key", gotAuth)
	require.Equal(t, "hello", response.Text())

	// OpenRouter uses the classic "system" role, not "developer".
	require.Equal(t, "system", captured.Messages[0].Role)
}
