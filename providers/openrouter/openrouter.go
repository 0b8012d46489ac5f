// Package openrouter implements an LLM client for the OpenRouter API,
// which exposes many hosted models behind one OpenAI-compatible
// chat-completions endpoint.
package openrouter

import (
	"net/http"
	"os"
	"time"

	"github.com/deepnoodle-ai/contextcraft/llm"
	openaic "github.com/deepnoodle-ai/contextcraft/providers/openaicompletions"
)

var (
	DefaultModel     = ModelGPTOSS20BFree
	DefaultEndpoint  = "https://openrouter.ai/api/v1/chat/completions"
	DefaultMaxTokens = 4096
	DefaultClient    = &http.Client{Timeout: 300 * time.Second}
)

var _ llm.LLM = &Provider{}

type Provider struct {
	apiKey    string
	endpoint  string
	model     string
	maxTokens int
	client    *http.Client
	siteURL   string
	siteName  string

	// Embedded OpenAI completions provider
	*openaic.Provider
}

func New(opts ...Option) *Provider {
	p := &Provider{
		apiKey:    getAPIKey(),
		endpoint:  DefaultEndpoint,
		client:    DefaultClient,
		model:     DefaultModel,
		maxTokens: DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.siteURL == "" {
		p.siteURL = "https://github.com/deepnoodle-ai/contextcraft"
	}
	if p.siteName == "" {
		p.siteName = "contextcraft"
	}

	// Custom client that adds OpenRouter-specific headers
	customClient := &http.Client{
		Timeout: p.client.Timeout,
		Transport: &openRouterTransport{
			underlying: p.client.Transport,
			siteURL:    p.siteURL,
			siteName:   p.siteName,
		},
	}

	// Pass the options through to the wrapped OpenAI provider
	p.Provider = openaic.New(
		openaic.WithAPIKey(p.apiKey),
		openaic.WithClient(customClient),
		openaic.WithEndpoint(p.endpoint),
		openaic.WithMaxTokens(p.maxTokens),
		openaic.WithModel(p.model),
		openaic.WithSystemRole("system"),
	)
	return p
}

func getAPIKey() string {
	return os.Getenv("OPENROUTER_API_KEY")
}

func (p *Provider) Name() string {
	return "openrouter"
}

// openRouterTransport is a custom http.RoundTripper that adds
// OpenRouter-specific headers used for app rankings.
type openRouterTransport struct {
	underlying http.RoundTripper
	siteURL    string
	siteName   string
}

func (t *openRouterTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.siteURL != "" {
		req.Header.Set("HTTP-Referer", t.siteURL)
	}
	if t.siteName != "" {
		req.Header.Set("X-Title", t.siteName)
	}
	transport := t.underlying
	if transport == nil {
		transport = http.DefaultTransport
	}
	return transport.RoundTrip(req)
}
