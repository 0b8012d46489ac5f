// Package openaicompletions implements a client for OpenAI-compatible
// chat-completions endpoints.
package openaicompletions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/deepnoodle-ai/contextcraft/llm"
	"github.com/deepnoodle-ai/contextcraft/providers"
	"github.com/deepnoodle-ai/contextcraft/retry"
	"github.com/deepnoodle-ai/contextcraft/slogger"
)

var (
	DefaultModel         = ModelGPT4o
	DefaultEndpoint      = "https://api.openai.com/v1/chat/completions"
	DefaultMaxTokens     = 4096
	DefaultSystemRole    = "developer"
	DefaultClient        = &http.Client{Timeout: 300 * time.Second}
	DefaultMaxRetries    = 3
	DefaultRetryBaseWait = 2 * time.Second
)

var _ llm.LLM = &Provider{}

type Provider struct {
	client        *http.Client
	apiKey        string
	endpoint      string
	model         string
	maxTokens     int
	maxRetries    int
	retryBaseWait time.Duration
	systemRole    string
}

func New(opts ...Option) *Provider {
	p := &Provider{
		apiKey:        os.Getenv("OPENAI_API_KEY"),
		endpoint:      DefaultEndpoint,
		client:        DefaultClient,
		model:         DefaultModel,
		maxTokens:     DefaultMaxTokens,
		maxRetries:    DefaultMaxRetries,
		retryBaseWait: DefaultRetryBaseWait,
		systemRole:    DefaultSystemRole,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) Name() string {
	return "openai-completions"
}

func (p *Provider) Generate(ctx context.Context, messages []*llm.Message, opts ...llm.GenerateOption) (*llm.Response, error) {
	config := &llm.GenerateConfig{}
	config.Apply(opts...)

	logger := config.Logger
	if logger == nil {
		logger = slogger.DefaultLogger
	}

	if err := validateMessages(messages); err != nil {
		return nil, err
	}

	request := Request{Messages: convertMessages(messages)}
	p.applyRequestConfig(&request, config)
	addSystemPrompt(&request, config.SystemPrompt, p.systemRole)

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %w", err)
	}
	logger.Debug("sending completions request",
		"model", request.Model, "messages", len(request.Messages))

	var result Response
	err = retry.Do(ctx, func() error {
		req, err := p.createRequest(ctx, body)
		if err != nil {
			return err
		}
		resp, err := p.client.Do(req)
		if err != nil {
			return fmt.Errorf("error making request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			if resp.StatusCode == http.StatusTooManyRequests {
				logger.Warn("rate limit exceeded",
					"status", resp.StatusCode, "body", string(body))
			}
			return providers.NewError(resp.StatusCode, string(body))
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
		return nil
	}, retry.WithMaxAttempts(p.maxRetries+1), retry.WithBaseWait(p.retryBaseWait))

	if err != nil {
		return nil, err
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("empty response from completions api")
	}
	choice := result.Choices[0]

	return &llm.Response{
		ID:      result.ID,
		Model:   request.Model,
		Role:    llm.Assistant,
		Message: *llm.NewAssistantMessage(choice.Message.Content),
		Usage: llm.Usage{
			InputTokens:  result.Usage.PromptTokens,
			OutputTokens: result.Usage.CompletionTokens,
		},
	}, nil
}

func validateMessages(messages []*llm.Message) error {
	if len(messages) == 0 {
		return fmt.Errorf("no messages provided")
	}
	for i, message := range messages {
		if len(message.Content) == 0 {
			return fmt.Errorf("empty message detected (index %d)", i)
		}
	}
	return nil
}

func convertMessages(messages []*llm.Message) []Message {
	result := make([]Message, 0, len(messages))
	for _, msg := range messages {
		result = append(result, Message{
			Role:    strings.ToLower(string(msg.Role)),
			Content: msg.CompleteText(),
		})
	}
	return result
}

func (p *Provider) applyRequestConfig(req *Request, config *llm.GenerateConfig) {
	if config.Model != "" {
		req.Model = config.Model
	} else {
		req.Model = p.model
	}

	maxTokens := p.maxTokens
	if config.MaxTokens != nil {
		maxTokens = *config.MaxTokens
	}
	if maxTokens > 0 {
		req.MaxTokens = &maxTokens
	}

	req.Temperature = config.Temperature
}

func addSystemPrompt(request *Request, systemPrompt, systemRole string) {
	if systemPrompt == "" {
		return
	}
	request.Messages = append([]Message{{
		Role:    systemRole,
		Content: systemPrompt,
	}}, request.Messages...)
}

// createRequest creates an HTTP request with appropriate headers for
// chat-completions API calls.
func (p *Provider) createRequest(ctx context.Context, body []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", p.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}
