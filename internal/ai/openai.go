// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Default endpoints and models for the OpenAI-compatible providers.
const (
	deepSeekBaseURL = "https://api.deepseek.com"
	deepSeekModel   = "deepseek-chat"
	openAIBaseURL   = "https://api.openai.com/v1"
	openAIModel     = "gpt-4o"
	mistralBaseURL  = "https://api.mistral.ai/v1"
	mistralModel    = "mistral-large-latest"
)

// maxErrorBody caps how much of a failed response is copied into the error.
const maxErrorBody = 512

// chatProvider implements the Provider interface for any API that speaks
// the OpenAI chat completions format (POST {base}/chat/completions).
// DeepSeek, OpenAI and Mistral differ only in name, base URL and model.
type chatProvider struct {
	name   string
	config ProviderConfig
	client *http.Client
}

// newChatProvider fills in defaults and creates the HTTP client.
func newChatProvider(name string, cfg ProviderConfig, baseURL, model string) *chatProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = baseURL
	}
	if cfg.Model == "" {
		cfg.Model = model
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &chatProvider{
		name:   name,
		config: cfg,
		client: &http.Client{Timeout: cfg.timeout()},
	}
}

// newDeepSeek creates the default provider.
func newDeepSeek(cfg ProviderConfig) *chatProvider {
	return newChatProvider(ProviderDeepSeek, cfg, deepSeekBaseURL, deepSeekModel)
}

// newOpenAI creates a new OpenAI provider.
func newOpenAI(cfg ProviderConfig) *chatProvider {
	return newChatProvider(ProviderOpenAI, cfg, openAIBaseURL, openAIModel)
}

// newMistral creates a new Mistral provider. Mistral uses an
// OpenAI-compatible API at a different base URL.
func newMistral(cfg ProviderConfig) *chatProvider {
	return newChatProvider(ProviderMistral, cfg, mistralBaseURL, mistralModel)
}

func (p *chatProvider) Name() string { return p.name }

// Generate sends a non-streaming chat completion request and returns the
// content of the first choice.
func (p *chatProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	body := chatRequest{
		Model: p.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   MaxTokens,
		Temperature: Temperature,
		Stream:      false,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("%s marshal: %w", p.name, err)
	}

	url := p.config.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%s request: %w", p.name, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.config.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s http: %w", p.name, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s read body: %w", p.name, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%s API error (status %d): %s", p.name, resp.StatusCode, truncateBody(respBody))
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("%s unmarshal: %w", p.name, err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%s: no choices returned", p.name)
	}

	content := result.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%s: empty message content", p.name)
	}

	return content, nil
}

// truncateBody keeps error messages short when a provider returns a large
// HTML error page.
func truncateBody(b []byte) string {
	if len(b) <= maxErrorBody {
		return string(b)
	}
	return string(b[:maxErrorBody]) + "..."
}

// --- OpenAI-compatible request/response types ---

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}
