// internal/infra/openai/client.go
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "https://api.openai.com/v1/chat/completions"
	defaultHTTPTimeout = 15 * time.Second

	systemPrompt = "You are a helpful assistant that writes friendly WhatsApp messages."

	maxCompletionTokens = 80
	temperature         = 0.8
)

// Client implements greeting.Generator on the OpenAI chat completion API.
// Every call is a single attempt; the caller handles failures by falling
// back to builtin templates, so no retries happen here.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the default API endpoint (useful for tests/mocks).
func WithBaseURL(base string) Option {
	return func(c *Client) {
		base = strings.TrimSpace(base)
		if base != "" {
			c.baseURL = base
		}
	}
}

// NewClient constructs an OpenAI chat completion client.
func NewClient(apiKey, model string, opts ...Option) *Client {
	client := &Client{
		apiKey:     strings.TrimSpace(apiKey),
		model:      strings.TrimSpace(model),
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate asks the model for a short casual birthday greeting that includes
// the recipient name and, when present, a nod to the notes.
func (c *Client) Generate(ctx context.Context, name, notes string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("openai generate: api key required")
	}

	prompt := fmt.Sprintf("Write a short (1-2 lines), friendly WhatsApp birthday message for %s.", name)
	if notes != "" {
		prompt += fmt.Sprintf(" Mention this about them: %s.", notes)
	}
	prompt += " Keep it casual, emoji-friendly, 40-120 characters, and include the name. No signature."

	payload := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   maxCompletionTokens,
		Temperature: temperature,
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("openai generate: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("openai generate: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai generate: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("openai generate: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai generate: http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("openai generate: decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("openai generate: empty choices in response")
	}
	text := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("openai generate: empty message content")
	}
	return text, nil
}
