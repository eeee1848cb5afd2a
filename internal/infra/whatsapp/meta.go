package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const metaDefaultBaseURL = "https://graph.facebook.com/v16.0"

// MetaClient sends WhatsApp messages through the Meta WhatsApp Cloud API.
type MetaClient struct {
	token         string
	phoneNumberID string
	baseURL       string
	client        HTTPDoer
}

// MetaOption customizes the Meta client.
type MetaOption func(*MetaClient)

// WithMetaHTTPClient overrides the default HTTP client.
func WithMetaHTTPClient(client HTTPDoer) MetaOption {
	return func(c *MetaClient) {
		if client != nil {
			c.client = client
		}
	}
}

// WithMetaBaseURL overrides the default API base (useful for tests).
func WithMetaBaseURL(base string) MetaOption {
	return func(c *MetaClient) {
		base = strings.TrimSpace(base)
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// NewMetaClient constructs a Meta Cloud API adapter.
func NewMetaClient(token, phoneNumberID string, opts ...MetaOption) *MetaClient {
	client := &MetaClient{
		token:         strings.TrimSpace(token),
		phoneNumberID: strings.TrimSpace(phoneNumberID),
		baseURL:       metaDefaultBaseURL,
		client:        http.DefaultClient,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

type metaTextPayload struct {
	Body string `json:"body"`
}

type metaMessageRequest struct {
	MessagingProduct string          `json:"messaging_product"`
	To               string          `json:"to"`
	Type             string          `json:"type"`
	Text             metaTextPayload `json:"text"`
}

// Send posts one JSON message request to the per-number endpoint with bearer
// authentication. Success is an HTTP 200 or 201 response.
func (c *MetaClient) Send(ctx context.Context, phone, message string) error {
	endpoint := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneNumberID)

	payload := metaMessageRequest{
		MessagingProduct: "whatsapp",
		To:               phone,
		Type:             "text",
		Text:             metaTextPayload{Body: message},
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("meta send: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("meta send: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("meta send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	return fmt.Errorf("meta send failed: http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
