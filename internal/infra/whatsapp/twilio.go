package whatsapp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const twilioDefaultBaseURL = "https://api.twilio.com"

// maxErrorBodyBytes caps how much of a provider error response is carried
// into the returned error.
const maxErrorBodyBytes = 4 << 10

// HTTPDoer describes the HTTP client used by the provider adapters.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// TwilioClient sends WhatsApp messages through the Twilio Messages API.
type TwilioClient struct {
	accountSID string
	authToken  string
	from       string // e.g. "whatsapp:+1415XXXX"
	baseURL    string
	client     HTTPDoer
}

// TwilioOption customizes the Twilio client.
type TwilioOption func(*TwilioClient)

// WithTwilioHTTPClient overrides the default HTTP client.
func WithTwilioHTTPClient(client HTTPDoer) TwilioOption {
	return func(c *TwilioClient) {
		if client != nil {
			c.client = client
		}
	}
}

// WithTwilioBaseURL overrides the default API base (useful for tests).
func WithTwilioBaseURL(base string) TwilioOption {
	return func(c *TwilioClient) {
		base = strings.TrimSpace(base)
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// NewTwilioClient constructs a Twilio WhatsApp adapter.
func NewTwilioClient(accountSID, authToken, from string, opts ...TwilioOption) *TwilioClient {
	client := &TwilioClient{
		accountSID: strings.TrimSpace(accountSID),
		authToken:  strings.TrimSpace(authToken),
		from:       strings.TrimSpace(from),
		baseURL:    twilioDefaultBaseURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Send posts one form-encoded message request. The recipient is normalized
// to Twilio's WhatsApp addressing scheme ("whatsapp:" prefix). Success is an
// HTTP 200 or 201 response; everything else is reported as an error carrying
// the status and response detail.
func (c *TwilioClient) Send(ctx context.Context, phone, message string) error {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)

	form := url.Values{}
	form.Set("From", c.from)
	form.Set("To", "whatsapp:"+phone)
	form.Set("Body", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("twilio send: build request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("twilio send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	return fmt.Errorf("twilio send failed: http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
