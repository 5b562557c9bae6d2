// Package emailrelay delivers contact-form messages through an
// EmailJS-compatible HTTP relay.
package emailrelay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Sender is implemented by *Client and faked in UI tests.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

var _ Sender = (*Client)(nil)

// ErrNotConfigured is returned by Send when service, template or key are missing.
var ErrNotConfigured = errors.New("email relay not configured")

// Message is one contact-form submission.
type Message struct {
	FromName  string
	FromEmail string
	Body      string
}

// Options configure a Client.
type Options struct {
	BaseURL    string
	ServiceID  string
	TemplateID string
	PublicKey  string
	Recipient  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client posts messages to the relay's send endpoint.
type Client struct {
	endpoint   string
	serviceID  string
	templateID string
	publicKey  string
	recipient  string
	http       *http.Client
}

const (
	DefaultBaseURL = "https://api.emailjs.com"
	sendPath       = "/api/v1.0/email/send"
	defaultTimeout = 15 * time.Second
	// maxErrorBody caps how much of a failure response is kept in the error.
	maxErrorBody = 512
)

// NewClient builds a Client. Missing IDs are not an error here; Send reports
// ErrNotConfigured so the form can show its failure notice.
func NewClient(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse relay url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("relay url %q missing scheme or host", base)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		endpoint:   base + sendPath,
		serviceID:  strings.TrimSpace(opts.ServiceID),
		templateID: strings.TrimSpace(opts.TemplateID),
		publicKey:  strings.TrimSpace(opts.PublicKey),
		recipient:  strings.TrimSpace(opts.Recipient),
		http:       httpClient,
	}, nil
}

// Configured reports whether Send can attempt delivery.
func (c *Client) Configured() bool {
	return c != nil && c.serviceID != "" && c.templateID != "" && c.publicKey != ""
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

type templateParams struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Message   string `json:"message"`
	ToEmail   string `json:"to_email,omitempty"`
}

// Send delivers msg. Any non-2xx response is an error carrying the status.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(sendRequest{
		ServiceID:  c.serviceID,
		TemplateID: c.templateID,
		UserID:     c.publicKey,
		TemplateParams: templateParams{
			FromName:  msg.FromName,
			FromEmail: msg.FromEmail,
			Message:   msg.Body,
			ToEmail:   c.recipient,
		},
	})
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("emailrelay: send failed: %v", err)
		return fmt.Errorf("send message: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Printf("emailrelay: send rejected: status %d", resp.StatusCode)
		return &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	log.Printf("emailrelay: message from %s accepted", msg.FromEmail)
	return nil
}

// StatusError reports a relay response outside the 2xx range.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("relay returned status %d", e.Status)
	}
	return fmt.Sprintf("relay returned status %d: %s", e.Status, e.Body)
}
