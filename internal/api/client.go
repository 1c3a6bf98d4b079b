// Package api is a small JSON client for the Mingle backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mingle-app/mingle/internal/plan"
)

const checkoutPath = "/api/subscription/create-checkout"

// Config holds client settings.
type Config struct {
	BaseURL   string
	Token     string
	UserAgent string
	// Timeout bounds each request. Zero leaves it to the transport.
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client talks to the Mingle API.
type Client struct {
	http      *http.Client
	baseURL   string
	token     string
	userAgent string
	logger    *slog.Logger
}

// New creates a client from cfg.
func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = "mingle-cli"
	}
	return &Client{
		http:      hc,
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		token:     cfg.Token,
		userAgent: ua,
		logger:    logger,
	}
}

// Do sends in as a JSON body and decodes a 2xx reply into out. Either may be
// nil. Non-2xx replies are returned as *APIError.
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	return c.do(ctx, method, path, in, out, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any, headers map[string]string) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	c.logger.Debug("api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := parseError(resp.StatusCode, data, resp.Header)
		if apiErr.RequestID == "" {
			apiErr.RequestID = requestID
		}
		c.logger.Debug("api error", "path", path, "status", resp.StatusCode, "request_id", apiErr.RequestID)
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// CheckoutSession is the reply of the checkout endpoint. URL is empty when the
// server did not return one.
type CheckoutSession struct {
	URL string `json:"url,omitempty"`
}

// CreateCheckout asks the backend for a provider-hosted checkout URL for tier.
func (c *Client) CreateCheckout(ctx context.Context, tier plan.Tier) (*CheckoutSession, error) {
	if !tier.Valid() {
		return nil, fmt.Errorf("invalid tier %q", tier)
	}
	var session CheckoutSession
	req := map[string]string{"tier": string(tier)}
	headers := map[string]string{"Idempotency-Key": uuid.NewString()}
	if err := c.do(ctx, http.MethodPost, checkoutPath, req, &session, headers); err != nil {
		return nil, err
	}
	return &session, nil
}

// Pin pins target. Consumes one pin from the daily quota.
func (c *Client) Pin(ctx context.Context, target string) error {
	return c.Do(ctx, http.MethodPost, "/api/pins", map[string]string{"target": target}, nil)
}

// Mingle sends a mingle request to target.
func (c *Client) Mingle(ctx context.Context, target string) error {
	return c.Do(ctx, http.MethodPost, "/api/mingles", map[string]string{"target": target}, nil)
}

// Message sends text to target.
func (c *Client) Message(ctx context.Context, target, text string) error {
	body := map[string]string{"target": target, "text": text}
	return c.Do(ctx, http.MethodPost, "/api/messages", body, nil)
}
