// Package backend is a typed client for the remote portfolio REST API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrUnauthorized matches any 401 or 403 response.
	ErrUnauthorized = errors.New("backend: unauthorized")
	// ErrNotFound matches 404 responses.
	ErrNotFound = errors.New("backend: not found")
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend request failed with status %d", e.Status)
	}
	return fmt.Sprintf("backend request failed (%d): %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// Client talks to the backend. The bearer token is supplied per call so a
// single client can serve every session.
type Client struct {
	baseURL    string
	apiPrefix  string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *Metrics
}

// Option customises client instantiation.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithAPIPrefix sets the versioned path prefix, "/api/v1" by default.
func WithAPIPrefix(prefix string) Option {
	return func(c *Client) {
		c.apiPrefix = "/" + strings.Trim(prefix, "/")
		if c.apiPrefix == "/" {
			c.apiPrefix = ""
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New constructs a Client for the API at base.
func New(base string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		return nil, fmt.Errorf("backend base url is required")
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "http://" + trimmed
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("invalid backend base url: %w", err)
	}
	c := &Client{
		baseURL:    strings.TrimRight(trimmed, "/"),
		apiPrefix:  "/api/v1",
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL is the API origin, also used to resolve relative image names.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) resource(path string) string {
	return c.baseURL + c.apiPrefix + path
}

func (c *Client) doJSON(ctx context.Context, op, method, endpoint string, body any, token string, v any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	contentType := ""
	if body != nil {
		contentType = "application/json"
	}
	return c.do(ctx, op, method, endpoint, reader, contentType, token, v)
}

func (c *Client) do(ctx context.Context, op, method, endpoint string, body io.Reader, contentType, token string, v any) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	defer func() {
		c.metrics.observe(op, err, time.Since(start))
		if err != nil {
			c.logger.ErrorContext(ctx, "backend call failed", "op", op, "method", method, "url", endpoint, "error", err)
		} else {
			c.logger.DebugContext(ctx, "backend call", "op", op, "method", method, "url", endpoint, "latency", time.Since(start))
		}
	}()

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call backend: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	if v == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := decodeEnvelope(data, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeEnvelope accepts both bare payloads and {"data": payload} envelopes.
func decodeEnvelope(data []byte, v any) error {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
			return json.Unmarshal(env.Data, v)
		}
	}
	return json.Unmarshal(trimmed, v)
}

func errorMessage(data []byte) string {
	var payload struct {
		Error   any    `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		switch e := payload.Error.(type) {
		case string:
			return e
		case map[string]any:
			if msg, ok := e["message"].(string); ok {
				return msg
			}
		}
	}
	msg := strings.TrimSpace(string(data))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
