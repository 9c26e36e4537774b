// internal/app/gateway/client.go
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client talks to the remote admin API. It owns the base URL, a timeout-
// configured http.Client, and nothing else: the console keeps no state
// between calls, so every method is a single request/response round trip.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// New creates a gateway client. baseURL is the API root, e.g.
// "http://localhost:4000/api"; a trailing slash is trimmed.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string { return c.baseURL }

// CloseIdle releases any idle keep-alive connections. Called at shutdown.
func (c *Client) CloseIdle() {
	c.http.CloseIdleConnections()
}

// StatusError is a non-2xx response from the gateway. Message carries the
// server-supplied error text when the body had a {"message": ...} field,
// otherwise it is empty and callers fall back to a per-action message.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gateway: status %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("gateway: status %d", e.Code)
}

// ErrorMessage maps a gateway error to user-facing flash text: the server's
// own message for status errors that carry one, otherwise the fallback.
// Transport failures always get the fallback so raw dial errors never reach
// the page.
func ErrorMessage(err error, fallback string) string {
	var se *StatusError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return fallback
}

// do issues one request and returns the response body. Non-2xx statuses
// become *StatusError; anything below HTTP (dial, timeout, TLS) is wrapped
// and reported as a transport failure.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("gateway: encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("gateway: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("gateway request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return nil, fmt.Errorf("gateway: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gateway: read %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Code: resp.StatusCode, Message: serverMessage(raw)}
		c.log.Warn("gateway returned error status",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", se.Message))
		return nil, se
	}

	return raw, nil
}

// Ping verifies the upstream API is reachable. Any HTTP response counts as
// alive; only transport failures (dial, timeout, TLS) are reported.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/", nil, nil)
	var se *StatusError
	if errors.As(err, &se) {
		return nil
	}
	return err
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// serverMessage pulls the free-text "message" field out of an error body.
// The gateway defines no structured error codes, so this is all there is.
func serverMessage(body []byte) string {
	var env struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return strings.TrimSpace(env.Message)
}
