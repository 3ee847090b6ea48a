// Package api wraps HTTP calls to the accountability tracker backend. It
// exposes one method per backend operation, attaches the shared password
// header when one is stored, and normalizes server-reported failures into
// typed errors carrying the detail message.
package api

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

	"trackctl/internal/constants"
	"trackctl/internal/keyring"
	"trackctl/internal/logger"
)

// SecretFunc supplies the shared password for an outgoing request. It is
// invoked at request-build time, never cached, so the secret can change
// between requests if updated externally.
type SecretFunc func() (string, error)

// KeyringSecret reads the password from the OS keyring.
func KeyringSecret() (string, error) {
	return keyring.GetAppPassword()
}

// Client talks to one backend origin. The origin is resolved once at startup
// and reused for both JSON calls and photo asset links.
type Client struct {
	baseURL string
	httpc   *http.Client
	secret  SecretFunc
}

// New creates a Client for the given origin using the OS keyring as its
// secret source.
func New(baseURL string) *Client {
	return NewWithSecret(baseURL, KeyringSecret)
}

// NewWithSecret creates a Client with an explicit secret source. Tests use
// this to avoid touching the real keyring.
func NewWithSecret(baseURL string, secret SecretFunc) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: constants.RequestTimeout},
		secret:  secret,
	}
}

// BaseURL returns the resolved backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// PhotoURL joins a server-given relative asset path with the backend origin.
func (c *Client) PhotoURL(rel string) string {
	if strings.HasPrefix(rel, "http://") || strings.HasPrefix(rel, "https://") {
		return rel
	}
	if !strings.HasPrefix(rel, "/") {
		rel = "/" + rel
	}
	return c.baseURL + rel
}

// Error is a server-reported failure. Detail carries the backend's message
// when one was present in the response body.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// Detail extracts the server-provided detail message from an error chain.
// Returns "" for transport-level failures.
func Detail(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}

// detailBody matches FastAPI's error envelope. Detail may be a string or a
// structured validation list; anything non-string is kept as raw JSON.
type detailBody struct {
	Detail json.RawMessage `json:"detail"`
}

func decodeDetail(body []byte) string {
	var db detailBody
	if err := json.Unmarshal(body, &db); err != nil || len(db.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(db.Detail, &s); err == nil {
		return s
	}
	return string(db.Detail)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set(constants.RequestIDHeader, uuid.New().String())
	// Header presence is optional: when no secret is stored the request goes
	// out bare, matching the backend's single-user deployment model.
	if c.secret != nil {
		if secret, err := c.secret(); err == nil && secret != "" {
			req.Header.Set(constants.PasswordHeader, secret)
		}
	}
	return req, nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		logger.Warn("request failed", "method", req.Method, "path", req.URL.Path, "error", err)
		return fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response from %s: %w", req.URL.Path, err)
	}

	logger.Debug("request complete",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", req.Header.Get(constants.RequestIDHeader),
	)

	if resp.StatusCode >= 400 {
		return &Error{Status: resp.StatusCode, Detail: decodeDetail(body)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", req.URL.Path, err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, query url.Values, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request for %s: %w", path, err)
		}
		body = bytes.NewReader(buf)
	}
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}
