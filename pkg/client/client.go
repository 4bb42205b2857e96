// Package client is the Go SDK for the MedCare API: a thin session-aware
// gateway that caches the logged-in user, derives role and userId query
// parameters from it, and surfaces server-supplied error messages.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	tokenStorageKey = "medcare_token"
	userStorageKey  = "medcare_user"
)

// Envelope is the common part of every API response body.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// APIError carries the server's message for a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

func WithStore(store Store) Option {
	return func(c *Client) { c.store = store }
}

// WithLogoutHook registers a callback invoked after Logout finishes, for
// callers that need to navigate away or reset UI state.
func WithLogoutHook(fn func()) Option {
	return func(c *Client) { c.onLogout = fn }
}

type Client struct {
	baseURL  *url.URL
	hc       *http.Client
	store    Store
	onLogout func()

	mu    sync.Mutex
	token string
	user  *User
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	c := &Client{
		baseURL: u,
		hc:      &http.Client{Timeout: 30 * time.Second},
		store:   NewMemStore(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do issues an API request. path is relative to the /api prefix; pass a
// leading slash. The response body, success or error, is decoded into out
// when non-nil; out must embed Envelope.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	return c.doRaw(ctx, method, "/api"+path, query, body, out)
}

func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Error bodies carry {success:false, message}; fall back to a
		// generic message when the body is not parseable.
		var env Envelope
		msg := fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
		if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Message != "" {
			msg = env.Message
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response body: %w", err)
		}
	}
	return nil
}

// Token returns the cached session token, or empty when logged out.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}
