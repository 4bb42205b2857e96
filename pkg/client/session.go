package client

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

type loginResponse struct {
	Envelope
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Login authenticates and caches the session, both in memory and in the
// durable store. Any previous session is cleared first, so a failed login
// always leaves the client logged out.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	c.clearAuth()

	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.token = resp.Token
	c.user = resp.User
	c.mu.Unlock()

	if err := c.store.Set(tokenStorageKey, resp.Token); err != nil {
		return nil, err
	}
	userJSON, err := json.Marshal(resp.User)
	if err != nil {
		return nil, err
	}
	if err := c.store.Set(userStorageKey, string(userJSON)); err != nil {
		return nil, err
	}

	c.evictStaleEntries()
	c.hc.CloseIdleConnections()

	return resp.User, nil
}

// evictStaleEntries drops any non-session store entries whose key mentions
// this API's host. Stale cached responses from a previous session must not
// outlive a fresh login.
func (c *Client) evictStaleEntries() {
	host := c.baseURL.Hostname()
	if host == "" {
		return
	}
	for _, key := range c.store.Keys() {
		if key == tokenStorageKey || key == userStorageKey {
			continue
		}
		if strings.Contains(key, host) {
			_ = c.store.Delete(key)
		}
	}
}

// Logout discards the session everywhere: memory, durable store, and idle
// connections. The brief pause lets any in-flight writes settle before the
// logout hook fires.
func (c *Client) Logout() {
	c.clearAuth()
	_ = c.store.Clear()
	c.hc.CloseIdleConnections()

	time.Sleep(100 * time.Millisecond)

	if c.onLogout != nil {
		c.onLogout()
	}
}

// CurrentUser returns the cached profile, rehydrating from the durable
// store when memory is cold. A half-present or unparseable stored session
// is treated as corrupt and wiped.
func (c *Client) CurrentUser() *User {
	c.mu.Lock()
	if c.user != nil {
		u := *c.user
		c.mu.Unlock()
		return &u
	}
	c.mu.Unlock()

	token, haveToken := c.store.Get(tokenStorageKey)
	userJSON, haveUser := c.store.Get(userStorageKey)
	if !haveToken || !haveUser {
		return nil
	}

	var u User
	if err := json.Unmarshal([]byte(userJSON), &u); err != nil {
		c.clearAuth()
		_ = c.store.Clear()
		return nil
	}

	c.mu.Lock()
	c.token = token
	c.user = &u
	c.mu.Unlock()

	cp := u
	return &cp
}

// IsAuthenticated reports whether a plausible session is present. It is a
// mutating read: an implausible session (missing token, zero id, empty
// role) is wiped on sight.
func (c *Client) IsAuthenticated() bool {
	u := c.CurrentUser()
	token := c.Token()

	if token != "" && u != nil && u.ID != 0 && u.Role != "" {
		return true
	}

	c.clearAuth()
	_ = c.store.Clear()
	return false
}

func (c *Client) clearAuth() {
	c.mu.Lock()
	c.token = ""
	c.user = nil
	c.mu.Unlock()
	_ = c.store.Delete(tokenStorageKey)
	_ = c.store.Delete(userStorageKey)
}
