// Package api is the HTTP client for the SmartFridge server. The session token
// is held in memory only and dropped on logout.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/smartfridge/internal/common"
)

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// SessionInfo is what the server reports about the current session.
type SessionInfo struct {
	Username   string    `json:"username"`
	ExpireDate time.Time `json:"expire_date"`
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setToken(t string) {
	c.mu.Lock()
	c.token = t
	c.mu.Unlock()
}

func (c *Client) LoggedIn() bool {
	return c.Token() != ""
}

func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ping", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: ping status %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

func (c *Client) Register(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	return c.post(ctx, common.RouteRegister, body, nil)
}

// Login stores the returned token for later calls.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := c.post(ctx, common.RouteLogin, body, &out); err != nil {
		return err
	}
	if out.Token == "" {
		return errors.New("server returned an empty token")
	}
	c.setToken(out.Token)
	return nil
}

// Logout ends the session on the server. The local token is dropped even if
// the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	token := c.Token()
	c.setToken("")
	if token == "" {
		return nil
	}
	return c.post(ctx, common.RouteLogout, map[string]string{"token": token}, nil)
}

func (c *Client) Session(ctx context.Context) (*SessionInfo, error) {
	out := &SessionInfo{}
	if err := c.post(ctx, common.RouteSession, map[string]string{"token": c.Token()}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Theme(ctx context.Context) (string, error) {
	var out struct {
		Theme string `json:"Theme"`
	}
	if err := c.post(ctx, common.RouteSettings, map[string]string{"token": c.Token()}, &out); err != nil {
		return "", err
	}
	return out.Theme, nil
}

func (c *Client) SetTheme(ctx context.Context, theme string) error {
	body := map[string]any{
		"token":    c.Token(),
		"settings": map[string]string{"Theme": theme},
	}
	return c.post(ctx, common.RouteSaveSettings, body, nil)
}

func (c *Client) post(ctx context.Context, route string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+route, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return c.statusError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", route, err)
	}
	return nil
}

// statusError turns an error response into a *StatusError, wrapped in one of
// the sentinels where the status has a fixed meaning. A 401 on any route means
// the local token is useless, so it is dropped.
func (c *Client) statusError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body)

	se := &StatusError{Code: resp.StatusCode, Message: body.Error}
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		c.setToken("")
		return fmt.Errorf("%w: %w", ErrUnauthorized, se)
	case http.StatusConflict:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, se)
	}
	return se
}
