// Package supabase wraps the handful of GoTrue endpoints the site needs for
// OAuth sign-in: building the authorize redirect, exchanging the callback code
// for a session, fetching the signed-in user and signing out. No page logic
// depends on identity beyond a display name and an authenticated flag.
package supabase

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
)

// ErrNotConfigured indicates that the Supabase project URL or anon key is missing.
var ErrNotConfigured = errors.New("supabase: url and anon key are required")

// Options configures the auth client.
type Options struct {
	URL        string
	AnonKey    string
	HTTPClient *http.Client
}

// Client calls the Supabase auth (GoTrue) REST endpoints.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// Session is the result of a successful code exchange.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         User   `json:"user"`
}

// User is the subset of the GoTrue user record the site renders.
type User struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

// DisplayName prefers the OAuth profile name and falls back to the email
// address, mirroring what the header shows.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if name, ok := u.UserMetadata["full_name"].(string); ok && strings.TrimSpace(name) != "" {
		return strings.TrimSpace(name)
	}
	return u.Email
}

// NewClient constructs an auth client. URL and key may be empty; Enabled
// reports whether calls can be made.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(opts.URL), "/"),
		anonKey:    strings.TrimSpace(opts.AnonKey),
		httpClient: httpClient,
	}
}

// Enabled reports whether the client has a project URL and anon key.
func (c *Client) Enabled() bool {
	return c != nil && c.baseURL != "" && c.anonKey != ""
}

// AuthorizeURL builds the hosted OAuth entry point for the given provider.
// redirectTo is the absolute callback URL on this site.
func (c *Client) AuthorizeURL(provider, redirectTo string) (string, error) {
	if !c.Enabled() {
		return "", ErrNotConfigured
	}
	query := url.Values{}
	query.Set("provider", provider)
	query.Set("redirect_to", redirectTo)
	return c.baseURL + "/auth/v1/authorize?" + query.Encode(), nil
}

// ExchangeCode trades the OAuth callback code for a session.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*Session, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}
	payload, err := json.Marshal(map[string]string{"auth_code": code})
	if err != nil {
		return nil, fmt.Errorf("supabase: encode exchange request: %w", err)
	}
	endpoint := c.baseURL + "/auth/v1/token?grant_type=authorization_code"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("supabase: build exchange request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)

	var session Session
	if err := c.do(req, &session); err != nil {
		return nil, err
	}
	if session.AccessToken == "" {
		return nil, errors.New("supabase: exchange returned no access token")
	}
	return &session, nil
}

// User fetches the user record behind an access token. A rejected token is an
// error; pages treat it as signed out.
func (c *Client) User(ctx context.Context, accessToken string) (*User, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("supabase: build user request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	var user User
	if err := c.do(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SignOut revokes the session behind the token on the auth server. The local
// cookie is cleared by the caller regardless of the outcome.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	if !c.Enabled() {
		return ErrNotConfigured
	}
	endpoint := c.baseURL + "/auth/v1/logout?scope=local"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("supabase: build logout request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("supabase: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("supabase: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("supabase: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("supabase: decode response: %w", err)
	}
	return nil
}
