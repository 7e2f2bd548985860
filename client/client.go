package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/totegamma/concrnt-favorite"
)

const (
	defaultTimeout   = 3 * time.Second
	defaultUserAgent = "favorite-client/1.0"
)

// Status mirrors the server's favorite status response.
type Status struct {
	Target    favorite.Ref `json:"target"`
	Actor     string       `json:"actor,omitempty"`
	Favorited bool         `json:"favorited"`
	Count     int64        `json:"count"`
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code    int
	Message string
}

func (e StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status code: %d", e.Code)
	}
	return fmt.Sprintf("unexpected status code: %d: %s", e.Code, e.Message)
}

type Client struct {
	client    *http.Client
	baseURL   string
	userAgent string
	token     string
}

type Options struct {
	Token     string
	UserAgent string
	Timeout   time.Duration
}

func New(baseURL string, opts Options) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	httpClient := http.Client{
		Timeout: timeout,
	}

	c := &Client{
		client:    &httpClient,
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		token:     opts.Token,
	}
	httpClient.Transport = c
	return c
}

// WithToken returns a copy of the client that authenticates as another actor.
func (c *Client) WithToken(token string) *Client {
	return New(c.baseURL, Options{Token: token, UserAgent: c.userAgent, Timeout: c.client.Timeout})
}

func (c *Client) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return http.DefaultTransport.RoundTrip(req)
}

func (c *Client) HttpRequest(ctx context.Context, method, path string, body, response any) error {

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	endpoint := c.baseURL + path
	slog.DebugContext(ctx, "favorite client request", slog.String("method", method), slog.String("url", endpoint))

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return StatusError{Code: resp.StatusCode, Message: e.Error}
	}

	if response == nil {
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(response)
	if err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// favoritePath builds /api/v1/favorites/:type/:id followed by suffix. A
// non-empty actor must name the token's actor or the server rejects it.
func favoritePath(ref favorite.Ref, suffix, actor string) string {
	p := "/api/v1/favorites/" + url.PathEscape(ref.Type) + "/" + url.PathEscape(ref.ID) + suffix
	if actor != "" {
		p += "?actor=" + url.QueryEscape(actor)
	}
	return p
}

// Add favorites ref. An empty actor means the token's actor.
func (c *Client) Add(ctx context.Context, ref favorite.Ref, actor string) (Status, error) {
	var status Status
	err := c.HttpRequest(ctx, http.MethodPost, favoritePath(ref, "", actor), nil, &status)
	return status, err
}

func (c *Client) Remove(ctx context.Context, ref favorite.Ref, actor string) (Status, error) {
	var status Status
	err := c.HttpRequest(ctx, http.MethodDelete, favoritePath(ref, "", actor), nil, &status)
	return status, err
}

func (c *Client) Toggle(ctx context.Context, ref favorite.Ref, actor string) (Status, error) {
	var status Status
	err := c.HttpRequest(ctx, http.MethodPost, favoritePath(ref, "/toggle", actor), nil, &status)
	return status, err
}

func (c *Client) Status(ctx context.Context, ref favorite.Ref, actor string) (Status, error) {
	var status Status
	err := c.HttpRequest(ctx, http.MethodGet, favoritePath(ref, "", actor), nil, &status)
	return status, err
}

// FavoritedBy returns the raw user objects keyed by user id.
func (c *Client) FavoritedBy(ctx context.Context, ref favorite.Ref) (map[string]json.RawMessage, error) {
	var users map[string]json.RawMessage
	err := c.HttpRequest(ctx, http.MethodGet, favoritePath(ref, "/users", ""), nil, &users)
	return users, err
}

// FavoritesOf returns the targets of targetType favorited by user. An empty
// user lists the token actor's favorites.
func (c *Client) FavoritesOf(ctx context.Context, user, targetType string) (map[string]json.RawMessage, error) {
	path := "/api/v1/me/favorites/" + url.PathEscape(targetType)
	if user != "" {
		path = "/api/v1/users/" + url.PathEscape(user) + "/favorites/" + url.PathEscape(targetType)
	}

	var targets map[string]json.RawMessage
	err := c.HttpRequest(ctx, http.MethodGet, path, nil, &targets)
	return targets, err
}

// IssueToken asks the server for a token acting as user.
func (c *Client) IssueToken(ctx context.Context, user string) (string, error) {
	var res struct {
		Token string `json:"token"`
	}
	err := c.HttpRequest(ctx, http.MethodPost, "/api/v1/token", map[string]string{"userID": user}, &res)
	return res.Token, err
}
