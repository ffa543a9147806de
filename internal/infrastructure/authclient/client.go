// Package authclient talks to the external authentication/user service over
// its JSON REST API.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/whiskers/catgraph/internal/core/domain"
	"github.com/whiskers/catgraph/internal/core/ports"
	"github.com/whiskers/catgraph/internal/pkg/metrics"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings for reaching the auth service.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client implements ports.UserDirectory.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

var _ ports.UserDirectory = (*Client)(nil)

// New builds a Client. A default timeout is applied when none is provided.
func New(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

type deleteTarget struct {
	ID string `json:"id"`
}

// request describes one call to the auth service.
type request struct {
	method string
	path   string
	// endpoint is the route template used for metrics and logs.
	endpoint string
	token    string
	body     any
	// forward skips the status check and decodes whatever came back.
	forward bool
}

func (c *Client) ListUsers(ctx context.Context) ([]*domain.User, error) {
	var env dataEnvelope[[]*domain.User]
	err := c.do(ctx, request{method: http.MethodGet, path: "/users", endpoint: "GET /users"}, &env)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var env dataEnvelope[*domain.User]
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/users/" + url.PathEscape(id),
		endpoint: "GET /users/{id}",
	}, &env)
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, fmt.Errorf("GET /users/%s: empty data: %w", id, domain.ErrUpstreamFetch)
	}
	return env.Data, nil
}

func (c *Client) CheckToken(ctx context.Context, token string) (*domain.TokenMessage, error) {
	var msg domain.TokenMessage
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/users/token",
		endpoint: "GET /users/token",
		token:    token,
	}, &msg)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.TokenMessage, error) {
	var msg domain.TokenMessage
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/auth/login",
		endpoint: "POST /auth/login",
		body:     creds,
	}, &msg)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// Register forwards the service's answer whatever its status.
func (c *Client) Register(ctx context.Context, in domain.UserInput) (*domain.UserMessage, error) {
	var msg domain.UserMessage
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/users",
		endpoint: "POST /users",
		body:     in,
		forward:  true,
	}, &msg)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) UpdateUser(ctx context.Context, token string, in domain.UserInput) (*domain.UserMessage, error) {
	var msg domain.UserMessage
	err := c.do(ctx, request{
		method:   http.MethodPut,
		path:     "/users",
		endpoint: "PUT /users",
		token:    token,
		body:     in,
	}, &msg)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) DeleteUser(ctx context.Context, token, targetID string) (*domain.UserMessage, error) {
	req := request{
		method:   http.MethodDelete,
		path:     "/users",
		endpoint: "DELETE /users",
		token:    token,
	}
	if targetID != "" {
		req.body = deleteTarget{ID: targetID}
	}

	var msg domain.UserMessage
	if err := c.do(ctx, req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	var body io.Reader
	if r.body != nil {
		buf, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", r.endpoint, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", r.endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(r.endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(r.endpoint, "error").Inc()
		c.log.Error().Err(err).Str("endpoint", r.endpoint).Msg("auth service unreachable")
		return fmt.Errorf("%w: %s: %v", domain.ErrUpstreamFetch, r.endpoint, err)
	}
	defer resp.Body.Close()
	metrics.UpstreamRequestsTotal.WithLabelValues(r.endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if !r.forward && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.log.Warn().Str("endpoint", r.endpoint).Int("status", resp.StatusCode).Msg("auth service returned an error")
		return fmt.Errorf("%w: %s returned %d", domain.ErrUpstreamFetch, r.endpoint, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: decode response: %v", domain.ErrUpstreamFetch, r.endpoint, err)
	}
	return nil
}
