// Package api is the HTTP client for the ProManager API. Every request goes
// through Client.do, which attaches the bearer token from the session store
// and clears the session when the API answers 401.
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

	"github.com/kidandcat/promanager/internal/logger"
	"github.com/kidandcat/promanager/internal/models"
	"github.com/kidandcat/promanager/internal/session"
)

const maxBody = 10 << 20

var (
	ErrNoToken = errors.New("api: login response carried no token")
	ErrNoUser  = errors.New("api: response carried no user")
)

type Client struct {
	base           string
	http           *http.Client
	session        *session.Store
	log            *logger.Logger
	onUnauthorized func()
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithUnauthorized sets the hook run after a 401 has cleared the session.
func WithUnauthorized(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

func New(baseURL string, store *session.Store, opts ...Option) *Client {
	c := &Client{
		base:    strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		session: store,
		log:     logger.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// envelope mirrors models.Envelope but tells a missing success flag apart
// from an explicit false.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	User    json.RawMessage `json:"user"`
	Data    json.RawMessage `json:"data"`
	Stats   *models.Stats   `json:"stats"`
	Status  *bool           `json:"status"`
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Warn().Str("path", path).Msg("unauthorized, clearing session")
		c.session.Clear()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, &Error{Status: resp.StatusCode, Message: env.Message}
	}
	if resp.StatusCode >= 400 {
		return nil, &Error{Status: resp.StatusCode, Message: env.Message}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode %s %s: %w", method, path, decodeErr)
	}
	if env.Success != nil && !*env.Success {
		return nil, &Error{Status: resp.StatusCode, Message: env.Message}
	}
	return &env, nil
}

func (c *Client) getJSON(ctx context.Context, path string) (*envelope, error) {
	return c.do(ctx, http.MethodGet, path, nil, "")
}

func (c *Client) sendJSON(ctx context.Context, method, path string, v any) (*envelope, error) {
	var body io.Reader
	if v != nil {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(b)
	}
	return c.do(ctx, method, path, body, "application/json")
}

func decodeData[T any](env *envelope) (T, error) {
	var v T
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return v, nil
	}
	if err := json.Unmarshal(env.Data, &v); err != nil {
		return v, fmt.Errorf("decode data: %w", err)
	}
	return v, nil
}

// userFrom normalizes the shapes a user can arrive in: a top-level "user", a
// "data" holding {user, token}, or "data" being the user itself.
func userFrom(env *envelope) (models.User, string, error) {
	token := env.Token
	if len(env.User) > 0 && string(env.User) != "null" {
		var u models.User
		if err := json.Unmarshal(env.User, &u); err != nil {
			return models.User{}, "", fmt.Errorf("decode user: %w", err)
		}
		return u, token, nil
	}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		var wrapped struct {
			Token string       `json:"token"`
			User  *models.User `json:"user"`
		}
		if err := json.Unmarshal(env.Data, &wrapped); err == nil && wrapped.User != nil {
			if token == "" {
				token = wrapped.Token
			}
			return *wrapped.User, token, nil
		}
		var u models.User
		if err := json.Unmarshal(env.Data, &u); err != nil {
			return models.User{}, "", fmt.Errorf("decode user: %w", err)
		}
		if token == "" {
			token = wrapped.Token
		}
		return u, token, nil
	}
	return models.User{}, token, ErrNoUser
}

func escape(id string) string { return url.PathEscape(id) }
