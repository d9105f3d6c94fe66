package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
	"github.com/vaultsafe98-afk/admin-panel/internal/infrastructure/credstore"
	"github.com/vaultsafe98-afk/admin-panel/pkg/config"
)

// SessionExpiredFunc is invoked after a 401 on an authenticated route has
// cleared the persisted credential. It fires at most once per stored
// credential, so concurrent 401s collapse into a single notification.
type SessionExpiredFunc func()

// Client dispatches every backend request: it injects the bearer
// credential, tags requests, applies the fixed timeout, and maps failures
// onto the domain error taxonomy. It performs no retries and no backoff;
// every failure surfaces once, immediately, to the caller.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	creds            *credstore.Store
	logger           zerolog.Logger
	onSessionExpired SessionExpiredFunc
}

type Option func(*Client)

// WithSessionExpiredFunc installs the global 401 side effect. Navigation
// stays out of this package: the console coordinator subscribes here.
func WithSessionExpiredFunc(fn SessionExpiredFunc) Option {
	return func(c *Client) { c.onSessionExpired = fn }
}

func New(cfg config.APIConfig, creds *credstore.Store, logger zerolog.Logger, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		creds:  creds,
		logger: logger.With().Str("component", "api_client").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, true)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, true)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out, true)
}

// PostPublic is for the login endpoint only: a 401 here means bad
// credentials, not an expired session, so the global handler is skipped
// and any previously stored credential survives.
func (c *Client) PostPublic(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, false)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// The credential is re-read from durable storage for every request so
	// a clear performed by a concurrent 401 is observed immediately.
	token, err := c.creds.Load()
	if err != nil {
		c.logger.Warn().Err(err).Msg("Failed to load credential, sending request unauthenticated")
	} else if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.NetworkError{Err: fmt.Errorf("reading response body: %w", err)}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if authed {
			c.expireSession()
		}
		return &domain.AuthError{Message: decodeErrorMessage(respBody)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debug().
			Int("status", resp.StatusCode).
			Str("method", method).
			Str("path", path).
			Msg("Backend returned error status")
		return &domain.StatusError{Status: resp.StatusCode, Message: decodeErrorMessage(respBody)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *Client) expireSession() {
	cleared, err := c.creds.Clear()
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to clear credential after 401")
		return
	}
	if cleared {
		c.logger.Warn().Msg("Credential rejected by backend, session invalidated")
		if c.onSessionExpired != nil {
			c.onSessionExpired()
		}
	}
}

func decodeErrorMessage(body []byte) string {
	var errorResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errorResp); err == nil {
		if errorResp.Message != "" {
			return errorResp.Message
		}
		if errorResp.Error != "" {
			return errorResp.Error
		}
	}
	return strings.TrimSpace(string(body))
}
