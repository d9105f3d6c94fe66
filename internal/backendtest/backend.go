// Package backendtest is an in-process stand-in for the admin REST
// backend, used by gateway, client and session tests. Routes are
// registered per test; every request is recorded so tests can assert the
// exact wire traffic (paths, 1-based page numbers, bodies).
package backendtest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const LoginPath = "/auth/admin/login"

// Request is one recorded inbound call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   map[string]any
	Bearer string
}

type Backend struct {
	// Token is the only credential the bearer middleware accepts.
	Token string

	engine *gin.Engine

	mu       sync.Mutex
	requests []Request
}

func New(token string) *Backend {
	gin.SetMode(gin.TestMode)

	b := &Backend{
		Token:  token,
		engine: gin.New(),
	}
	b.engine.Use(b.record, b.bearerAuth)
	return b
}

// Handle registers a route on the underlying engine.
func (b *Backend) Handle(method, path string, handler gin.HandlerFunc) {
	b.engine.Handle(method, path, handler)
}

func (b *Backend) Start() *httptest.Server {
	return httptest.NewServer(b.engine)
}

// Requests returns a copy of everything received so far.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Request, len(b.requests))
	copy(out, b.requests)
	return out
}

// CountRequests counts recorded calls matching method and exact path.
func (b *Backend) CountRequests(method, path string) int {
	count := 0
	for _, r := range b.Requests() {
		if r.Method == method && r.Path == path {
			count++
		}
	}
	return count
}

// LastRequest returns the most recent call to method+path, if any.
func (b *Backend) LastRequest(method, path string) (Request, bool) {
	reqs := b.Requests()
	for i := len(reqs) - 1; i >= 0; i-- {
		if reqs[i].Method == method && reqs[i].Path == path {
			return reqs[i], true
		}
	}
	return Request{}, false
}

func (b *Backend) record(c *gin.Context) {
	var body map[string]any
	if c.Request.Body != nil {
		raw, err := io.ReadAll(c.Request.Body)
		if err == nil && len(raw) > 0 {
			_ = json.Unmarshal(raw, &body)
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))
		}
	}

	b.mu.Lock()
	b.requests = append(b.requests, Request{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Query:  c.Request.URL.Query(),
		Body:   body,
		Bearer: bearerToken(c),
	})
	b.mu.Unlock()

	c.Next()
}

// bearerAuth mirrors the production backend: everything except login
// demands the exact stored credential.
func (b *Backend) bearerAuth(c *gin.Context) {
	if c.Request.URL.Path == LoginPath {
		c.Next()
		return
	}

	if bearerToken(c) != b.Token || b.Token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Unauthorized",
			"message": "Invalid or expired token",
		})
		c.Abort()
		return
	}

	c.Next()
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// MintToken signs an HS256 JWT the way the production backend does, for
// tests that inspect token expiry.
func MintToken(secret, adminID string, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   adminID,
		Issuer:    "vaultsafe",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
