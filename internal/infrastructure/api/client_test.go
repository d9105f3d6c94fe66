package api

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vaultsafe98-afk/admin-panel/internal/backendtest"
	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
	"github.com/vaultsafe98-afk/admin-panel/internal/infrastructure/credstore"
	"github.com/vaultsafe98-afk/admin-panel/pkg/config"
)

func newFixture(t *testing.T, backend *backendtest.Backend, opts ...Option) (*Client, *credstore.Store) {
	t.Helper()

	srv := backend.Start()
	t.Cleanup(srv.Close)

	creds := credstore.New(filepath.Join(t.TempDir(), "credentials"))
	client := New(config.APIConfig{BaseURL: srv.URL, Timeout: 2 * time.Second}, creds, zerolog.Nop(), opts...)
	return client, creds
}

func TestAttachesBearerAndRequestID(t *testing.T) {
	backend := backendtest.New("tok-1")
	backend.Handle(http.MethodGet, "/admin/settings", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"walletAddress": "T123"})
	})

	client, creds := newFixture(t, backend)
	if err := creds.Save("tok-1"); err != nil {
		t.Fatal(err)
	}

	var out domain.Settings
	if err := client.Get(context.Background(), "/admin/settings", nil, &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out.WalletAddress != "T123" {
		t.Fatalf("decoded walletAddress = %q", out.WalletAddress)
	}

	req, ok := backend.LastRequest(http.MethodGet, "/admin/settings")
	if !ok {
		t.Fatal("request not recorded")
	}
	if req.Bearer != "tok-1" {
		t.Fatalf("bearer = %q, want tok-1", req.Bearer)
	}
}

func TestUnauthorizedCollapsesSessionGlobally(t *testing.T) {
	backend := backendtest.New("good-token")
	backend.Handle(http.MethodGet, "/admin/users", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"users": []any{}})
	})

	var expired atomic.Int32
	client, creds := newFixture(t, backend, WithSessionExpiredFunc(func() {
		expired.Add(1)
	}))
	if err := creds.Save("stale-token"); err != nil {
		t.Fatal(err)
	}

	err := client.Get(context.Background(), "/admin/users", nil, nil)
	if !domain.IsAuthError(err) {
		t.Fatalf("expected AuthError, got %v", err)
	}

	if token, _ := creds.Load(); token != "" {
		t.Fatalf("credential not cleared, still %q", token)
	}
	if got := expired.Load(); got != 1 {
		t.Fatalf("session-expired fired %d times, want 1", got)
	}

	// The next request goes out with no credential header at all, and a
	// second 401 does not re-fire the expiry event.
	_ = client.Get(context.Background(), "/admin/users", nil, nil)
	req, _ := backend.LastRequest(http.MethodGet, "/admin/users")
	if req.Bearer != "" {
		t.Fatalf("follow-up request still carried bearer %q", req.Bearer)
	}
	if got := expired.Load(); got != 1 {
		t.Fatalf("session-expired fired %d times after second 401, want 1", got)
	}
}

func TestLoginUnauthorizedKeepsExistingCredential(t *testing.T) {
	backend := backendtest.New("good-token")
	backend.Handle(http.MethodPost, backendtest.LoginPath, func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	})

	var expired atomic.Int32
	client, creds := newFixture(t, backend, WithSessionExpiredFunc(func() {
		expired.Add(1)
	}))
	if err := creds.Save("good-token"); err != nil {
		t.Fatal(err)
	}

	err := client.PostPublic(context.Background(), backendtest.LoginPath, map[string]string{"email": "a@b.c", "password": "nope"}, nil)
	if !domain.IsAuthError(err) {
		t.Fatalf("expected AuthError, got %v", err)
	}

	if token, _ := creds.Load(); token != "good-token" {
		t.Fatalf("existing credential was clobbered by a failed login, got %q", token)
	}
	if expired.Load() != 0 {
		t.Fatal("failed login must not publish session expiry")
	}
}

func TestErrorTaxonomy(t *testing.T) {
	backend := backendtest.New("tok")
	backend.Handle(http.MethodGet, "/missing", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "no such record"})
	})
	backend.Handle(http.MethodGet, "/boom", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db down"})
	})

	client, creds := newFixture(t, backend)
	if err := creds.Save("tok"); err != nil {
		t.Fatal(err)
	}

	err := client.Get(context.Background(), "/missing", nil, nil)
	if !domain.IsConflictError(err) || domain.IsServerError(err) {
		t.Fatalf("404 should classify as conflict, got %v", err)
	}
	var se *domain.StatusError
	if !errors.As(err, &se) || se.Message != "no such record" {
		t.Fatalf("server message not surfaced: %v", err)
	}

	err = client.Get(context.Background(), "/boom", nil, nil)
	if !domain.IsServerError(err) {
		t.Fatalf("500 should classify as server error, got %v", err)
	}
}

func TestTimeoutIsNetworkError(t *testing.T) {
	backend := backendtest.New("tok")
	backend.Handle(http.MethodGet, "/slow", func(c *gin.Context) {
		time.Sleep(200 * time.Millisecond)
		c.Status(http.StatusOK)
	})

	srv := backend.Start()
	t.Cleanup(srv.Close)

	creds := credstore.New(filepath.Join(t.TempDir(), "credentials"))
	if err := creds.Save("tok"); err != nil {
		t.Fatal(err)
	}
	client := New(config.APIConfig{BaseURL: srv.URL, Timeout: 20 * time.Millisecond}, creds, zerolog.Nop())

	err := client.Get(context.Background(), "/slow", nil, nil)
	if !domain.IsNetworkError(err) {
		t.Fatalf("timeout should surface as NetworkError, got %v", err)
	}
}
