package notifygw

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vaultsafe98-afk/admin-panel/internal/backendtest"
	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
	"github.com/vaultsafe98-afk/admin-panel/internal/infrastructure/api"
	"github.com/vaultsafe98-afk/admin-panel/internal/infrastructure/credstore"
	"github.com/vaultsafe98-afk/admin-panel/pkg/config"
)

func newFixture(t *testing.T) (INotificationGateway, *backendtest.Backend) {
	t.Helper()

	backend := backendtest.New("tok")
	srv := backend.Start()
	t.Cleanup(srv.Close)

	creds := credstore.New(filepath.Join(t.TempDir(), "credentials"))
	if err := creds.Save("tok"); err != nil {
		t.Fatal(err)
	}
	client := api.New(config.APIConfig{BaseURL: srv.URL, Timeout: 2 * time.Second}, creds, zerolog.Nop())
	return New(client, zerolog.Nop()), backend
}

func TestSendWireFormat(t *testing.T) {
	gw, backend := newFixture(t)
	backend.Handle(http.MethodPost, "/admin/notifications", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"message": "Notification sent"})
	})

	err := gw.Send(context.Background(), "u-1", "Your deposit was approved", domain.NotificationTypeDeposit)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	req, _ := backend.LastRequest(http.MethodPost, "/admin/notifications")
	if req.Body["userId"] != "u-1" {
		t.Fatalf("userId = %v", req.Body["userId"])
	}
	if req.Body["message"] != "Your deposit was approved" {
		t.Fatalf("message = %v", req.Body["message"])
	}
	if req.Body["type"] != "deposit" {
		t.Fatalf("type = %v", req.Body["type"])
	}
}

func TestMarkReadPaths(t *testing.T) {
	gw, backend := newFixture(t)
	backend.Handle(http.MethodPut, "/admin/notifications/read-all", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	backend.Handle(http.MethodPut, "/admin/notifications/:id/read", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	if err := gw.MarkRead(context.Background(), "n-9"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if _, ok := backend.LastRequest(http.MethodPut, "/admin/notifications/n-9/read"); !ok {
		t.Fatal("mark-read request not seen on the expected path")
	}

	if err := gw.MarkAllRead(context.Background()); err != nil {
		t.Fatalf("MarkAllRead: %v", err)
	}
	if _, ok := backend.LastRequest(http.MethodPut, "/admin/notifications/read-all"); !ok {
		t.Fatal("read-all request not seen on the expected path")
	}
}

func TestUnreadCountScansFirstPage(t *testing.T) {
	gw, backend := newFixture(t)
	backend.Handle(http.MethodGet, "/admin/notifications", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"notifications": []domain.Notification{
				{ID: "n-1", Status: domain.NotificationStatusUnread},
				{ID: "n-2", Status: domain.NotificationStatusRead},
				{ID: "n-3", Status: domain.NotificationStatusUnread},
			},
			"pagination": domain.Pagination{TotalItems: 3},
		})
	})

	count, err := gw.UnreadCount(context.Background())
	if err != nil {
		t.Fatalf("UnreadCount: %v", err)
	}
	if count != 2 {
		t.Fatalf("unread count = %d, want 2", count)
	}

	req, _ := backend.LastRequest(http.MethodGet, "/admin/notifications")
	if got := req.Query.Get("limit"); got != "100" {
		t.Fatalf("scan limit = %q, want 100", got)
	}
	if got := req.Query.Get("page"); got != "1" {
		t.Fatalf("scan page = %q, want 1", got)
	}
}
