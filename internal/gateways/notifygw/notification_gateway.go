package notifygw

import (
	"context"

	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
)

type INotificationGateway interface {
	List(ctx context.Context, page, pageSize int) ([]domain.Notification, int, error)
	Send(ctx context.Context, userID, message string, notifType domain.NotificationType) error
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context) error
	// UnreadCount scans the first page of notifications and reports how
	// many are unread; the backend has no dedicated count endpoint.
	UnreadCount(ctx context.Context) (int, error)
}
