package notifygw

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
	"github.com/vaultsafe98-afk/admin-panel/internal/infrastructure/api"
)

const unreadScanLimit = 100

type notificationGatewayImpl struct {
	client *api.Client
	logger zerolog.Logger
}

func New(client *api.Client, logger zerolog.Logger) INotificationGateway {
	return &notificationGatewayImpl{
		client: client,
		logger: logger.With().Str("component", "notification_gateway").Logger(),
	}
}

func (g *notificationGatewayImpl) List(ctx context.Context, page, pageSize int) ([]domain.Notification, int, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page+1))
	params.Set("limit", strconv.Itoa(pageSize))

	var resp struct {
		Notifications []domain.Notification `json:"notifications"`
		Pagination    domain.Pagination     `json:"pagination"`
	}
	if err := g.client.Get(ctx, "/admin/notifications", params, &resp); err != nil {
		return nil, 0, fmt.Errorf("listing notifications: %w", err)
	}
	return resp.Notifications, resp.Pagination.TotalItems, nil
}

func (g *notificationGatewayImpl) Send(ctx context.Context, userID, message string, notifType domain.NotificationType) error {
	body := map[string]string{
		"userId":  userID,
		"message": message,
		"type":    string(notifType),
	}
	if err := g.client.Post(ctx, "/admin/notifications", body, nil); err != nil {
		g.logger.Debug().Err(err).Str("user_id", userID).Msg("Failed to send notification")
		return fmt.Errorf("sending notification: %w", err)
	}
	return nil
}

func (g *notificationGatewayImpl) MarkRead(ctx context.Context, notificationID string) error {
	if err := g.client.Put(ctx, "/admin/notifications/"+notificationID+"/read", nil, nil); err != nil {
		return fmt.Errorf("marking notification %s read: %w", notificationID, err)
	}
	return nil
}

func (g *notificationGatewayImpl) MarkAllRead(ctx context.Context) error {
	if err := g.client.Put(ctx, "/admin/notifications/read-all", nil, nil); err != nil {
		return fmt.Errorf("marking all notifications read: %w", err)
	}
	return nil
}

func (g *notificationGatewayImpl) UnreadCount(ctx context.Context) (int, error) {
	items, _, err := g.List(ctx, 0, unreadScanLimit)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range items {
		if n.Status == domain.NotificationStatusUnread {
			count++
		}
	}
	return count, nil
}
