package pendinggw

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
	"github.com/vaultsafe98-afk/admin-panel/internal/infrastructure/api"
)

type pendingGatewayImpl struct {
	client *api.Client
	logger zerolog.Logger
}

func New(client *api.Client, logger zerolog.Logger) IPendingUserGateway {
	return &pendingGatewayImpl{
		client: client,
		logger: logger.With().Str("component", "pending_gateway").Logger(),
	}
}

func (g *pendingGatewayImpl) List(ctx context.Context) ([]domain.PendingUser, error) {
	var users []domain.PendingUser
	if err := g.client.Get(ctx, "/admin/pending-users", nil, &users); err != nil {
		return nil, fmt.Errorf("listing pending users: %w", err)
	}
	return users, nil
}

func (g *pendingGatewayImpl) Approve(ctx context.Context, userID, payoutAddress string) error {
	body := map[string]string{"trcAddress": payoutAddress}
	if err := g.client.Put(ctx, "/admin/pending-users/"+userID+"/approve", body, nil); err != nil {
		g.logger.Debug().Err(err).Str("user_id", userID).Msg("Failed to approve pending user")
		return fmt.Errorf("approving pending user %s: %w", userID, err)
	}
	return nil
}

func (g *pendingGatewayImpl) Reject(ctx context.Context, userID, reason string) error {
	body := map[string]string{"reason": reason}
	if err := g.client.Put(ctx, "/admin/pending-users/"+userID+"/reject", body, nil); err != nil {
		g.logger.Debug().Err(err).Str("user_id", userID).Msg("Failed to reject pending user")
		return fmt.Errorf("rejecting pending user %s: %w", userID, err)
	}
	return nil
}
