package usergw

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
	"github.com/vaultsafe98-afk/admin-panel/internal/infrastructure/api"
)

type userGatewayImpl struct {
	client *api.Client
	logger zerolog.Logger
}

func New(client *api.Client, logger zerolog.Logger) IUserGateway {
	return &userGatewayImpl{
		client: client,
		logger: logger.With().Str("component", "user_gateway").Logger(),
	}
}

func (g *userGatewayImpl) List(ctx context.Context, page, pageSize int, search string) ([]domain.User, int, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page+1))
	params.Set("limit", strconv.Itoa(pageSize))
	if search != "" {
		params.Set("search", search)
	}

	var resp struct {
		Users      []domain.User     `json:"users"`
		Pagination domain.Pagination `json:"pagination"`
	}
	if err := g.client.Get(ctx, "/admin/users", params, &resp); err != nil {
		return nil, 0, fmt.Errorf("listing users: %w", err)
	}
	return resp.Users, resp.Pagination.TotalItems, nil
}

func (g *userGatewayImpl) Block(ctx context.Context, userID string) error {
	if err := g.client.Put(ctx, "/admin/users/"+userID+"/block", nil, nil); err != nil {
		g.logger.Debug().Err(err).Str("user_id", userID).Msg("Failed to block user")
		return fmt.Errorf("blocking user %s: %w", userID, err)
	}
	return nil
}

func (g *userGatewayImpl) Unblock(ctx context.Context, userID string) error {
	if err := g.client.Put(ctx, "/admin/users/"+userID+"/unblock", nil, nil); err != nil {
		g.logger.Debug().Err(err).Str("user_id", userID).Msg("Failed to unblock user")
		return fmt.Errorf("unblocking user %s: %w", userID, err)
	}
	return nil
}

func (g *userGatewayImpl) ResetPassword(ctx context.Context, userID string) (string, error) {
	var resp struct {
		NewPassword string `json:"newPassword"`
	}
	if err := g.client.Put(ctx, "/admin/users/"+userID+"/reset-password", nil, &resp); err != nil {
		return "", fmt.Errorf("resetting password for user %s: %w", userID, err)
	}
	return resp.NewPassword, nil
}

func (g *userGatewayImpl) AdjustBalance(ctx context.Context, userID string, newBalance float64, reason string) (*domain.BalanceChange, error) {
	body := map[string]any{
		"newBalance": newBalance,
		"reason":     reason,
	}

	var resp struct {
		User domain.BalanceChange `json:"user"`
	}
	if err := g.client.Put(ctx, "/admin/users/"+userID+"/balance", body, &resp); err != nil {
		return nil, fmt.Errorf("adjusting balance for user %s: %w", userID, err)
	}
	return &resp.User, nil
}

func (g *userGatewayImpl) SetPayoutAddress(ctx context.Context, userID, address string) (string, error) {
	body := map[string]string{"trcAddress": address}

	var resp struct {
		User struct {
			TRCAddress string `json:"trcAddress"`
		} `json:"user"`
	}
	if err := g.client.Put(ctx, "/admin/users/"+userID+"/trc-address", body, &resp); err != nil {
		return "", fmt.Errorf("updating payout address for user %s: %w", userID, err)
	}
	return resp.User.TRCAddress, nil
}
