package withdrawalgw

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
	"github.com/vaultsafe98-afk/admin-panel/internal/infrastructure/api"
)

type withdrawalGatewayImpl struct {
	client *api.Client
	logger zerolog.Logger
}

func New(client *api.Client, logger zerolog.Logger) IWithdrawalGateway {
	return &withdrawalGatewayImpl{
		client: client,
		logger: logger.With().Str("component", "withdrawal_gateway").Logger(),
	}
}

func (g *withdrawalGatewayImpl) List(ctx context.Context, page, pageSize int, status string) ([]domain.Withdrawal, int, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page+1))
	params.Set("limit", strconv.Itoa(pageSize))
	if status != "" {
		params.Set("status", status)
	}

	var resp struct {
		Withdrawals []domain.Withdrawal `json:"withdrawals"`
		Pagination  domain.Pagination   `json:"pagination"`
	}
	if err := g.client.Get(ctx, "/admin/withdrawals", params, &resp); err != nil {
		return nil, 0, fmt.Errorf("listing withdrawals: %w", err)
	}
	return resp.Withdrawals, resp.Pagination.TotalItems, nil
}

// Decision routes use the /admin/withdraw prefix rather than
// /admin/withdrawals; that asymmetry is the backend's, not ours.
func (g *withdrawalGatewayImpl) Approve(ctx context.Context, withdrawalID, adminNotes string) error {
	body := map[string]string{"adminNotes": adminNotes}
	if err := g.client.Put(ctx, "/admin/withdraw/"+withdrawalID+"/approve", body, nil); err != nil {
		g.logger.Debug().Err(err).Str("withdrawal_id", withdrawalID).Msg("Failed to approve withdrawal")
		return fmt.Errorf("approving withdrawal %s: %w", withdrawalID, err)
	}
	return nil
}

func (g *withdrawalGatewayImpl) Reject(ctx context.Context, withdrawalID, adminNotes string) error {
	body := map[string]string{"adminNotes": adminNotes}
	if err := g.client.Put(ctx, "/admin/withdraw/"+withdrawalID+"/reject", body, nil); err != nil {
		g.logger.Debug().Err(err).Str("withdrawal_id", withdrawalID).Msg("Failed to reject withdrawal")
		return fmt.Errorf("rejecting withdrawal %s: %w", withdrawalID, err)
	}
	return nil
}
