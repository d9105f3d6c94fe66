package depositgw

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
	"github.com/vaultsafe98-afk/admin-panel/internal/infrastructure/api"
)

type depositGatewayImpl struct {
	client *api.Client
	logger zerolog.Logger
}

func New(client *api.Client, logger zerolog.Logger) IDepositGateway {
	return &depositGatewayImpl{
		client: client,
		logger: logger.With().Str("component", "deposit_gateway").Logger(),
	}
}

func (g *depositGatewayImpl) List(ctx context.Context, page, pageSize int, status string) ([]domain.Deposit, int, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page+1))
	params.Set("limit", strconv.Itoa(pageSize))
	if status != "" {
		params.Set("status", status)
	}

	var resp struct {
		Deposits   []domain.Deposit  `json:"deposits"`
		Pagination domain.Pagination `json:"pagination"`
	}
	if err := g.client.Get(ctx, "/admin/deposits", params, &resp); err != nil {
		return nil, 0, fmt.Errorf("listing deposits: %w", err)
	}
	return resp.Deposits, resp.Pagination.TotalItems, nil
}

// The decision endpoints live under the singular /admin/deposit prefix,
// unlike the plural list route.
func (g *depositGatewayImpl) Approve(ctx context.Context, depositID, adminNotes string) error {
	body := map[string]string{"adminNotes": adminNotes}
	if err := g.client.Put(ctx, "/admin/deposit/"+depositID+"/approve", body, nil); err != nil {
		g.logger.Debug().Err(err).Str("deposit_id", depositID).Msg("Failed to approve deposit")
		return fmt.Errorf("approving deposit %s: %w", depositID, err)
	}
	return nil
}

func (g *depositGatewayImpl) Reject(ctx context.Context, depositID, adminNotes string) error {
	body := map[string]string{"adminNotes": adminNotes}
	if err := g.client.Put(ctx, "/admin/deposit/"+depositID+"/reject", body, nil); err != nil {
		g.logger.Debug().Err(err).Str("deposit_id", depositID).Msg("Failed to reject deposit")
		return fmt.Errorf("rejecting deposit %s: %w", depositID, err)
	}
	return nil
}
