package reportsgw

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
	"github.com/vaultsafe98-afk/admin-panel/internal/infrastructure/api"
)

type reportsGatewayImpl struct {
	client *api.Client
	logger zerolog.Logger
}

func New(client *api.Client, logger zerolog.Logger) IReportsGateway {
	return &reportsGatewayImpl{
		client: client,
		logger: logger.With().Str("component", "reports_gateway").Logger(),
	}
}

func (g *reportsGatewayImpl) Summary(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := g.client.Get(ctx, "/admin/reports/summary", nil, &stats); err != nil {
		return nil, fmt.Errorf("fetching reports summary: %w", err)
	}
	return &stats, nil
}
