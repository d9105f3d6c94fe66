package settingsgw

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
	"github.com/vaultsafe98-afk/admin-panel/internal/infrastructure/api"
)

type settingsGatewayImpl struct {
	client *api.Client
	logger zerolog.Logger
}

func New(client *api.Client, logger zerolog.Logger) ISettingsGateway {
	return &settingsGatewayImpl{
		client: client,
		logger: logger.With().Str("component", "settings_gateway").Logger(),
	}
}

func (g *settingsGatewayImpl) Get(ctx context.Context) (*domain.Settings, error) {
	var settings domain.Settings
	if err := g.client.Get(ctx, "/admin/settings", nil, &settings); err != nil {
		return nil, fmt.Errorf("fetching settings: %w", err)
	}
	return &settings, nil
}

func (g *settingsGatewayImpl) UpdateWalletAddress(ctx context.Context, address string) error {
	body := map[string]string{"address": address}
	if err := g.client.Put(ctx, "/admin/settings/wallet-address", body, nil); err != nil {
		g.logger.Debug().Err(err).Msg("Failed to update wallet address")
		return fmt.Errorf("updating wallet address: %w", err)
	}
	return nil
}
