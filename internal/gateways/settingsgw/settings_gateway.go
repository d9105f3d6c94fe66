package settingsgw

import (
	"context"

	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
)

// ISettingsGateway reads the platform settings singleton. The wallet
// address is the only field with a write endpoint; the rest are
// backend-managed for now.
type ISettingsGateway interface {
	Get(ctx context.Context) (*domain.Settings, error)
	UpdateWalletAddress(ctx context.Context, address string) error
}
