package reportsgw

import (
	"context"

	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
)

type IReportsGateway interface {
	Summary(ctx context.Context) (*domain.DashboardStats, error)
}
