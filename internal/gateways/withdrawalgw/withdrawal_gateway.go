package withdrawalgw

import (
	"context"

	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
)

// IWithdrawalGateway exposes the withdrawal review endpoints, same shape
// as the deposit gateway.
type IWithdrawalGateway interface {
	List(ctx context.Context, page, pageSize int, status string) ([]domain.Withdrawal, int, error)
	Approve(ctx context.Context, withdrawalID, adminNotes string) error
	Reject(ctx context.Context, withdrawalID, adminNotes string) error
}
