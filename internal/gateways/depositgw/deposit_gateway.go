package depositgw

import (
	"context"

	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
)

// IDepositGateway exposes the deposit review endpoints. List takes a
// zero-based page; status filters by "pending", "approved" or "rejected",
// empty meaning all. Notes on approve/reject are optional free text.
type IDepositGateway interface {
	List(ctx context.Context, page, pageSize int, status string) ([]domain.Deposit, int, error)
	Approve(ctx context.Context, depositID, adminNotes string) error
	Reject(ctx context.Context, depositID, adminNotes string) error
}
