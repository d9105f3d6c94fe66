package pendinggw

import (
	"context"

	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
)

// IPendingUserGateway exposes the signup review queue. The backend returns
// the full pending set, unpaginated; approval takes the TRC payout address
// assigned to the new account, rejection takes a mandatory reason.
type IPendingUserGateway interface {
	List(ctx context.Context) ([]domain.PendingUser, error)
	Approve(ctx context.Context, userID, payoutAddress string) error
	Reject(ctx context.Context, userID, reason string) error
}
