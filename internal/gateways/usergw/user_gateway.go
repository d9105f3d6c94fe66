package usergw

import (
	"context"

	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
)

// IUserGateway exposes the user management endpoints. List takes a
// zero-based page and converts to the backend's 1-based pages.
type IUserGateway interface {
	List(ctx context.Context, page, pageSize int, search string) ([]domain.User, int, error)
	Block(ctx context.Context, userID string) error
	Unblock(ctx context.Context, userID string) error
	ResetPassword(ctx context.Context, userID string) (string, error)
	AdjustBalance(ctx context.Context, userID string, newBalance float64, reason string) (*domain.BalanceChange, error)
	SetPayoutAddress(ctx context.Context, userID, address string) (string, error)
}
