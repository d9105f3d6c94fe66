package session

import (
	"context"
	"time"

	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
)

type State int

const (
	// StateUnknown means Restore has not settled yet. Consumers must not
	// treat it as unauthenticated or they will redirect prematurely.
	StateUnknown State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Session is an immutable snapshot of the current admin session.
type Session struct {
	State     State
	Admin     *domain.AdminUser
	ExpiresAt time.Time
}

type ISessionService interface {
	// Restore resolves the persisted credential into a terminal state:
	// Authenticated when the profile fetch succeeds, Unauthenticated on
	// any failure (which also clears the credential). It never caches
	// across calls; every call issues exactly one profile fetch.
	Restore(ctx context.Context) Session
	Login(ctx context.Context, email, password string) (Session, error)
	Logout() error
	// Invalidate is the sink for the HTTP client's session-expired event.
	Invalidate()
	Current() Session
}
