package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/vaultsafe98-afk/admin-panel/internal/gateways/authgw"
	"github.com/vaultsafe98-afk/admin-panel/internal/infrastructure/credstore"
)

type sessionServiceImpl struct {
	authGW authgw.IAuthGateway
	creds  *credstore.Store
	logger zerolog.Logger

	mu      sync.Mutex
	current Session
}

func New(authGW authgw.IAuthGateway, creds *credstore.Store, logger zerolog.Logger) ISessionService {
	return &sessionServiceImpl{
		authGW:  authGW,
		creds:   creds,
		logger:  logger.With().Str("component", "session_service").Logger(),
		current: Session{State: StateUnknown},
	}
}

func (s *sessionServiceImpl) Restore(ctx context.Context) Session {
	token, err := s.creds.Load()
	if err != nil || token == "" {
		if err != nil {
			s.logger.Warn().Err(err).Msg("Failed to read persisted credential")
		}
		return s.set(Session{State: StateUnauthenticated})
	}

	profile, err := s.authGW.GetProfile(ctx)
	if err != nil {
		// Network failure, 401 or malformed response all collapse to the
		// same terminal state; the stale credential is dropped either way.
		s.logger.Warn().Err(err).Msg("Credential restore failed, clearing session")
		if _, clearErr := s.creds.Clear(); clearErr != nil {
			s.logger.Error().Err(clearErr).Msg("Failed to clear stale credential")
		}
		return s.set(Session{State: StateUnauthenticated})
	}

	return s.set(Session{
		State:     StateAuthenticated,
		Admin:     profile,
		ExpiresAt: tokenExpiry(token),
	})
}

func (s *sessionServiceImpl) Login(ctx context.Context, email, password string) (Session, error) {
	result, err := s.authGW.Login(ctx, email, password)
	if err != nil {
		// Prior session, if any, stays untouched.
		return s.Current(), err
	}

	if err := s.creds.Save(result.Token); err != nil {
		return s.Current(), fmt.Errorf("persisting credential: %w", err)
	}

	admin := result.User
	s.logger.Info().Str("admin_id", admin.ID).Msg("Admin logged in")
	return s.set(Session{
		State:     StateAuthenticated,
		Admin:     &admin,
		ExpiresAt: tokenExpiry(result.Token),
	}), nil
}

func (s *sessionServiceImpl) Logout() error {
	if _, err := s.creds.Clear(); err != nil {
		return fmt.Errorf("clearing credential: %w", err)
	}
	s.set(Session{State: StateUnauthenticated})
	s.logger.Info().Msg("Admin logged out")
	return nil
}

func (s *sessionServiceImpl) Invalidate() {
	s.set(Session{State: StateUnauthenticated})
}

func (s *sessionServiceImpl) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *sessionServiceImpl) set(sess Session) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = sess
	return sess
}

// tokenExpiry reads the exp claim without verifying the signature. The
// token is opaque as far as authorization goes; this is display-only.
func tokenExpiry(token string) time.Time {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
