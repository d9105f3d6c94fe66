package authgw

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
	"github.com/vaultsafe98-afk/admin-panel/internal/infrastructure/api"
)

type authGatewayImpl struct {
	client *api.Client
	logger zerolog.Logger
}

func New(client *api.Client, logger zerolog.Logger) IAuthGateway {
	return &authGatewayImpl{
		client: client,
		logger: logger.With().Str("component", "auth_gateway").Logger(),
	}
}

func (g *authGatewayImpl) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	var result LoginResult
	if err := g.client.PostPublic(ctx, "/auth/admin/login", body, &result); err != nil {
		g.logger.Debug().Err(err).Str("email", email).Msg("Admin login failed")
		return nil, fmt.Errorf("admin login: %w", err)
	}
	return &result, nil
}

func (g *authGatewayImpl) GetProfile(ctx context.Context) (*domain.AdminUser, error) {
	var profile domain.AdminUser
	if err := g.client.Get(ctx, "/admin/profile", nil, &profile); err != nil {
		return nil, fmt.Errorf("fetching admin profile: %w", err)
	}
	return &profile, nil
}

func (g *authGatewayImpl) UpdateProfile(ctx context.Context, update ProfileUpdate) (*domain.AdminUser, error) {
	var profile domain.AdminUser
	if err := g.client.Put(ctx, "/admin/profile", update, &profile); err != nil {
		return nil, fmt.Errorf("updating admin profile: %w", err)
	}
	return &profile, nil
}
