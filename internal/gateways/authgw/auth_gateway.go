package authgw

import (
	"context"

	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
)

type LoginResult struct {
	Token string           `json:"token"`
	User  domain.AdminUser `json:"user"`
}

type ProfileUpdate struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password,omitempty"`
}

type IAuthGateway interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	GetProfile(ctx context.Context) (*domain.AdminUser, error)
	UpdateProfile(ctx context.Context, update ProfileUpdate) (*domain.AdminUser, error)
}
