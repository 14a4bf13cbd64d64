package ports

import (
	"context"

	"github.com/raktasangham/bloodbank-api/internal/core/domain"
)

// RegisterInput carries the registration payload into the service layer.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	RoleID   domain.Role
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID int64) (*domain.Profile, error)
}
