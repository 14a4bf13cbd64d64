package ports

import (
	"context"

	"github.com/raktasangham/bloodbank-api/internal/core/domain"
)

// AuthRepository defines the persistence contract for identity records.
type AuthRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no record matches.
	// Email is matched exactly as stored.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create inserts the identity record together with its seed donor row.
	// A storage-level uniqueness violation on email is returned as
	// domain.ErrDuplicateEmail; that constraint, not the caller's pre-check,
	// is the real duplicate guarantee.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// GetProfile returns the user joined with its donor row and role name.
	GetProfile(ctx context.Context, userID int64) (*domain.Profile, error)
}
