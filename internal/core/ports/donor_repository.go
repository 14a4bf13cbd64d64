package ports

import (
	"context"

	"github.com/raktasangham/bloodbank-api/internal/core/domain"
)

// DonorRepository defines persistence for donor records.
type DonorRepository interface {
	List(ctx context.Context) ([]domain.Donor, error)
	GetByID(ctx context.Context, id int64) (*domain.Donor, error)
	Create(ctx context.Context, donor *domain.Donor) (*domain.Donor, error)
	Update(ctx context.Context, donor *domain.Donor) (*domain.Donor, error)
	Delete(ctx context.Context, id int64) error
}
