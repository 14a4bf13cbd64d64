package ports

import (
	"context"

	"github.com/raktasangham/bloodbank-api/internal/core/domain"
)

// DonorUpdateInput is the mutable subset of a donor record.
type DonorUpdateInput struct {
	Name         string
	BloodType    string
	ProfileImage string
}

type DonorService interface {
	List(ctx context.Context) ([]domain.Donor, error)
	Get(ctx context.Context, id int64) (*domain.Donor, error)
	Create(ctx context.Context, donor *domain.Donor) (*domain.Donor, error)
	Update(ctx context.Context, id int64, in DonorUpdateInput) (*domain.Donor, error)
	Delete(ctx context.Context, id int64) error
}
