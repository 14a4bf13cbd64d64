package service

import (
	"context"

	"github.com/raktasangham/bloodbank-api/internal/core/domain"
	"github.com/raktasangham/bloodbank-api/internal/core/ports"
)

// DonorService is a thin orchestration layer over the donor repository.
type DonorService struct {
	repo ports.DonorRepository
}

func NewDonorService(repo ports.DonorRepository) *DonorService {
	return &DonorService{repo: repo}
}

func (s *DonorService) List(ctx context.Context) ([]domain.Donor, error) {
	return s.repo.List(ctx)
}

func (s *DonorService) Get(ctx context.Context, id int64) (*domain.Donor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DonorService) Create(ctx context.Context, donor *domain.Donor) (*domain.Donor, error) {
	return s.repo.Create(ctx, donor)
}

// Update applies the mutable fields onto the stored record so unrelated
// columns survive partial payloads.
func (s *DonorService) Update(ctx context.Context, id int64, in ports.DonorUpdateInput) (*domain.Donor, error) {
	donor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	donor.Name = in.Name
	donor.BloodType = in.BloodType
	donor.ProfileImage = in.ProfileImage

	return s.repo.Update(ctx, donor)
}

func (s *DonorService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
