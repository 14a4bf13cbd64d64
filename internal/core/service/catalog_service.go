package service

import (
	"context"

	"github.com/raktasangham/bloodbank-api/internal/core/domain"
	"github.com/raktasangham/bloodbank-api/internal/core/ports"
)

// CatalogService serves the province and blood-type reference data.
type CatalogService struct {
	repo ports.CatalogRepository
}

func NewCatalogService(repo ports.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListProvinces(ctx context.Context) ([]domain.Province, error) {
	return s.repo.ListProvinces(ctx)
}

func (s *CatalogService) GetProvince(ctx context.Context, id int64) (*domain.Province, error) {
	return s.repo.GetProvince(ctx, id)
}

func (s *CatalogService) ListBloodTypes(ctx context.Context) ([]domain.BloodType, error) {
	return s.repo.ListBloodTypes(ctx)
}

func (s *CatalogService) CreateBloodType(ctx context.Context, name string) (*domain.BloodType, error) {
	return s.repo.CreateBloodType(ctx, name)
}
