package ports

import (
	"context"

	"github.com/raktasangham/bloodbank-api/internal/core/domain"
)

// CatalogRepository covers the small reference tables: provinces and
// blood types.
type CatalogRepository interface {
	ListProvinces(ctx context.Context) ([]domain.Province, error)
	GetProvince(ctx context.Context, id int64) (*domain.Province, error)
	ListBloodTypes(ctx context.Context) ([]domain.BloodType, error)
	CreateBloodType(ctx context.Context, name string) (*domain.BloodType, error)
}
