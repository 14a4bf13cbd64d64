package ports

import (
	"context"

	"github.com/raktasangham/bloodbank-api/internal/core/domain"
)

type CampaignService interface {
	List(ctx context.Context) ([]domain.Campaign, error)
	Create(ctx context.Context, campaign *domain.Campaign, createdBy int64) (*domain.Campaign, error)
}
