package ports

import (
	"context"

	"github.com/raktasangham/bloodbank-api/internal/core/domain"
)

type CampaignRepository interface {
	List(ctx context.Context) ([]domain.Campaign, error)
	Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
}
