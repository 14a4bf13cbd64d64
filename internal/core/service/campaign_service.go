package service

import (
	"context"

	"github.com/raktasangham/bloodbank-api/internal/core/domain"
	"github.com/raktasangham/bloodbank-api/internal/core/ports"
)

// CampaignService serves donation campaigns.
type CampaignService struct {
	repo ports.CampaignRepository
}

func NewCampaignService(repo ports.CampaignRepository) *CampaignService {
	return &CampaignService{repo: repo}
}

// List returns domain.ErrCampaignNotFound when no campaigns exist; the
// clients treat an empty campaign board as a 404.
func (s *CampaignService) List(ctx context.Context) ([]domain.Campaign, error) {
	campaigns, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(campaigns) == 0 {
		return nil, domain.ErrCampaignNotFound
	}
	return campaigns, nil
}

func (s *CampaignService) Create(ctx context.Context, campaign *domain.Campaign, createdBy int64) (*domain.Campaign, error) {
	campaign.CreatedByID = createdBy
	return s.repo.Create(ctx, campaign)
}
