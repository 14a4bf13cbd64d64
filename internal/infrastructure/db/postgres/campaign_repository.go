package postgres

import (
	"context"
	"fmt"

	"github.com/raktasangham/bloodbank-api/internal/core/domain"
)

// CampaignRepository persists donation campaigns.
type CampaignRepository struct {
	db DB
}

func NewCampaignRepository(db DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, location, start_date, end_date, created_by
		FROM campaigns
		ORDER BY start_date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := make([]domain.Campaign, 0)
	for rows.Next() {
		var c domain.Campaign
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Location,
			&c.StartDate, &c.EndDate, &c.CreatedByID); err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, nil
}

func (r *CampaignRepository) Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO campaigns (title, description, location, start_date, end_date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		campaign.Title, campaign.Description, campaign.Location,
		campaign.StartDate, campaign.EndDate, campaign.CreatedByID,
	).Scan(&campaign.ID)
	if err != nil {
		return nil, fmt.Errorf("insert campaign: %w", err)
	}
	return campaign, nil
}
