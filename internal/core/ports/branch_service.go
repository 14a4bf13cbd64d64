package ports

import (
	"context"

	"github.com/raktasangham/bloodbank-api/internal/core/domain"
)

// BranchInput carries the branch create/update payload. CreatedByID on
// create comes from the verified identity context, never from the body.
type BranchInput struct {
	BranchName string
	Location   string
	ProvinceID int64
	Status     domain.BranchStatus
}

type BranchService interface {
	List(ctx context.Context) ([]domain.Branch, error)
	Create(ctx context.Context, in BranchInput, createdBy int64) (*domain.Branch, error)
	Update(ctx context.Context, id int64, in BranchInput) (*domain.Branch, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BranchStatus) error
	Delete(ctx context.Context, id int64) error
}
