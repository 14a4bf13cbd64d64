package ports

import (
	"context"

	"github.com/raktasangham/bloodbank-api/internal/core/domain"
)

// BranchRepository defines persistence for branches. List joins the
// province name onto each row.
type BranchRepository interface {
	List(ctx context.Context) ([]domain.Branch, error)
	Create(ctx context.Context, branch *domain.Branch) (*domain.Branch, error)
	Update(ctx context.Context, branch *domain.Branch) (*domain.Branch, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BranchStatus) error
	Delete(ctx context.Context, id int64) error
}
