package service

import (
	"context"
	"time"

	"github.com/raktasangham/bloodbank-api/internal/core/domain"
	"github.com/raktasangham/bloodbank-api/internal/core/ports"
)

// BranchService orchestrates branch CRUD. The creating identity is always
// the authenticated caller, never a body field.
type BranchService struct {
	repo ports.BranchRepository
}

func NewBranchService(repo ports.BranchRepository) *BranchService {
	return &BranchService{repo: repo}
}

func (s *BranchService) List(ctx context.Context) ([]domain.Branch, error) {
	return s.repo.List(ctx)
}

func (s *BranchService) Create(ctx context.Context, in ports.BranchInput, createdBy int64) (*domain.Branch, error) {
	branch := &domain.Branch{
		BranchName:  in.BranchName,
		Location:    in.Location,
		ProvinceID:  in.ProvinceID,
		CreatedByID: createdBy,
		CreatedDate: time.Now().UTC(),
		Status:      in.Status,
	}
	return s.repo.Create(ctx, branch)
}

func (s *BranchService) Update(ctx context.Context, id int64, in ports.BranchInput) (*domain.Branch, error) {
	branch := &domain.Branch{
		ID:         id,
		BranchName: in.BranchName,
		Location:   in.Location,
		ProvinceID: in.ProvinceID,
		Status:     in.Status,
	}
	return s.repo.Update(ctx, branch)
}

func (s *BranchService) UpdateStatus(ctx context.Context, id int64, status domain.BranchStatus) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *BranchService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
