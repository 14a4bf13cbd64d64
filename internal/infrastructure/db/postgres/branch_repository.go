package postgres

import (
	"context"
	"fmt"

	"github.com/raktasangham/bloodbank-api/internal/core/domain"
)

// BranchRepository persists branches.
type BranchRepository struct {
	db DB
}

func NewBranchRepository(db DB) *BranchRepository {
	return &BranchRepository{db: db}
}

func (r *BranchRepository) List(ctx context.Context) ([]domain.Branch, error) {
	rows, err := r.db.Query(ctx, `
		SELECT b.id, b.branch_name, b.location, b.province_id, p.name,
		       b.created_by, b.created_date, b.status
		FROM branches b
		LEFT JOIN provinces p ON p.id = b.province_id
		ORDER BY b.id
	`)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()

	branches := make([]domain.Branch, 0)
	for rows.Next() {
		var (
			b            domain.Branch
			provinceName *string
			status       string
		)
		if err := rows.Scan(&b.ID, &b.BranchName, &b.Location, &b.ProvinceID, &provinceName,
			&b.CreatedByID, &b.CreatedDate, &status); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		if provinceName != nil {
			b.ProvinceName = *provinceName
		}
		b.Status = domain.BranchStatus(status)
		branches = append(branches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	return branches, nil
}

func (r *BranchRepository) Create(ctx context.Context, branch *domain.Branch) (*domain.Branch, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO branches (branch_name, location, province_id, created_by, created_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		branch.BranchName, branch.Location, branch.ProvinceID,
		branch.CreatedByID, branch.CreatedDate, string(branch.Status),
	).Scan(&branch.ID)
	if err != nil {
		return nil, fmt.Errorf("insert branch: %w", err)
	}
	return branch, nil
}

func (r *BranchRepository) Update(ctx context.Context, branch *domain.Branch) (*domain.Branch, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE branches
		SET branch_name = $1, location = $2, province_id = $3, status = $4
		WHERE id = $5
	`,
		branch.BranchName, branch.Location, branch.ProvinceID, string(branch.Status), branch.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrBranchNotFound
	}
	return branch, nil
}

func (r *BranchRepository) UpdateStatus(ctx context.Context, id int64, status domain.BranchStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE branches SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return fmt.Errorf("update branch status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBranchNotFound
	}
	return nil
}

func (r *BranchRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBranchNotFound
	}
	return nil
}
