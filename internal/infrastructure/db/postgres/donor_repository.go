package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/raktasangham/bloodbank-api/internal/core/domain"
)

// DonorRepository persists donor records.
type DonorRepository struct {
	db DB
}

func NewDonorRepository(db DB) *DonorRepository {
	return &DonorRepository{db: db}
}

const donorColumns = `id, name, email, mobile_number, blood_type, profile_image, user_id, created_at`

func scanDonor(row pgx.Row) (*domain.Donor, error) {
	var d domain.Donor
	err := row.Scan(&d.ID, &d.Name, &d.Email, &d.MobileNumber, &d.BloodType, &d.ProfileImage, &d.UserID, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DonorRepository) List(ctx context.Context) ([]domain.Donor, error) {
	rows, err := r.db.Query(ctx, `SELECT `+donorColumns+` FROM donors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	defer rows.Close()

	donors := make([]domain.Donor, 0)
	for rows.Next() {
		d, err := scanDonor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan donor: %w", err)
		}
		donors = append(donors, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	return donors, nil
}

func (r *DonorRepository) GetByID(ctx context.Context, id int64) (*domain.Donor, error) {
	d, err := scanDonor(r.db.QueryRow(ctx, `SELECT `+donorColumns+` FROM donors WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDonorNotFound
		}
		return nil, fmt.Errorf("get donor: %w", err)
	}
	return d, nil
}

func (r *DonorRepository) Create(ctx context.Context, donor *domain.Donor) (*domain.Donor, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO donors (name, email, mobile_number, blood_type, profile_image, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`,
		donor.Name, donor.Email, donor.MobileNumber, donor.BloodType, donor.ProfileImage, donor.UserID,
	).Scan(&donor.ID, &donor.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert donor: %w", err)
	}
	return donor, nil
}

func (r *DonorRepository) Update(ctx context.Context, donor *domain.Donor) (*domain.Donor, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE donors
		SET name = $1, blood_type = $2, profile_image = $3
		WHERE id = $4
	`,
		donor.Name, donor.BloodType, donor.ProfileImage, donor.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update donor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDonorNotFound
	}
	return donor, nil
}

func (r *DonorRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM donors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete donor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDonorNotFound
	}
	return nil
}
