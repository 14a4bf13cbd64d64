package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/raktasangham/bloodbank-api/internal/core/domain"
)

// CatalogRepository serves the province and blood-type reference tables.
type CatalogRepository struct {
	db DB
}

func NewCatalogRepository(db DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListProvinces(ctx context.Context) ([]domain.Province, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM provinces ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list provinces: %w", err)
	}
	defer rows.Close()

	provinces := make([]domain.Province, 0)
	for rows.Next() {
		var p domain.Province
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan province: %w", err)
		}
		provinces = append(provinces, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list provinces: %w", err)
	}
	return provinces, nil
}

func (r *CatalogRepository) GetProvince(ctx context.Context, id int64) (*domain.Province, error) {
	var p domain.Province
	err := r.db.QueryRow(ctx, `SELECT id, name FROM provinces WHERE id = $1`, id).Scan(&p.ID, &p.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProvinceNotFound
		}
		return nil, fmt.Errorf("get province: %w", err)
	}
	return &p, nil
}

func (r *CatalogRepository) ListBloodTypes(ctx context.Context) ([]domain.BloodType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM bloodtypes ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list blood types: %w", err)
	}
	defer rows.Close()

	types := make([]domain.BloodType, 0)
	for rows.Next() {
		var bt domain.BloodType
		if err := rows.Scan(&bt.ID, &bt.Name); err != nil {
			return nil, fmt.Errorf("scan blood type: %w", err)
		}
		types = append(types, bt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list blood types: %w", err)
	}
	return types, nil
}

func (r *CatalogRepository) CreateBloodType(ctx context.Context, name string) (*domain.BloodType, error) {
	bt := domain.BloodType{Name: name}
	err := r.db.QueryRow(ctx, `INSERT INTO bloodtypes (name) VALUES ($1) RETURNING id`, name).Scan(&bt.ID)
	if err != nil {
		return nil, fmt.Errorf("insert blood type: %w", err)
	}
	return &bt, nil
}
