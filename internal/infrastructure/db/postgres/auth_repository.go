package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/raktasangham/bloodbank-api/internal/core/domain"
)

// AuthRepository persists identity records.
type AuthRepository struct {
	db DB
}

func NewAuthRepository(db DB) *AuthRepository {
	return &AuthRepository{db: db}
}

// Create inserts the user and its seed donor row in one transaction. The
// unique index on users(email) is the authoritative duplicate guarantee;
// its violation surfaces as domain.ErrDuplicateEmail.
func (r *AuthRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, phone, role_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`,
		user.Name, user.Email, user.PasswordHash, user.Phone, int64(user.RoleID),
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO donors (name, email, mobile_number, user_id)
		VALUES ($1, $2, $3, $4)
	`,
		user.Name, user.Email, user.Phone, user.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert donor: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return user, nil
}

// FindByEmail matches the email exactly as stored.
func (r *AuthRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var (
		user   domain.User
		roleID int64
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, password_hash, phone, role_id, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Phone, &roleID, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	user.RoleID = domain.Role(roleID)
	return &user, nil
}

// GetProfile joins the user with its donor row and role name.
func (r *AuthRepository) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	var (
		p            domain.Profile
		roleID       int64
		roleName     *string
		donorID      *int64
		bloodType    *string
		mobileNumber *string
		profileImage *string
	)
	err := r.db.QueryRow(ctx, `
		SELECT u.id, u.name, u.email, u.phone, u.role_id, u.created_at,
		       r.name, d.id, d.blood_type, d.mobile_number, d.profile_image
		FROM users u
		LEFT JOIN donors d ON d.user_id = u.id
		LEFT JOIN roles r ON r.id = u.role_id
		WHERE u.id = $1
	`, userID).Scan(
		&p.ID, &p.Name, &p.Email, &p.Phone, &roleID, &p.CreatedAt,
		&roleName, &donorID, &bloodType, &mobileNumber, &profileImage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	p.RoleID = domain.Role(roleID)
	if roleName != nil {
		p.RoleName = *roleName
	}
	p.DonorID = donorID
	if bloodType != nil {
		p.BloodType = *bloodType
	}
	if mobileNumber != nil {
		p.MobileNumber = *mobileNumber
	}
	if profileImage != nil {
		p.ProfileImage = *profileImage
	}
	return &p, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
