package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/floner-app/floner_backend/internal/apperrors"
	"github.com/floner-app/floner_backend/internal/core/domain"
	"github.com/floner-app/floner_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure UserRepository implements repositories.UserRepository
var _ repositories.UserRepository = (*UserRepository)(nil)

const userColumns = `
        user_id, name, email, phone, password_hash, subscription_plan,
        connected_accounts, profile_image_url, subscription_expiry,
        created_at, created_by, last_updated_at, last_updated_by
`

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (
            user_id, name, email, phone, password_hash, subscription_plan,
            connected_accounts, profile_image_url, subscription_expiry,
            created_at, created_by, last_updated_at, last_updated_by
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := r.db.Exec(ctx, query,
		user.UserID,
		user.Name,
		user.Email,
		user.Phone,
		user.PasswordHash,
		string(user.SubscriptionPlan),
		user.ConnectedAccounts,
		user.ProfileImageURL,
		user.SubscriptionExpiry,
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE user_id = $1 AND deleted_at IS NULL;
    `
	return r.scanUser(r.db.QueryRow(ctx, query, userID))
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE email = $1 AND deleted_at IS NULL;
    `
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
        UPDATE users SET
            name = $2,
            phone = $3,
            subscription_plan = $4,
            connected_accounts = $5,
            profile_image_url = $6,
            subscription_expiry = $7,
            last_updated_at = $8,
            last_updated_by = $9
        WHERE user_id = $1 AND deleted_at IS NULL;
    `
	tag, err := r.db.Exec(ctx, query,
		user.UserID,
		user.Name,
		user.Phone,
		string(user.SubscriptionPlan),
		user.ConnectedAccounts,
		user.ProfileImageURL,
		user.SubscriptionExpiry,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error {
	query := `
        UPDATE users SET
            deleted_at = $2,
            last_updated_at = $2,
            last_updated_by = $1
        WHERE user_id = $1 AND deleted_at IS NULL;
    `
	tag, err := r.db.Exec(ctx, query, userID, deletedAt)
	if err != nil {
		return fmt.Errorf("failed to mark user deleted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var plan string
	err := row.Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
		&plan,
		&user.ConnectedAccounts,
		&user.ProfileImageURL,
		&user.SubscriptionExpiry,
		&user.CreatedAt,
		&user.CreatedBy,
		&user.LastUpdatedAt,
		&user.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	user.SubscriptionPlan = domain.SubscriptionPlan(plan)
	return &user, nil
}
