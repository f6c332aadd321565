package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/floner-app/floner_backend/internal/apperrors"
	"github.com/floner-app/floner_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StateRepository implements the StateStore port over an app_state key-value
// table. State values are opaque serialized JSON documents.
type StateRepository struct {
	db *pgxpool.Pool
}

func NewStateRepository(db *pgxpool.Pool) *StateRepository {
	return &StateRepository{db: db}
}

// Ensure StateRepository implements repositories.StateStore
var _ repositories.StateStore = (*StateRepository)(nil)

func (r *StateRepository) Load(ctx context.Context, key string) ([]byte, error) {
	query := `
        SELECT state_value
        FROM app_state
        WHERE state_key = $1;
    `
	var value []byte
	err := r.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load state for key %s: %w", key, err)
	}
	return value, nil
}

func (r *StateRepository) Save(ctx context.Context, key string, value []byte) error {
	query := `
        INSERT INTO app_state (state_key, state_value, updated_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (state_key) DO UPDATE SET
            state_value = EXCLUDED.state_value,
            updated_at = EXCLUDED.updated_at;
    `
	_, err := r.db.Exec(ctx, query, key, value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save state for key %s: %w", key, err)
	}
	return nil
}

func (r *StateRepository) Delete(ctx context.Context, key string) error {
	query := `
        DELETE FROM app_state
        WHERE state_key = $1;
    `
	_, err := r.db.Exec(ctx, query, key)
	if err != nil {
		return fmt.Errorf("failed to delete state for key %s: %w", key, err)
	}
	return nil
}
