package repositories

import (
	"context"

	"github.com/floner-app/floner_backend/internal/core/domain"
)

// GoalReader defines read operations for a user's savings goals.
type GoalReader interface {
	// FindGoals retrieves all goals for a user.
	// Returns apperrors.ErrNotFound when the user has no goals yet.
	FindGoals(ctx context.Context, userID string) ([]domain.Goal, error)
}

// GoalWriter defines write operations for a user's savings goals.
type GoalWriter interface {
	// SaveGoals persists the full goal list for a user.
	SaveGoals(ctx context.Context, userID string, goals []domain.Goal) error

	// DeleteGoals removes the user's goal list entirely.
	DeleteGoals(ctx context.Context, userID string) error
}

// GoalRepository combines goal read and write operations.
type GoalRepository interface {
	GoalReader
	GoalWriter
}
