package repositories

import (
	"context"

	"github.com/floner-app/floner_backend/internal/core/domain"
)

// BudgetReader defines read operations for a user's budget categories.
type BudgetReader interface {
	// FindBudgets retrieves all budget categories for a user.
	// Returns apperrors.ErrNotFound when the user has no budgets yet.
	FindBudgets(ctx context.Context, userID string) ([]domain.BudgetCategory, error)
}

// BudgetWriter defines write operations for a user's budget categories.
type BudgetWriter interface {
	// SaveBudgets persists the full budget list for a user.
	SaveBudgets(ctx context.Context, userID string, budgets []domain.BudgetCategory) error

	// DeleteBudgets removes the user's budget list entirely.
	DeleteBudgets(ctx context.Context, userID string) error
}

// BudgetRepository combines budget read and write operations.
type BudgetRepository interface {
	BudgetReader
	BudgetWriter
}
