package statestore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/floner-app/floner_backend/internal/core/domain"
	"github.com/floner-app/floner_backend/internal/core/ports/repositories"
)

// BudgetRepository stores each user's budget categories as one state document.
type BudgetRepository struct {
	store repositories.StateStore
}

func NewBudgetRepository(store repositories.StateStore) *BudgetRepository {
	return &BudgetRepository{store: store}
}

// Ensure BudgetRepository implements repositories.BudgetRepository
var _ repositories.BudgetRepository = (*BudgetRepository)(nil)

func budgetsKey(userID string) string {
	return "budgets:" + userID
}

func (r *BudgetRepository) FindBudgets(ctx context.Context, userID string) ([]domain.BudgetCategory, error) {
	raw, err := r.store.Load(ctx, budgetsKey(userID))
	if err != nil {
		return nil, err
	}
	var budgets []domain.BudgetCategory
	if err := json.Unmarshal(raw, &budgets); err != nil {
		return nil, fmt.Errorf("failed to decode budgets document: %w", err)
	}
	return budgets, nil
}

func (r *BudgetRepository) SaveBudgets(ctx context.Context, userID string, budgets []domain.BudgetCategory) error {
	raw, err := json.Marshal(budgets)
	if err != nil {
		return fmt.Errorf("failed to encode budgets document: %w", err)
	}
	return r.store.Save(ctx, budgetsKey(userID), raw)
}

func (r *BudgetRepository) DeleteBudgets(ctx context.Context, userID string) error {
	return r.store.Delete(ctx, budgetsKey(userID))
}
