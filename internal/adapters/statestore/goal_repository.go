package statestore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/floner-app/floner_backend/internal/core/domain"
	"github.com/floner-app/floner_backend/internal/core/ports/repositories"
)

// GoalRepository stores each user's savings goals as one state document.
type GoalRepository struct {
	store repositories.StateStore
}

func NewGoalRepository(store repositories.StateStore) *GoalRepository {
	return &GoalRepository{store: store}
}

// Ensure GoalRepository implements repositories.GoalRepository
var _ repositories.GoalRepository = (*GoalRepository)(nil)

func goalsKey(userID string) string {
	return "goals:" + userID
}

func (r *GoalRepository) FindGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	raw, err := r.store.Load(ctx, goalsKey(userID))
	if err != nil {
		return nil, err
	}
	var goals []domain.Goal
	if err := json.Unmarshal(raw, &goals); err != nil {
		return nil, fmt.Errorf("failed to decode goals document: %w", err)
	}
	return goals, nil
}

func (r *GoalRepository) SaveGoals(ctx context.Context, userID string, goals []domain.Goal) error {
	raw, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("failed to encode goals document: %w", err)
	}
	return r.store.Save(ctx, goalsKey(userID), raw)
}

func (r *GoalRepository) DeleteGoals(ctx context.Context, userID string) error {
	return r.store.Delete(ctx, goalsKey(userID))
}
