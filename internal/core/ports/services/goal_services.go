package services

import (
	"context"

	"github.com/floner-app/floner_backend/internal/core/domain"
	"github.com/floner-app/floner_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// GoalSvc defines operations on a user's savings goals. All operations
// require a plan with budget/goal access.
type GoalSvc interface {
	// CreateGoal adds a savings goal.
	CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error)

	// AddFunds increases a goal's current amount.
	AddFunds(ctx context.Context, userID string, goalID string, amount decimal.Decimal) (*domain.Goal, error)

	// ListGoals returns all goals with derived progress, days-left and
	// reminder fields.
	ListGoals(ctx context.Context, userID string) ([]domain.GoalStatus, error)
}
