package services

import (
	"context"

	"github.com/floner-app/floner_backend/internal/core/domain"
	"github.com/floner-app/floner_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// BudgetSvc defines operations on a user's budget categories. All operations
// require a plan with budget access.
type BudgetSvc interface {
	// CreateBudget adds a budget category.
	CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.BudgetCategory, error)

	// RecordSpend increases a category's spent amount. Spent only ever
	// grows through this operation.
	RecordSpend(ctx context.Context, userID string, budgetID string, amount decimal.Decimal) (*domain.BudgetCategory, error)

	// ListBudgets returns all categories with derived utilization fields
	// plus the overall budget position.
	ListBudgets(ctx context.Context, userID string) (*domain.BudgetOverview, error)
}
