package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/floner-app/floner_backend/internal/apperrors"
	"github.com/floner-app/floner_backend/internal/core/domain"
	portsrepo "github.com/floner-app/floner_backend/internal/core/ports/repositories"
	portssvc "github.com/floner-app/floner_backend/internal/core/ports/services"
	"github.com/floner-app/floner_backend/internal/dto"
	"github.com/floner-app/floner_backend/internal/utils/finmath"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// budgetService implements the BudgetSvc interface.
type budgetService struct {
	BaseService
	budgetRepo   portsrepo.BudgetRepository
	planResolver portssvc.PlanResolverSvc
}

// NewBudgetService creates a new budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepository, planResolver portssvc.PlanResolverSvc) portssvc.BudgetSvc {
	return &budgetService{
		budgetRepo:   budgetRepo,
		planResolver: planResolver,
	}
}

// Ensure budgetService implements the BudgetSvc interface
var _ portssvc.BudgetSvc = (*budgetService)(nil)

// CreateBudget adds a budget category with zero spend.
func (s *budgetService) CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.BudgetCategory, error) {
	budgets, err := s.loadBudgets(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.Budgeted.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: budgeted amount cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	budget := domain.BudgetCategory{
		BudgetID: uuid.NewString(),
		Category: req.Category,
		Icon:     req.Icon,
		Budgeted: req.Budgeted,
		Spent:    decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	budgets = append(budgets, budget)

	if err := s.budgetRepo.SaveBudgets(ctx, userID, budgets); err != nil {
		s.LogError(ctx, err, "Failed to save budgets", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget category created",
		slog.String("budget_id", budget.BudgetID),
		slog.String("category", budget.Category))
	return &budget, nil
}

// RecordSpend increases a category's spent amount. Spend only grows; there is
// no operation that lowers it.
func (s *budgetService) RecordSpend(ctx context.Context, userID string, budgetID string, amount decimal.Decimal) (*domain.BudgetCategory, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: spend amount must be positive", apperrors.ErrValidation)
	}

	budgets, err := s.loadBudgets(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range budgets {
		if budgets[i].BudgetID != budgetID {
			continue
		}
		budgets[i].Spent = budgets[i].Spent.Add(amount)
		budgets[i].LastUpdatedAt = time.Now()
		budgets[i].LastUpdatedBy = userID

		if err := s.budgetRepo.SaveBudgets(ctx, userID, budgets); err != nil {
			s.LogError(ctx, err, "Failed to save budgets after spend", slog.String("user_id", userID))
			return nil, err
		}
		return &budgets[i], nil
	}
	return nil, fmt.Errorf("%w: budget category %s", apperrors.ErrNotFound, budgetID)
}

// ListBudgets returns every category with derived utilization fields plus the
// aggregated overall position.
func (s *budgetService) ListBudgets(ctx context.Context, userID string) (*domain.BudgetOverview, error) {
	budgets, err := s.loadBudgets(ctx, userID)
	if err != nil {
		return nil, err
	}

	overview := domain.BudgetOverview{
		Categories:     make([]domain.BudgetCategoryStatus, 0, len(budgets)),
		TotalBudgeted:  decimal.Zero,
		TotalSpent:     decimal.Zero,
		TotalRemaining: decimal.Zero,
	}
	for _, budget := range budgets {
		utilization := finmath.Utilization(budget.Spent, budget.Budgeted)
		overview.Categories = append(overview.Categories, domain.BudgetCategoryStatus{
			BudgetCategory: budget,
			Remaining:      budget.Budgeted.Sub(budget.Spent),
			Utilization:    utilization,
			Band:           finmath.CategoryBudgetBand(utilization),
		})
		overview.TotalBudgeted = overview.TotalBudgeted.Add(budget.Budgeted)
		overview.TotalSpent = overview.TotalSpent.Add(budget.Spent)
	}
	overview.TotalRemaining = overview.TotalBudgeted.Sub(overview.TotalSpent)
	overview.OverallUtilization = finmath.Utilization(overview.TotalSpent, overview.TotalBudgeted)
	overview.Status = finmath.OverallBudgetStatus(overview.OverallUtilization)
	return &overview, nil
}

// loadBudgets gates on budget access, then loads the user's budget document.
// First access for a plan with budget rights seeds the demo categories and
// persists them so later reads see the same set.
func (s *budgetService) loadBudgets(ctx context.Context, userID string) ([]domain.BudgetCategory, error) {
	policy, err := s.planResolver.EffectivePolicy(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !policy.BudgetAccess {
		return nil, fmt.Errorf("%w: budgets require the pro plan or higher", apperrors.ErrForbidden)
	}

	budgets, err := s.budgetRepo.FindBudgets(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		budgets = demoBudgets(userID)
		if err := s.budgetRepo.SaveBudgets(ctx, userID, budgets); err != nil {
			s.LogError(ctx, err, "Failed to seed demo budgets", slog.String("user_id", userID))
			return nil, err
		}
		s.LogInfo(ctx, "Seeded demo budgets", slog.String("user_id", userID))
	}
	return budgets, nil
}

// demoBudgets is the starter set shown to a user who has never saved budgets.
func demoBudgets(userID string) []domain.BudgetCategory {
	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	seed := []struct {
		category string
		icon     string
		budgeted int64
		spent    int64
	}{
		{"Food & Dining", "🍽️", 8000, 5200},
		{"Transportation", "🚗", 3000, 2100},
		{"Entertainment", "🎬", 2000, 800},
		{"Shopping", "🛒", 5000, 3200},
		{"Utilities", "💡", 2500, 2200},
	}

	budgets := make([]domain.BudgetCategory, 0, len(seed))
	for _, row := range seed {
		budgets = append(budgets, domain.BudgetCategory{
			BudgetID:    uuid.NewString(),
			Category:    row.category,
			Icon:        row.icon,
			Budgeted:    decimal.NewFromInt(row.budgeted),
			Spent:       decimal.NewFromInt(row.spent),
			AuditFields: audit,
		})
	}
	return budgets
}
