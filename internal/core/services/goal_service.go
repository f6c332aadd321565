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

// goalService implements the GoalSvc interface.
type goalService struct {
	BaseService
	goalRepo     portsrepo.GoalRepository
	planResolver portssvc.PlanResolverSvc
}

// NewGoalService creates a new goal service.
func NewGoalService(goalRepo portsrepo.GoalRepository, planResolver portssvc.PlanResolverSvc) portssvc.GoalSvc {
	return &goalService{
		goalRepo:     goalRepo,
		planResolver: planResolver,
	}
}

// Ensure goalService implements the GoalSvc interface
var _ portssvc.GoalSvc = (*goalService)(nil)

// CreateGoal adds a savings goal.
func (s *goalService) CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error) {
	goals, _, err := s.loadGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.Target.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: goal target must be positive", apperrors.ErrValidation)
	}
	deadline, err := time.Parse("2006-01-02", req.Deadline)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid deadline format, use YYYY-MM-DD", apperrors.ErrValidation)
	}

	now := time.Now()
	goal := domain.Goal{
		GoalID:   uuid.NewString(),
		Title:    req.Title,
		Icon:     req.Icon,
		Target:   req.Target,
		Current:  decimal.Zero,
		Deadline: deadline,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	goals = append(goals, goal)

	if err := s.goalRepo.SaveGoals(ctx, userID, goals); err != nil {
		s.LogError(ctx, err, "Failed to save goals", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Goal created",
		slog.String("goal_id", goal.GoalID),
		slog.String("title", goal.Title))
	return &goal, nil
}

// AddFunds increases a goal's current amount. No cap at the target; goals can
// be overfunded.
func (s *goalService) AddFunds(ctx context.Context, userID string, goalID string, amount decimal.Decimal) (*domain.Goal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	goals, _, err := s.loadGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range goals {
		if goals[i].GoalID != goalID {
			continue
		}
		goals[i].Current = goals[i].Current.Add(amount)
		goals[i].LastUpdatedAt = time.Now()
		goals[i].LastUpdatedBy = userID

		if err := s.goalRepo.SaveGoals(ctx, userID, goals); err != nil {
			s.LogError(ctx, err, "Failed to save goals after adding funds", slog.String("user_id", userID))
			return nil, err
		}
		return &goals[i], nil
	}
	return nil, fmt.Errorf("%w: goal %s", apperrors.ErrNotFound, goalID)
}

// ListGoals returns every goal with derived progress and deadline fields.
func (s *goalService) ListGoals(ctx context.Context, userID string) ([]domain.GoalStatus, error) {
	goals, plan, err := s.loadGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	statuses := make([]domain.GoalStatus, 0, len(goals))
	for _, goal := range goals {
		daysLeft := finmath.DaysLeft(goal.Deadline, now)
		statuses = append(statuses, domain.GoalStatus{
			Goal:           goal,
			Progress:       finmath.GoalProgress(goal.Current, goal.Target),
			Remaining:      goal.Target.Sub(goal.Current),
			DaysLeft:       daysLeft,
			DeadlinePassed: daysLeft <= 0,
			RemindDeadline: finmath.ShouldRemindDeadline(plan, daysLeft),
		})
	}
	return statuses, nil
}

// loadGoals gates on plan access, then loads the user's goal document, seeding
// the demo goals on first access.
func (s *goalService) loadGoals(ctx context.Context, userID string) ([]domain.Goal, domain.SubscriptionPlan, error) {
	policy, err := s.planResolver.EffectivePolicy(ctx, userID)
	if err != nil {
		return nil, domain.PlanFree, err
	}
	if !policy.BudgetAccess {
		return nil, policy.Plan, fmt.Errorf("%w: goals require the pro plan or higher", apperrors.ErrForbidden)
	}

	goals, err := s.goalRepo.FindGoals(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, policy.Plan, err
		}
		goals = demoGoals(userID)
		if err := s.goalRepo.SaveGoals(ctx, userID, goals); err != nil {
			s.LogError(ctx, err, "Failed to seed demo goals", slog.String("user_id", userID))
			return nil, policy.Plan, err
		}
		s.LogInfo(ctx, "Seeded demo goals", slog.String("user_id", userID))
	}
	return goals, policy.Plan, nil
}

// demoGoals is the starter set shown to a user who has never saved goals.
func demoGoals(userID string) []domain.Goal {
	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	seed := []struct {
		title    string
		icon     string
		target   int64
		current  int64
		deadline time.Time
	}{
		{"Emergency Fund", "🏦", 100000, 35000, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{"Vacation to Goa", "🏖️", 25000, 12000, time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC)},
		{"New Laptop", "💻", 80000, 45000, time.Date(2024, time.September, 30, 0, 0, 0, 0, time.UTC)},
	}

	goals := make([]domain.Goal, 0, len(seed))
	for _, row := range seed {
		goals = append(goals, domain.Goal{
			GoalID:      uuid.NewString(),
			Title:       row.title,
			Icon:        row.icon,
			Target:      decimal.NewFromInt(row.target),
			Current:     decimal.NewFromInt(row.current),
			Deadline:    row.deadline,
			AuditFields: audit,
		})
	}
	return goals
}
