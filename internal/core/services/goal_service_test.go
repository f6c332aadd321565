package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/floner-app/floner_backend/internal/apperrors"
	"github.com/floner-app/floner_backend/internal/core/domain"
	portssvc "github.com/floner-app/floner_backend/internal/core/ports/services"
	"github.com/floner-app/floner_backend/internal/core/services"
	"github.com/floner-app/floner_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock GoalRepository ---
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) FindGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	args := m.Called(ctx, userID)
	var goals []domain.Goal
	if args.Get(0) != nil {
		goals = args.Get(0).([]domain.Goal)
	}
	return goals, args.Error(1)
}

func (m *MockGoalRepository) SaveGoals(ctx context.Context, userID string, goals []domain.Goal) error {
	args := m.Called(ctx, userID, goals)
	return args.Error(0)
}

func (m *MockGoalRepository) DeleteGoals(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test Suite ---
type GoalServiceTestSuite struct {
	suite.Suite
	mockGoalRepo     *MockGoalRepository
	mockPlanResolver *MockPlanResolver
	service          portssvc.GoalSvc
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.mockGoalRepo = new(MockGoalRepository)
	suite.mockPlanResolver = new(MockPlanResolver)
	suite.service = services.NewGoalService(suite.mockGoalRepo, suite.mockPlanResolver)
}

func (suite *GoalServiceTestSuite) expectPlan(userID string, plan domain.SubscriptionPlan) {
	suite.mockPlanResolver.On("EffectivePolicy", mock.Anything, userID).
		Return(domain.PolicyFor(plan), nil)
}

func goal(id string, target, current int64, deadline time.Time) domain.Goal {
	return domain.Goal{
		GoalID:   id,
		Title:    "Goal " + id,
		Target:   decimal.NewFromInt(target),
		Current:  decimal.NewFromInt(current),
		Deadline: deadline,
	}
}

func (suite *GoalServiceTestSuite) TestListGoals_FreePlanForbidden() {
	suite.expectPlan("free-user", domain.PlanFree)

	_, err := suite.service.ListGoals(context.Background(), "free-user")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "FindGoals", mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestListGoals_FirstAccessSeedsDemoSet() {
	ctx := context.Background()
	userID := "pro-user"

	suite.expectPlan(userID, domain.PlanPro)
	suite.mockGoalRepo.On("FindGoals", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockGoalRepo.On("SaveGoals", ctx, userID, mock.MatchedBy(func(goals []domain.Goal) bool {
		return len(goals) == 3 && goals[0].Title == "Emergency Fund"
	})).Return(nil).Once()

	statuses, err := suite.service.ListGoals(ctx, userID)

	suite.Require().NoError(err)
	suite.Len(statuses, 3)
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestListGoals_DerivesProgressAndDeadlines() {
	ctx := context.Background()
	userID := "ultra-user"
	now := time.Now()
	goals := []domain.Goal{
		goal("soon", 1000, 350, now.Add(10*24*time.Hour)),
		goal("far", 1000, 1200, now.Add(45*24*time.Hour)),
		goal("past", 1000, 100, now.Add(-5*24*time.Hour)),
	}

	suite.expectPlan(userID, domain.PlanUltra)
	suite.mockGoalRepo.On("FindGoals", ctx, userID).Return(goals, nil).Once()

	statuses, err := suite.service.ListGoals(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().Len(statuses, 3)

	soon := statuses[0]
	suite.True(soon.Progress.Equal(decimal.NewFromInt(35)))
	suite.True(soon.Remaining.Equal(decimal.NewFromInt(650)))
	suite.True(soon.RemindDeadline, "ultra plan inside the 30 day window")
	suite.False(soon.DeadlinePassed)

	far := statuses[1]
	suite.True(far.Progress.GreaterThan(decimal.NewFromInt(100)), "overfunded goal exceeds 100")
	suite.False(far.RemindDeadline, "outside the 30 day window")

	past := statuses[2]
	suite.True(past.DeadlinePassed)
	suite.False(past.RemindDeadline, "passed deadline never reminds")
}

func (suite *GoalServiceTestSuite) TestListGoals_ProPlanNeverReminds() {
	ctx := context.Background()
	userID := "pro-user"
	goals := []domain.Goal{goal("soon", 1000, 350, time.Now().Add(10*24*time.Hour))}

	suite.expectPlan(userID, domain.PlanPro)
	suite.mockGoalRepo.On("FindGoals", ctx, userID).Return(goals, nil).Once()

	statuses, err := suite.service.ListGoals(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().Len(statuses, 1)
	suite.False(statuses[0].RemindDeadline, "deadline reminders are an ultra feature")
}

func (suite *GoalServiceTestSuite) TestCreateGoal_RejectsNonPositiveTarget() {
	ctx := context.Background()
	userID := "pro-user"

	suite.expectPlan(userID, domain.PlanPro)
	suite.mockGoalRepo.On("FindGoals", ctx, userID).
		Return([]domain.Goal{}, nil).Once()

	_, err := suite.service.CreateGoal(ctx, userID, dto.CreateGoalRequest{
		Title:    "Empty",
		Target:   decimal.Zero,
		Deadline: "2027-01-01",
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *GoalServiceTestSuite) TestAddFunds_Accumulates() {
	ctx := context.Background()
	userID := "pro-user"

	suite.expectPlan(userID, domain.PlanPro)
	suite.mockGoalRepo.On("FindGoals", ctx, userID).
		Return([]domain.Goal{goal("g1", 1000, 600, time.Now().Add(60*24*time.Hour))}, nil).Once()
	suite.mockGoalRepo.On("SaveGoals", ctx, userID, mock.MatchedBy(func(goals []domain.Goal) bool {
		return goals[0].Current.Equal(decimal.NewFromInt(1100))
	})).Return(nil).Once()

	updated, err := suite.service.AddFunds(ctx, userID, "g1", decimal.NewFromInt(500))

	suite.Require().NoError(err)
	suite.True(updated.Current.Equal(decimal.NewFromInt(1100)), "funds can exceed the target")
}

func (suite *GoalServiceTestSuite) TestAddFunds_UnknownGoal() {
	ctx := context.Background()
	userID := "pro-user"

	suite.expectPlan(userID, domain.PlanPro)
	suite.mockGoalRepo.On("FindGoals", ctx, userID).
		Return([]domain.Goal{}, nil).Once()

	_, err := suite.service.AddFunds(ctx, userID, "missing", decimal.NewFromInt(10))

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
