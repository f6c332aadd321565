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
	"github.com/floner-app/floner_backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error {
	args := m.Called(ctx, userID, deletedAt)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo   *MockUserRepository
	mockLedgerRepo *MockLedgerRepository
	mockBudgetRepo *MockBudgetRepository
	mockGoalRepo   *MockGoalRepository
	service        portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockGoalRepo = new(MockGoalRepository)
	suite.service = services.NewUserService(
		suite.mockUserRepo,
		suite.mockLedgerRepo,
		suite.mockBudgetRepo,
		suite.mockGoalRepo,
	)
}

func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "password123",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == req.Email &&
			user.SubscriptionPlan == domain.PlanFree &&
			user.PasswordHash != req.Password
	})).Return(nil).Once()
	suite.mockLedgerRepo.On("SaveLedger", ctx, mock.Anything, mock.MatchedBy(func(ledger domain.Ledger) bool {
		return ledger.OpeningBalance.Equal(decimal.NewFromInt(50000)) && len(ledger.Transactions) == 0
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.Equal(domain.PlanFree, user.SubscriptionPlan)
	suite.Nil(user.SubscriptionExpiry)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u1", Email: "asha@example.com"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, existing.Email).Return(existing, nil).Once()

	_, err := suite.service.Register(ctx, dto.RegisterUserRequest{
		Name:     "Asha",
		Email:    existing.Email,
		Password: "password123",
	})

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	user := &domain.User{UserID: "u1", Email: "asha@example.com", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	authenticated, err := suite.service.Authenticate(ctx, user.Email, "password123")

	suite.Require().NoError(err)
	suite.Equal("u1", authenticated.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	user := &domain.User{UserID: "u1", Email: "asha@example.com", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	_, err = suite.service.Authenticate(ctx, user.Email, "wrong-password")

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Authenticate(ctx, "nobody@example.com", "password123")

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized, "unknown email must not leak through the error")
}

func (suite *UserServiceTestSuite) TestGetUserByID_ExpiredPlanDowngradesOnce() {
	ctx := context.Background()
	expired := time.Now().Add(-24 * time.Hour)
	user := &domain.User{
		UserID:             "u1",
		SubscriptionPlan:   domain.PlanUltra,
		SubscriptionExpiry: &expired,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, "u1").Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(updated domain.User) bool {
		return updated.SubscriptionPlan == domain.PlanFree && updated.SubscriptionExpiry == nil
	})).Return(nil).Once()

	fetched, err := suite.service.GetUserByID(ctx, "u1")

	suite.Require().NoError(err)
	suite.Equal(domain.PlanFree, fetched.SubscriptionPlan)
	suite.Nil(fetched.SubscriptionExpiry)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID_ActivePaidPlanUntouched() {
	ctx := context.Background()
	future := time.Now().Add(10 * 24 * time.Hour)
	user := &domain.User{
		UserID:             "u1",
		SubscriptionPlan:   domain.PlanPro,
		SubscriptionExpiry: &future,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, "u1").Return(user, nil).Once()

	fetched, err := suite.service.GetUserByID(ctx, "u1")

	suite.Require().NoError(err)
	suite.Equal(domain.PlanPro, fetched.SubscriptionPlan)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestEffectivePolicy() {
	ctx := context.Background()
	user := &domain.User{UserID: "u1", SubscriptionPlan: domain.PlanFree}

	suite.mockUserRepo.On("FindUserByID", ctx, "u1").Return(user, nil).Once()

	policy, err := suite.service.EffectivePolicy(ctx, "u1")

	suite.Require().NoError(err)
	suite.Equal(domain.PlanFree, policy.Plan)
	suite.Equal(7, policy.HistoryWindow)
	suite.False(policy.TaxAccess)
}

func (suite *UserServiceTestSuite) TestUpgrade_SetsPlanAndExpiry() {
	ctx := context.Background()
	user := &domain.User{UserID: "u1", SubscriptionPlan: domain.PlanFree}

	suite.mockUserRepo.On("FindUserByID", ctx, "u1").Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(updated domain.User) bool {
		return updated.SubscriptionPlan == domain.PlanUltra &&
			updated.SubscriptionExpiry != nil &&
			updated.SubscriptionExpiry.After(time.Now().Add(29*24*time.Hour))
	})).Return(nil).Once()

	upgraded, discount, err := suite.service.Upgrade(ctx, "u1", dto.UpgradeSubscriptionRequest{
		Plan: domain.PlanUltra,
	})

	suite.Require().NoError(err)
	suite.Equal(domain.PlanUltra, upgraded.SubscriptionPlan)
	suite.Equal(0, discount)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpgrade_RejectsInvalidPromoCode() {
	ctx := context.Background()
	user := &domain.User{UserID: "u1", SubscriptionPlan: domain.PlanFree}

	suite.mockUserRepo.On("FindUserByID", ctx, "u1").Return(user, nil).Once()

	_, _, err := suite.service.Upgrade(ctx, "u1", dto.UpgradeSubscriptionRequest{
		Plan:      domain.PlanPro,
		PromoCode: "NOTACODE",
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_ClearsStateDocuments() {
	ctx := context.Background()

	suite.mockUserRepo.On("MarkUserDeleted", ctx, "u1", mock.Anything).Return(nil).Once()
	suite.mockLedgerRepo.On("DeleteLedger", ctx, "u1").Return(nil).Once()
	suite.mockBudgetRepo.On("DeleteBudgets", ctx, "u1").Return(nil).Once()
	suite.mockGoalRepo.On("DeleteGoals", ctx, "u1").Return(nil).Once()

	err := suite.service.DeleteUser(ctx, "u1")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockBudgetRepo.AssertExpectations(suite.T())
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
