package services_test

import (
	"context"
	"testing"

	"github.com/floner-app/floner_backend/internal/apperrors"
	"github.com/floner-app/floner_backend/internal/core/domain"
	portssvc "github.com/floner-app/floner_backend/internal/core/ports/services"
	"github.com/floner-app/floner_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TaxServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo   *MockLedgerRepository
	mockPlanResolver *MockPlanResolver
	service          portssvc.TaxSvc
}

func (suite *TaxServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockPlanResolver = new(MockPlanResolver)
	suite.service = services.NewTaxService(suite.mockLedgerRepo, suite.mockPlanResolver)
}

func (suite *TaxServiceTestSuite) expectPlan(userID string, plan domain.SubscriptionPlan) {
	suite.mockPlanResolver.On("EffectivePolicy", mock.Anything, userID).
		Return(domain.PolicyFor(plan), nil)
}

func (suite *TaxServiceTestSuite) TestCalculate_FreePlanForbidden() {
	suite.expectPlan("free-user", domain.PlanFree)

	_, err := suite.service.Calculate(context.Background(), "free-user", domain.TaxInput{
		GrossIncome: decimal.NewFromInt(1_300_000),
		Age:         domain.AgeBelow60,
	})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TaxServiceTestSuite) TestCalculate_ProPlanGetsBreakdown() {
	suite.expectPlan("pro-user", domain.PlanPro)

	result, err := suite.service.Calculate(context.Background(), "pro-user", domain.TaxInput{
		GrossIncome: decimal.NewFromInt(1_300_000),
		Age:         domain.AgeBelow60,
	})

	suite.Require().NoError(err)
	suite.True(result.TotalTax.Equal(decimal.NewFromInt(195_000)), "total tax was %s", result.TotalTax)
}

func (suite *TaxServiceTestSuite) TestCalculate_RejectsUnknownAgeBand() {
	suite.expectPlan("pro-user", domain.PlanPro)

	_, err := suite.service.Calculate(context.Background(), "pro-user", domain.TaxInput{
		GrossIncome: decimal.NewFromInt(1_000_000),
		Age:         domain.AgeBand("ageless"),
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TaxServiceTestSuite) TestPrefillAnnualIncome_AnnualizesLedgerIncome() {
	ctx := context.Background()
	userID := "pro-user"
	ledger := &domain.Ledger{
		Transactions: []domain.Transaction{
			{Amount: decimal.NewFromInt(75_000), Category: domain.CategorySalary, Kind: domain.Income},
			{Amount: decimal.NewFromInt(20_000), Category: domain.CategoryFood, Kind: domain.Expense},
		},
	}

	suite.expectPlan(userID, domain.PlanPro)
	suite.mockLedgerRepo.On("FindLedger", ctx, userID).Return(ledger, nil).Once()

	income, err := suite.service.PrefillAnnualIncome(ctx, userID)

	suite.Require().NoError(err)
	suite.True(income.Equal(decimal.NewFromInt(900_000)), "income was %s", income)
}

func (suite *TaxServiceTestSuite) TestPrefillAnnualIncome_EmptyLedger() {
	ctx := context.Background()
	userID := "pro-user"

	suite.expectPlan(userID, domain.PlanPro)
	suite.mockLedgerRepo.On("FindLedger", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	income, err := suite.service.PrefillAnnualIncome(ctx, userID)

	suite.Require().NoError(err)
	suite.True(income.IsZero())
}

func TestTaxServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaxServiceTestSuite))
}
