package services_test

import (
	"context"
	"testing"

	"github.com/floner-app/floner_backend/internal/apperrors"
	"github.com/floner-app/floner_backend/internal/core/domain"
	portssvc "github.com/floner-app/floner_backend/internal/core/ports/services"
	"github.com/floner-app/floner_backend/internal/core/services"
	"github.com/floner-app/floner_backend/internal/utils/finmath"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	service        portssvc.ReportingSvc
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewReportingService(suite.mockLedgerRepo)
}

func (suite *ReportingServiceTestSuite) TestSummary() {
	ctx := context.Background()
	userID := "user-1"
	ledger := &domain.Ledger{
		OpeningBalance: decimal.NewFromInt(50000),
		Transactions: []domain.Transaction{
			{Amount: decimal.NewFromInt(1000), Category: domain.CategorySalary, Kind: domain.Income},
			{Amount: decimal.NewFromInt(400), Category: domain.CategoryFood, Kind: domain.Expense},
		},
	}

	suite.mockLedgerRepo.On("FindLedger", ctx, userID).Return(ledger, nil).Once()

	summary, err := suite.service.Summary(ctx, userID)

	suite.Require().NoError(err)
	suite.True(summary.MonthlyIncome.Equal(decimal.NewFromInt(1000)))
	suite.True(summary.MonthlyExpense.Equal(decimal.NewFromInt(400)))
	suite.True(summary.Balance.Equal(decimal.NewFromInt(50600)))
	suite.True(summary.SavingsRate.Equal(decimal.NewFromInt(60)))
	suite.Equal(100, summary.HealthScore, "50 + 60 savings rate clamps to 100")
	suite.Equal(finmath.HealthBandExcellent, summary.HealthBand)
	suite.True(summary.CategoryTotals[domain.CategoryFood].Expense.Equal(decimal.NewFromInt(400)))
}

func (suite *ReportingServiceTestSuite) TestSummary_IsStableAcrossCalls() {
	ctx := context.Background()
	userID := "user-1"
	ledger := &domain.Ledger{
		OpeningBalance: decimal.NewFromInt(50000),
		Transactions: []domain.Transaction{
			{Amount: decimal.NewFromInt(900), Category: domain.CategorySalary, Kind: domain.Income},
			{Amount: decimal.NewFromInt(300), Category: domain.CategoryBills, Kind: domain.Expense},
		},
	}

	suite.mockLedgerRepo.On("FindLedger", ctx, userID).Return(ledger, nil).Twice()

	first, err := suite.service.Summary(ctx, userID)
	suite.Require().NoError(err)
	second, err := suite.service.Summary(ctx, userID)
	suite.Require().NoError(err)

	suite.Equal(first.HealthScore, second.HealthScore)
	suite.True(first.Balance.Equal(second.Balance))
	suite.True(first.SavingsRate.Equal(second.SavingsRate))
}

func (suite *ReportingServiceTestSuite) TestSummary_NewUserGetsOpeningBalance() {
	ctx := context.Background()
	userID := "new-user"

	suite.mockLedgerRepo.On("FindLedger", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	summary, err := suite.service.Summary(ctx, userID)

	suite.Require().NoError(err)
	suite.True(summary.Balance.Equal(decimal.NewFromInt(50000)))
	suite.Equal(50, summary.HealthScore, "empty ledger scores break-even")
	suite.True(summary.SavingsRate.IsZero())
}

func (suite *ReportingServiceTestSuite) TestTopExpenseCategories() {
	ctx := context.Background()
	userID := "user-1"
	ledger := &domain.Ledger{
		Transactions: []domain.Transaction{
			{Amount: decimal.NewFromInt(100), Category: domain.CategoryFood, Kind: domain.Expense},
			{Amount: decimal.NewFromInt(250), Category: domain.CategoryShopping, Kind: domain.Expense},
			{Amount: decimal.NewFromInt(5000), Category: domain.CategorySalary, Kind: domain.Income},
		},
	}

	suite.mockLedgerRepo.On("FindLedger", ctx, userID).Return(ledger, nil).Once()

	ranking, err := suite.service.TopExpenseCategories(ctx, userID, 5)

	suite.Require().NoError(err)
	suite.Require().Len(ranking, 2)
	suite.Equal(domain.CategoryShopping, ranking[0].Category)
	suite.Equal(domain.CategoryFood, ranking[1].Category)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
