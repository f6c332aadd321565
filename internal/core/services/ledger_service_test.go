package services_test

import (
	"context"
	"fmt"
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

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindLedger(ctx context.Context, userID string) (*domain.Ledger, error) {
	args := m.Called(ctx, userID)
	var ledger *domain.Ledger
	if args.Get(0) != nil {
		ledger = args.Get(0).(*domain.Ledger)
	}
	return ledger, args.Error(1)
}

func (m *MockLedgerRepository) SaveLedger(ctx context.Context, userID string, ledger domain.Ledger) error {
	args := m.Called(ctx, userID, ledger)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteLedger(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock PlanResolver ---
type MockPlanResolver struct {
	mock.Mock
}

func (m *MockPlanResolver) EffectivePlan(ctx context.Context, userID string) (domain.SubscriptionPlan, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.SubscriptionPlan), args.Error(1)
}

func (m *MockPlanResolver) EffectivePolicy(ctx context.Context, userID string) (domain.PlanPolicy, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.PlanPolicy), args.Error(1)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo   *MockLedgerRepository
	mockPlanResolver *MockPlanResolver
	service          portssvc.LedgerSvc
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockPlanResolver = new(MockPlanResolver)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo, suite.mockPlanResolver)
}

func (suite *LedgerServiceTestSuite) expectPlan(userID string, plan domain.SubscriptionPlan) {
	suite.mockPlanResolver.On("EffectivePolicy", mock.Anything, userID).
		Return(domain.PolicyFor(plan), nil)
}

func expenseTxn(date string, amount int64, description string) domain.Transaction {
	parsed, _ := time.Parse("2006-01-02", date)
	return domain.Transaction{
		TransactionID: "txn-" + date + "-" + description,
		Amount:        decimal.NewFromInt(amount),
		Description:   description,
		Category:      domain.CategoryFood,
		Kind:          domain.Expense,
		Date:          parsed,
	}
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_Success() {
	ctx := context.Background()
	userID := "user-1"

	suite.mockLedgerRepo.On("FindLedger", ctx, userID).
		Return(&domain.Ledger{OpeningBalance: decimal.NewFromInt(50000)}, nil).Once()
	suite.mockLedgerRepo.On("SaveLedger", ctx, userID, mock.MatchedBy(func(ledger domain.Ledger) bool {
		return len(ledger.Transactions) == 1 && ledger.Transactions[0].Description == "groceries"
	})).Return(nil).Once()

	txn, err := suite.service.AddTransaction(ctx, userID, dto.CreateTransactionRequest{
		Amount:      decimal.NewFromInt(450),
		Description: "groceries",
		Category:    domain.CategoryFood,
		Kind:        domain.Expense,
		Date:        "2024-06-10",
		Account:     "HDFC Savings",
	})

	suite.Require().NoError(err)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(domain.Expense, txn.Kind)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_PrependsNewest() {
	ctx := context.Background()
	userID := "user-1"
	existing := expenseTxn("2024-06-01", 100, "older")

	suite.mockLedgerRepo.On("FindLedger", ctx, userID).
		Return(&domain.Ledger{Transactions: []domain.Transaction{existing}}, nil).Once()
	suite.mockLedgerRepo.On("SaveLedger", ctx, userID, mock.MatchedBy(func(ledger domain.Ledger) bool {
		return len(ledger.Transactions) == 2 && ledger.Transactions[0].Description == "newer"
	})).Return(nil).Once()

	_, err := suite.service.AddTransaction(ctx, userID, dto.CreateTransactionRequest{
		Amount:      decimal.NewFromInt(50),
		Description: "newer",
		Category:    domain.CategoryFood,
		Kind:        domain.Expense,
		Date:        "2024-06-10",
		Account:     "cash",
	})

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_RejectsNonPositiveAmount() {
	_, err := suite.service.AddTransaction(context.Background(), "user-1", dto.CreateTransactionRequest{
		Amount:      decimal.Zero,
		Description: "free lunch",
		Category:    domain.CategoryFood,
		Kind:        domain.Expense,
		Date:        "2024-06-10",
		Account:     "cash",
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_RejectsUnknownCategory() {
	_, err := suite.service.AddTransaction(context.Background(), "user-1", dto.CreateTransactionRequest{
		Amount:      decimal.NewFromInt(10),
		Description: "odd",
		Category:    domain.Category("Gambling"),
		Kind:        domain.Expense,
		Date:        "2024-06-10",
		Account:     "cash",
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_FilterRunsBeforeWindow() {
	ctx := context.Background()
	userID := "user-1"

	// Ten expenses interleaved with ten incomes. A free plan window of 7
	// must show 7 expenses, not 7 of the first rows in raw order.
	transactions := make([]domain.Transaction, 0, 20)
	for i := 0; i < 10; i++ {
		transactions = append(transactions,
			expenseTxn(fmt.Sprintf("2024-06-%02d", i+1), int64(100+i), fmt.Sprintf("spend-%d", i)),
			domain.Transaction{
				TransactionID: fmt.Sprintf("income-%d", i),
				Amount:        decimal.NewFromInt(1000),
				Description:   fmt.Sprintf("salary-%d", i),
				Category:      domain.CategorySalary,
				Kind:          domain.Income,
				Date:          time.Date(2024, time.June, i+1, 0, 0, 0, 0, time.UTC),
			})
	}

	suite.expectPlan(userID, domain.PlanFree)
	suite.mockLedgerRepo.On("FindLedger", ctx, userID).
		Return(&domain.Ledger{Transactions: transactions}, nil).Once()

	page, err := suite.service.ListTransactions(ctx, userID, domain.FilterExpense, domain.SortByDate)

	suite.Require().NoError(err)
	suite.Len(page.Transactions, 7)
	suite.Equal(3, page.HiddenCount)
	suite.Equal(7, page.WindowSize)
	for _, txn := range page.Transactions {
		suite.Equal(domain.Expense, txn.Kind)
	}
	// Date descending: June 10 first.
	suite.Equal("spend-9", page.Transactions[0].Description)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_SortByAmountDescending() {
	ctx := context.Background()
	userID := "user-1"
	transactions := []domain.Transaction{
		expenseTxn("2024-06-01", 50, "small"),
		expenseTxn("2024-06-02", 500, "large"),
		expenseTxn("2024-06-03", 200, "medium"),
	}

	suite.expectPlan(userID, domain.PlanPro)
	suite.mockLedgerRepo.On("FindLedger", ctx, userID).
		Return(&domain.Ledger{Transactions: transactions}, nil).Once()

	page, err := suite.service.ListTransactions(ctx, userID, domain.FilterAll, domain.SortByAmount)

	suite.Require().NoError(err)
	suite.Require().Len(page.Transactions, 3)
	suite.Equal("large", page.Transactions[0].Description)
	suite.Equal("medium", page.Transactions[1].Description)
	suite.Equal("small", page.Transactions[2].Description)
	suite.Equal(0, page.HiddenCount)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_EmptyLedgerDefaults() {
	ctx := context.Background()
	userID := "new-user"

	suite.expectPlan(userID, domain.PlanFree)
	suite.mockLedgerRepo.On("FindLedger", ctx, userID).
		Return(nil, apperrors.ErrNotFound).Once()

	page, err := suite.service.ListTransactions(ctx, userID, domain.FilterAll, domain.SortByDate)

	suite.Require().NoError(err)
	suite.Empty(page.Transactions)
	suite.Equal(0, page.HiddenCount)
}

func (suite *LedgerServiceTestSuite) TestExportTransactions_RequiresUltra() {
	ctx := context.Background()
	userID := "user-1"

	suite.expectPlan(userID, domain.PlanPro)

	_, err := suite.service.ExportTransactions(ctx, userID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "FindLedger", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestExportTransactions_UltraGetsFullLedger() {
	ctx := context.Background()
	userID := "user-1"
	transactions := []domain.Transaction{
		expenseTxn("2024-06-01", 100, "one"),
		expenseTxn("2024-06-02", 200, "two"),
	}

	suite.expectPlan(userID, domain.PlanUltra)
	suite.mockLedgerRepo.On("FindLedger", ctx, userID).
		Return(&domain.Ledger{Transactions: transactions}, nil).Once()

	exported, err := suite.service.ExportTransactions(ctx, userID)

	suite.Require().NoError(err)
	suite.Len(exported, 2)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
