package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/floner-app/floner_backend/internal/apperrors"
	"github.com/floner-app/floner_backend/internal/core/domain"
	portssvc "github.com/floner-app/floner_backend/internal/core/ports/services"
	"github.com/floner-app/floner_backend/internal/dto"
	"github.com/floner-app/floner_backend/internal/handlers"
	"github.com/floner-app/floner_backend/internal/utils"
	"github.com/floner-app/floner_backend/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) AddTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter, sortBy domain.TransactionSortKey) (*domain.TransactionPage, error) {
	args := m.Called(ctx, userID, filter, sortBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}

func (m *MockLedgerService) ExportTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvc = (*MockLedgerService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockLedger *MockLedgerService
	cfg        *config.Config
	userID     string
	authHeader string
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "floner-test",
	}
	suite.mockLedger = new(MockLedgerService)
	suite.userID = "user-1"

	token, err := utils.GenerateJWT(suite.userID, suite.cfg.JWTSecret, suite.cfg.JWTExpiryDuration, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	suite.authHeader = "Bearer " + token

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		Ledger: suite.mockLedger,
	})
}

func (suite *TransactionHandlerTestSuite) doRequest(method, path string, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authorized {
		req.Header.Set("Authorization", suite.authHeader)
	}
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_RequiresAuth() {
	recorder := suite.doRequest(http.MethodGet, "/api/v1/transactions", false)

	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_Success() {
	page := &domain.TransactionPage{
		Transactions: []domain.Transaction{
			{
				TransactionID: "t1",
				Amount:        decimal.NewFromInt(450),
				Description:   "groceries",
				Category:      domain.CategoryFood,
				Kind:          domain.Expense,
				Date:          time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
				Account:       "cash",
			},
		},
		HiddenCount: 2,
		WindowSize:  7,
	}
	suite.mockLedger.On("ListTransactions", mock.Anything, suite.userID, domain.FilterExpense, domain.SortByDate).
		Return(page, nil).Once()

	recorder := suite.doRequest(http.MethodGet, "/api/v1/transactions?filter=expense", true)

	suite.Require().Equal(http.StatusOK, recorder.Code)
	var response dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
	suite.Len(response.Transactions, 1)
	suite.Equal(2, response.HiddenCount)
	suite.Equal(7, response.WindowSize)
	suite.Equal("groceries", response.Transactions[0].Description)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestExportTransactions_ForbiddenMapsTo403() {
	suite.mockLedger.On("ExportTransactions", mock.Anything, suite.userID).
		Return(nil, apperrors.ErrForbidden).Once()

	recorder := suite.doRequest(http.MethodGet, "/api/v1/transactions/export", true)

	suite.Equal(http.StatusForbidden, recorder.Code)
}

func (suite *TransactionHandlerTestSuite) TestExportTransactions_WritesCSV() {
	transactions := []domain.Transaction{
		{
			TransactionID: "t1",
			Amount:        decimal.NewFromInt(450),
			Description:   "groceries",
			Category:      domain.CategoryFood,
			Kind:          domain.Expense,
			Date:          time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			Account:       "cash",
		},
	}
	suite.mockLedger.On("ExportTransactions", mock.Anything, suite.userID).
		Return(transactions, nil).Once()

	recorder := suite.doRequest(http.MethodGet, "/api/v1/transactions/export", true)

	suite.Require().Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Header().Get("Content-Type"), "text/csv")
	suite.Contains(recorder.Body.String(), "date,description,category,kind,amount,account")
	suite.Contains(recorder.Body.String(), "2024-06-10,groceries,Food,expense,450,cash")
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
