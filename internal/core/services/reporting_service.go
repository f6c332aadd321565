package services

import (
	"context"
	"errors"

	"github.com/floner-app/floner_backend/internal/apperrors"
	"github.com/floner-app/floner_backend/internal/core/domain"
	portsrepo "github.com/floner-app/floner_backend/internal/core/ports/repositories"
	portssvc "github.com/floner-app/floner_backend/internal/core/ports/services"
	"github.com/floner-app/floner_backend/internal/utils/finmath"
)

// reportingService implements the ReportingSvc interface.
type reportingService struct {
	BaseService
	ledgerRepo portsrepo.LedgerReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(ledgerRepo portsrepo.LedgerReader) portssvc.ReportingSvc {
	return &reportingService{ledgerRepo: ledgerRepo}
}

// Ensure reportingService implements the ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportingService)(nil)

// Summary derives the financial overview from the user's ledger. Pure
// derivation over the persisted state; calling it twice without an
// intervening mutation returns identical results.
func (s *reportingService) Summary(ctx context.Context, userID string) (*domain.FinancialSummary, error) {
	ledger, err := s.findLedger(ctx, userID)
	if err != nil {
		return nil, err
	}

	income, expense, totals := finmath.Summarize(ledger.Transactions)
	score := finmath.HealthScore(income, expense)

	return &domain.FinancialSummary{
		MonthlyIncome:  income,
		MonthlyExpense: expense,
		Balance:        ledger.OpeningBalance.Add(income).Sub(expense),
		SavingsRate:    finmath.SavingsRate(income, expense),
		HealthScore:    score,
		HealthBand:     finmath.HealthBand(score),
		CategoryTotals: totals,
	}, nil
}

// TopExpenseCategories ranks expense categories by total, highest first.
func (s *reportingService) TopExpenseCategories(ctx context.Context, userID string, n int) ([]domain.CategoryExpense, error) {
	ledger, err := s.findLedger(ctx, userID)
	if err != nil {
		return nil, err
	}
	return finmath.TopExpenseCategories(ledger.Transactions, n), nil
}

func (s *reportingService) findLedger(ctx context.Context, userID string) (*domain.Ledger, error) {
	ledger, err := s.ledgerRepo.FindLedger(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.Ledger{OpeningBalance: demoOpeningBalance, Transactions: []domain.Transaction{}}, nil
		}
		return nil, err
	}
	return ledger, nil
}
