package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/floner-app/floner_backend/internal/apperrors"
	"github.com/floner-app/floner_backend/internal/core/domain"
	portsrepo "github.com/floner-app/floner_backend/internal/core/ports/repositories"
	portssvc "github.com/floner-app/floner_backend/internal/core/ports/services"
	"github.com/floner-app/floner_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ledgerService implements the LedgerSvc interface.
type ledgerService struct {
	BaseService
	ledgerRepo   portsrepo.LedgerRepository
	planResolver portssvc.PlanResolverSvc
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository, planResolver portssvc.PlanResolverSvc) portssvc.LedgerSvc {
	return &ledgerService{
		ledgerRepo:   ledgerRepo,
		planResolver: planResolver,
	}
}

// Ensure ledgerService implements the LedgerSvc interface
var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// AddTransaction validates and appends a transaction at the head of the
// user's ledger.
func (s *ledgerService) AddTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if !req.Kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, req.Kind)
	}
	if !req.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, req.Category)
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", apperrors.ErrValidation)
	}

	ledger, err := s.loadLedger(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Amount:        req.Amount,
		Description:   req.Description,
		Category:      req.Category,
		Kind:          req.Kind,
		Date:          date,
		Account:       req.Account,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	// Newest first, so insertion-order views show the fresh entry at the head.
	ledger.Transactions = append([]domain.Transaction{txn}, ledger.Transactions...)

	if err := s.ledgerRepo.SaveLedger(ctx, userID, *ledger); err != nil {
		s.LogError(ctx, err, "Failed to save ledger after append", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("kind", string(txn.Kind)),
		slog.String("category", string(txn.Category)))
	return &txn, nil
}

// ListTransactions returns the filtered, sorted, plan-truncated ledger view.
// The filter and sort always run before the history window is applied, so the
// window caps matching transactions, not raw ledger entries.
func (s *ledgerService) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter, sortBy domain.TransactionSortKey) (*domain.TransactionPage, error) {
	policy, err := s.planResolver.EffectivePolicy(ctx, userID)
	if err != nil {
		return nil, err
	}

	ledger, err := s.loadLedger(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := filterTransactions(ledger.Transactions, filter)
	sortTransactions(filtered, sortBy)

	hidden := 0
	if len(filtered) > policy.HistoryWindow {
		hidden = len(filtered) - policy.HistoryWindow
		filtered = filtered[:policy.HistoryWindow]
	}

	return &domain.TransactionPage{
		Transactions: filtered,
		HiddenCount:  hidden,
		WindowSize:   policy.HistoryWindow,
	}, nil
}

// ExportTransactions returns the full ledger for export, newest first.
func (s *ledgerService) ExportTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	policy, err := s.planResolver.EffectivePolicy(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !policy.ExportAccess {
		return nil, fmt.Errorf("%w: export requires the ultra plan", apperrors.ErrForbidden)
	}

	ledger, err := s.loadLedger(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ledger.Transactions, nil
}

// loadLedger fetches the user's ledger, falling back to a fresh demo ledger
// when none was persisted yet.
func (s *ledgerService) loadLedger(ctx context.Context, userID string) (*domain.Ledger, error) {
	ledger, err := s.ledgerRepo.FindLedger(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.Ledger{OpeningBalance: demoOpeningBalance, Transactions: []domain.Transaction{}}, nil
		}
		return nil, err
	}
	return ledger, nil
}

// filterTransactions returns a copy restricted to the requested kind. An
// empty or "all" filter keeps everything.
func filterTransactions(transactions []domain.Transaction, filter domain.TransactionFilter) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		switch filter {
		case domain.FilterIncome:
			if txn.Kind != domain.Income {
				continue
			}
		case domain.FilterExpense:
			if txn.Kind != domain.Expense {
				continue
			}
		}
		out = append(out, txn)
	}
	return out
}

// sortTransactions orders a view in place: date descending (default), amount
// descending, or description ascending. Stable, so equal keys keep their
// newest-first insertion order.
func sortTransactions(transactions []domain.Transaction, sortBy domain.TransactionSortKey) {
	switch sortBy {
	case domain.SortByAmount:
		sort.SliceStable(transactions, func(i, j int) bool {
			return transactions[i].Amount.GreaterThan(transactions[j].Amount)
		})
	case domain.SortByDescription:
		sort.SliceStable(transactions, func(i, j int) bool {
			return transactions[i].Description < transactions[j].Description
		})
	default:
		sort.SliceStable(transactions, func(i, j int) bool {
			return transactions[i].Date.After(transactions[j].Date)
		})
	}
}
