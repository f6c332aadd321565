package services

import (
	"context"

	"github.com/floner-app/floner_backend/internal/core/domain"
)

// ReportingSvc defines read-only derivations over a user's ledger. Every call
// recomputes from the current ledger; repeated calls without an intervening
// mutation return identical results.
type ReportingSvc interface {
	// Summary derives the financial overview: whole-ledger income and
	// expense totals, derived balance, savings rate, health score and
	// per-category totals.
	Summary(ctx context.Context, userID string) (*domain.FinancialSummary, error)

	// TopExpenseCategories ranks expense categories by total, highest
	// first, truncated to n.
	TopExpenseCategories(ctx context.Context, userID string, n int) ([]domain.CategoryExpense, error)
}
