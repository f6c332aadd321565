package services

import (
	"context"

	"github.com/floner-app/floner_backend/internal/core/domain"
	"github.com/floner-app/floner_backend/internal/dto"
)

// LedgerSvc defines operations on a user's transaction ledger.
type LedgerSvc interface {
	// AddTransaction appends a transaction to the user's ledger and returns
	// it with its assigned ID. The ledger keeps newest-first insertion order.
	AddTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// ListTransactions returns the filtered, sorted and plan-truncated
	// ledger view. Filtering and sorting run before the history window is
	// applied, never after.
	ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter, sortBy domain.TransactionSortKey) (*domain.TransactionPage, error)

	// ExportTransactions returns the full ledger for export. Requires a plan
	// with export access.
	ExportTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}
