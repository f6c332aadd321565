package repositories

import (
	"context"

	"github.com/floner-app/floner_backend/internal/core/domain"
)

// LedgerReader defines read operations for a user's transaction ledger.
type LedgerReader interface {
	// FindLedger retrieves the full ledger for a user.
	// Returns apperrors.ErrNotFound when the user has no ledger yet.
	FindLedger(ctx context.Context, userID string) (*domain.Ledger, error)
}

// LedgerWriter defines write operations for a user's transaction ledger.
type LedgerWriter interface {
	// SaveLedger persists the full ledger for a user, replacing any
	// previous version.
	SaveLedger(ctx context.Context, userID string, ledger domain.Ledger) error

	// DeleteLedger removes the user's ledger entirely.
	DeleteLedger(ctx context.Context, userID string) error
}

// LedgerRepository combines ledger read and write operations.
type LedgerRepository interface {
	LedgerReader
	LedgerWriter
}
