// Package statestore implements the document repositories over the generic
// StateStore port. Each user's ledger, budget list and goal list is one
// serialized JSON document, mirroring the client-local storage model the
// product started with: load once, mutate in memory, write back whole.
package statestore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/floner-app/floner_backend/internal/core/domain"
	"github.com/floner-app/floner_backend/internal/core/ports/repositories"
)

// LedgerRepository stores each user's ledger as a single state document.
type LedgerRepository struct {
	store repositories.StateStore
}

func NewLedgerRepository(store repositories.StateStore) *LedgerRepository {
	return &LedgerRepository{store: store}
}

// Ensure LedgerRepository implements repositories.LedgerRepository
var _ repositories.LedgerRepository = (*LedgerRepository)(nil)

func ledgerKey(userID string) string {
	return "ledger:" + userID
}

func (r *LedgerRepository) FindLedger(ctx context.Context, userID string) (*domain.Ledger, error) {
	raw, err := r.store.Load(ctx, ledgerKey(userID))
	if err != nil {
		return nil, err
	}
	var ledger domain.Ledger
	if err := json.Unmarshal(raw, &ledger); err != nil {
		return nil, fmt.Errorf("failed to decode ledger document: %w", err)
	}
	return &ledger, nil
}

func (r *LedgerRepository) SaveLedger(ctx context.Context, userID string, ledger domain.Ledger) error {
	raw, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("failed to encode ledger document: %w", err)
	}
	return r.store.Save(ctx, ledgerKey(userID), raw)
}

func (r *LedgerRepository) DeleteLedger(ctx context.Context, userID string) error {
	return r.store.Delete(ctx, ledgerKey(userID))
}
