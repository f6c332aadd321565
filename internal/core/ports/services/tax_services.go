package services

import (
	"context"

	"github.com/floner-app/floner_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TaxSvc defines the income tax estimate operations. Calculation requires a
// plan with tax calculator access.
type TaxSvc interface {
	// Calculate runs the tax engine over the input. Stateless; nothing is
	// persisted.
	Calculate(ctx context.Context, userID string, input domain.TaxInput) (*domain.TaxResult, error)

	// PrefillAnnualIncome suggests an annual income for the calculator
	// form: the ledger's income total times 12.
	PrefillAnnualIncome(ctx context.Context, userID string) (decimal.Decimal, error)
}
