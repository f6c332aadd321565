package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/floner-app/floner_backend/internal/apperrors"
	"github.com/floner-app/floner_backend/internal/core/domain"
	portsrepo "github.com/floner-app/floner_backend/internal/core/ports/repositories"
	portssvc "github.com/floner-app/floner_backend/internal/core/ports/services"
	"github.com/floner-app/floner_backend/internal/utils/finmath"
	"github.com/floner-app/floner_backend/internal/utils/taxcalc"
	"github.com/shopspring/decimal"
)

var twelveMonths = decimal.NewFromInt(12)

// taxService implements the TaxSvc interface.
type taxService struct {
	BaseService
	ledgerRepo   portsrepo.LedgerReader
	planResolver portssvc.PlanResolverSvc
}

// NewTaxService creates a new tax service.
func NewTaxService(ledgerRepo portsrepo.LedgerReader, planResolver portssvc.PlanResolverSvc) portssvc.TaxSvc {
	return &taxService{
		ledgerRepo:   ledgerRepo,
		planResolver: planResolver,
	}
}

// Ensure taxService implements the TaxSvc interface
var _ portssvc.TaxSvc = (*taxService)(nil)

// Calculate runs the tax engine over the input. Nothing is persisted.
func (s *taxService) Calculate(ctx context.Context, userID string, input domain.TaxInput) (*domain.TaxResult, error) {
	if err := s.requireTaxAccess(ctx, userID); err != nil {
		return nil, err
	}
	if !input.Age.IsValid() {
		return nil, fmt.Errorf("%w: unknown age band %q", apperrors.ErrValidation, input.Age)
	}

	result := taxcalc.Compute(input)
	s.LogDebug(ctx, "Tax estimate computed",
		slog.String("user_id", userID),
		slog.String("taxable_income", result.TaxableIncome.String()))
	return &result, nil
}

// PrefillAnnualIncome suggests an annual income for the calculator form by
// annualizing the ledger's income total.
func (s *taxService) PrefillAnnualIncome(ctx context.Context, userID string) (decimal.Decimal, error) {
	if err := s.requireTaxAccess(ctx, userID); err != nil {
		return decimal.Zero, err
	}

	ledger, err := s.ledgerRepo.FindLedger(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	income, _, _ := finmath.Summarize(ledger.Transactions)
	return income.Mul(twelveMonths), nil
}

func (s *taxService) requireTaxAccess(ctx context.Context, userID string) error {
	policy, err := s.planResolver.EffectivePolicy(ctx, userID)
	if err != nil {
		return err
	}
	if !policy.TaxAccess {
		return fmt.Errorf("%w: tax calculator requires the pro plan or higher", apperrors.ErrForbidden)
	}
	return nil
}
