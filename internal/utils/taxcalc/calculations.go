// Package taxcalc implements the Indian income tax estimate for FY 2023-24
// (old regime): caller-supplied deductions, a flat standard deduction, an
// age-banded basic exemption, fixed-width progressive slabs and a flat cess.
//
// The computation is a total function: negative inputs are treated as zero,
// never rejected. All intermediate math stays in exact decimals; rounding for
// display happens at the DTO boundary only.
package taxcalc

import (
	"github.com/floner-app/floner_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	standardDeduction = decimal.NewFromInt(50000)

	// Slab widths are fixed regardless of age; only the exemption limit moves.
	slab5Width  = decimal.NewFromInt(250000)
	slab20Width = decimal.NewFromInt(500000)

	rate5    = decimal.NewFromFloat(0.05)
	rate20   = decimal.NewFromFloat(0.20)
	rate30   = decimal.NewFromFloat(0.30)
	cessRate = decimal.NewFromFloat(0.04) // Health and Education Cess

	twelve = decimal.NewFromInt(12)

	exemptionLimits = map[domain.AgeBand]decimal.Decimal{
		domain.AgeBelow60: decimal.NewFromInt(250000),
		domain.Age60To80:  decimal.NewFromInt(300000),
		domain.AgeAbove80: decimal.NewFromInt(500000),
	}
)

// ExemptionLimit returns the basic exemption for an age band. Unknown bands
// fall back to the below-60 limit.
func ExemptionLimit(age domain.AgeBand) decimal.Decimal {
	if limit, ok := exemptionLimits[age]; ok {
		return limit
	}
	return exemptionLimits[domain.AgeBelow60]
}

// Compute derives the full tax breakdown from the input. Deterministic, no
// side effects.
func Compute(input domain.TaxInput) domain.TaxResult {
	grossIncome := clampZero(input.GrossIncome)

	totalDeductions := clampZero(input.Section80C).
		Add(clampZero(input.Section80D)).
		Add(clampZero(input.HRA)).
		Add(clampZero(input.LTA)).
		Add(clampZero(input.ProfessionalTax))

	afterDeductions := clampZero(grossIncome.Sub(totalDeductions))
	taxableIncome := clampZero(afterDeductions.Sub(standardDeduction))

	baseTax := decimal.Zero
	exemptionLimit := ExemptionLimit(input.Age)
	if taxableIncome.GreaterThan(exemptionLimit) {
		remaining := taxableIncome.Sub(exemptionLimit)

		at5 := decimal.Min(remaining, slab5Width)
		baseTax = baseTax.Add(at5.Mul(rate5))
		remaining = remaining.Sub(at5)

		if remaining.GreaterThan(decimal.Zero) {
			at20 := decimal.Min(remaining, slab20Width)
			baseTax = baseTax.Add(at20.Mul(rate20))
			remaining = remaining.Sub(at20)
		}

		if remaining.GreaterThan(decimal.Zero) {
			baseTax = baseTax.Add(remaining.Mul(rate30))
		}
	}

	cess := baseTax.Mul(cessRate)
	totalTax := baseTax.Add(cess)

	effectiveRate := decimal.Zero
	if grossIncome.GreaterThan(decimal.Zero) {
		effectiveRate = totalTax.Div(grossIncome).Mul(decimal.NewFromInt(100))
	}

	return domain.TaxResult{
		GrossIncome:     grossIncome,
		TotalDeductions: totalDeductions,
		TaxableIncome:   taxableIncome,
		BaseTax:         baseTax,
		Cess:            cess,
		TotalTax:        totalTax,
		NetIncome:       grossIncome.Sub(totalTax),
		MonthlyTax:      totalTax.Div(twelve),
		EffectiveRate:   effectiveRate,
	}
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return d
}
