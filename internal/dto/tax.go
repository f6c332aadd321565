package dto

import (
	"github.com/floner-app/floner_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateTaxRequest carries the income and deduction figures for a tax
// estimate. Deduction fields are optional and default to zero.
type CalculateTaxRequest struct {
	AnnualIncome    decimal.Decimal `json:"annualIncome" binding:"required"`
	Age             domain.AgeBand  `json:"age" binding:"required,oneof=below60 60to80 above80"`
	Section80C      decimal.Decimal `json:"section80C"`
	Section80D      decimal.Decimal `json:"section80D"`
	HRA             decimal.Decimal `json:"hra"`
	LTA             decimal.Decimal `json:"lta"`
	ProfessionalTax decimal.Decimal `json:"professionalTax"`
}

// ToTaxInput converts the request to the engine's input type.
func (r CalculateTaxRequest) ToTaxInput() domain.TaxInput {
	return domain.TaxInput{
		GrossIncome:     r.AnnualIncome,
		Age:             r.Age,
		Section80C:      r.Section80C,
		Section80D:      r.Section80D,
		HRA:             r.HRA,
		LTA:             r.LTA,
		ProfessionalTax: r.ProfessionalTax,
	}
}

// TaxBreakdownResponse is the tax estimate in API shape, rounded to 2 decimal
// places for display. The engine itself never rounds mid-calculation.
type TaxBreakdownResponse struct {
	GrossIncome     decimal.Decimal `json:"grossIncome"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	TaxableIncome   decimal.Decimal `json:"taxableIncome"`
	BaseTax         decimal.Decimal `json:"baseTax"`
	Cess            decimal.Decimal `json:"cess"`
	TotalTax        decimal.Decimal `json:"totalTax"`
	NetIncome       decimal.Decimal `json:"netIncome"`
	MonthlyTax      decimal.Decimal `json:"monthlyTax"`
	EffectiveRate   decimal.Decimal `json:"effectiveRate"`
}

// CalculateTaxResponse wraps the breakdown with planning aids for the UI.
type CalculateTaxResponse struct {
	Breakdown TaxBreakdownResponse `json:"breakdown"`
	Tips      []string             `json:"tips"`
}

// TaxPrefillResponse suggests an annual income (ledger income x 12) to seed
// the calculator form.
type TaxPrefillResponse struct {
	AnnualIncome decimal.Decimal `json:"annualIncome"`
}

// ToTaxBreakdownResponse converts an engine result to its API shape.
func ToTaxBreakdownResponse(result domain.TaxResult) TaxBreakdownResponse {
	return TaxBreakdownResponse{
		GrossIncome:     result.GrossIncome.Round(2),
		TotalDeductions: result.TotalDeductions.Round(2),
		TaxableIncome:   result.TaxableIncome.Round(2),
		BaseTax:         result.BaseTax.Round(2),
		Cess:            result.Cess.Round(2),
		TotalTax:        result.TotalTax.Round(2),
		NetIncome:       result.NetIncome.Round(2),
		MonthlyTax:      result.MonthlyTax.Round(2),
		EffectiveRate:   result.EffectiveRate.Round(2),
	}
}
