package domain

import "github.com/shopspring/decimal"

// AgeBand selects the basic exemption limit for the tax computation.
type AgeBand string

const (
	AgeBelow60 AgeBand = "below60"
	Age60To80  AgeBand = "60to80"
	AgeAbove80 AgeBand = "above80"
)

// IsValid reports whether a is one of the known age bands.
func (a AgeBand) IsValid() bool {
	return a == AgeBelow60 || a == Age60To80 || a == AgeAbove80
}

// TaxInput carries the caller-supplied figures for an income tax estimate.
// Deduction amounts are taken as-is; the engine enforces no per-section caps.
type TaxInput struct {
	GrossIncome     decimal.Decimal `json:"grossIncome"`
	Age             AgeBand         `json:"age"`
	Section80C      decimal.Decimal `json:"section80C"`
	Section80D      decimal.Decimal `json:"section80D"`
	HRA             decimal.Decimal `json:"hra"`
	LTA             decimal.Decimal `json:"lta"`
	ProfessionalTax decimal.Decimal `json:"professionalTax"`
}

// TaxResult is the structured breakdown of an income tax estimate. Every
// field derives deterministically from the TaxInput; there is no hidden state.
type TaxResult struct {
	GrossIncome     decimal.Decimal `json:"grossIncome"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	TaxableIncome   decimal.Decimal `json:"taxableIncome"`
	BaseTax         decimal.Decimal `json:"baseTax"`
	Cess            decimal.Decimal `json:"cess"`
	TotalTax        decimal.Decimal `json:"totalTax"`
	NetIncome       decimal.Decimal `json:"netIncome"`
	MonthlyTax      decimal.Decimal `json:"monthlyTax"`
	EffectiveRate   decimal.Decimal `json:"effectiveRate"` // percent of gross income
}
