package domain

import "github.com/shopspring/decimal"

// KindTotals accumulates income and expense sums independently for a category.
type KindTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// FinancialSummary is the derived overview of a user's ledger.
// MonthlyIncome and MonthlyExpense keep the product's naming but sum the whole
// visible ledger, not a calendar month.
type FinancialSummary struct {
	MonthlyIncome  decimal.Decimal         `json:"monthlyIncome"`
	MonthlyExpense decimal.Decimal         `json:"monthlyExpense"`
	Balance        decimal.Decimal         `json:"balance"` // opening balance + income - expense
	SavingsRate    decimal.Decimal         `json:"savingsRate"`
	HealthScore    int                     `json:"healthScore"` // 0..100
	HealthBand     string                  `json:"healthBand"`
	CategoryTotals map[Category]KindTotals `json:"categoryTotals"`
}

// CategoryExpense is one entry of a top-expense-categories ranking.
type CategoryExpense struct {
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}
