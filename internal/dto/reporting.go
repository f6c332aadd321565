package dto

import (
	"github.com/floner-app/floner_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// KindTotalsResponse carries a category's independent income and expense sums.
type KindTotalsResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// FinancialSummaryResponse is the dashboard overview derived from the ledger.
type FinancialSummaryResponse struct {
	MonthlyIncome  decimal.Decimal               `json:"monthlyIncome"`
	MonthlyExpense decimal.Decimal               `json:"monthlyExpense"`
	Balance        decimal.Decimal               `json:"balance"`
	SavingsRate    decimal.Decimal               `json:"savingsRate"`
	HealthScore    int                           `json:"healthScore"`
	HealthBand     string                        `json:"healthBand"`
	CategoryTotals map[string]KindTotalsResponse `json:"categoryTotals"`
}

// CategoryExpenseResponse is one entry in the top-expense-categories ranking.
type CategoryExpenseResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// ToFinancialSummaryResponse converts a domain summary to its API shape.
func ToFinancialSummaryResponse(summary domain.FinancialSummary) FinancialSummaryResponse {
	response := FinancialSummaryResponse{
		MonthlyIncome:  summary.MonthlyIncome.Round(2),
		MonthlyExpense: summary.MonthlyExpense.Round(2),
		Balance:        summary.Balance.Round(2),
		SavingsRate:    summary.SavingsRate.Round(2),
		HealthScore:    summary.HealthScore,
		HealthBand:     summary.HealthBand,
		CategoryTotals: make(map[string]KindTotalsResponse, len(summary.CategoryTotals)),
	}
	for category, totals := range summary.CategoryTotals {
		response.CategoryTotals[string(category)] = KindTotalsResponse{
			Income:  totals.Income.Round(2),
			Expense: totals.Expense.Round(2),
		}
	}
	return response
}

// ToCategoryExpenseResponses converts a ranking to its API shape.
func ToCategoryExpenseResponses(ranking []domain.CategoryExpense) []CategoryExpenseResponse {
	responses := make([]CategoryExpenseResponse, len(ranking))
	for i, entry := range ranking {
		responses[i] = CategoryExpenseResponse{
			Category: string(entry.Category),
			Amount:   entry.Amount.Round(2),
		}
	}
	return responses
}
