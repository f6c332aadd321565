package domain

import "github.com/shopspring/decimal"

// BudgetCategory is a user-defined spending envelope. Spent is tracked
// independently of the transaction ledger; the two are not reconciled.
type BudgetCategory struct {
	BudgetID string          `json:"budgetID"` // Primary Key (UUID)
	Category string          `json:"category"` // Display label, e.g. "Food & Dining"
	Icon     string          `json:"icon"`     // Cosmetic
	Budgeted decimal.Decimal `json:"budgeted"` // >= 0
	Spent    decimal.Decimal `json:"spent"`    // >= 0, monotonically non-decreasing
	AuditFields
}

// BudgetCategoryStatus is a BudgetCategory with its derived display fields.
type BudgetCategoryStatus struct {
	BudgetCategory
	Remaining   decimal.Decimal `json:"remaining"`   // budgeted - spent; negative signals overspend
	Utilization decimal.Decimal `json:"utilization"` // spent/budgeted*100, 0 when budgeted is 0
	Band        string          `json:"band"`        // over-budget / caution / on-track
}

// BudgetOverview aggregates all budget categories for one user.
type BudgetOverview struct {
	Categories         []BudgetCategoryStatus `json:"categories"`
	TotalBudgeted      decimal.Decimal        `json:"totalBudgeted"`
	TotalSpent         decimal.Decimal        `json:"totalSpent"`
	TotalRemaining     decimal.Decimal        `json:"totalRemaining"`
	OverallUtilization decimal.Decimal        `json:"overallUtilization"`
	Status             string                 `json:"status"` // near limit / watch spending / on track
}
