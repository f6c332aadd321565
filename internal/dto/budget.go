package dto

import (
	"github.com/floner-app/floner_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest is the payload for adding a budget category.
type CreateBudgetRequest struct {
	Category string          `json:"category" binding:"required"`
	Icon     string          `json:"icon"`
	Budgeted decimal.Decimal `json:"budgeted" binding:"required"`
}

// RecordSpendRequest is the payload for recording spend against a category.
type RecordSpendRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// BudgetCategoryResponse is a budget category with its derived display fields.
type BudgetCategoryResponse struct {
	BudgetID    string          `json:"budgetID"`
	Category    string          `json:"category"`
	Icon        string          `json:"icon"`
	Budgeted    decimal.Decimal `json:"budgeted"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	Utilization decimal.Decimal `json:"utilization"`
	Band        string          `json:"band"`
}

// BudgetOverviewResponse aggregates the user's budget position.
type BudgetOverviewResponse struct {
	Categories []BudgetCategoryResponse `json:"categories"`
	Summary    struct {
		TotalBudgeted      decimal.Decimal `json:"totalBudgeted"`
		TotalSpent         decimal.Decimal `json:"totalSpent"`
		TotalRemaining     decimal.Decimal `json:"totalRemaining"`
		OverallUtilization decimal.Decimal `json:"overallUtilization"`
		Status             string          `json:"status"`
	} `json:"summary"`
}

// ToBudgetCategoryResponse converts a derived budget category to its API shape.
func ToBudgetCategoryResponse(status domain.BudgetCategoryStatus) BudgetCategoryResponse {
	return BudgetCategoryResponse{
		BudgetID:    status.BudgetID,
		Category:    status.Category,
		Icon:        status.Icon,
		Budgeted:    status.Budgeted.Round(2),
		Spent:       status.Spent.Round(2),
		Remaining:   status.Remaining.Round(2),
		Utilization: status.Utilization.Round(2),
		Band:        status.Band,
	}
}

// ToBudgetOverviewResponse converts a budget overview to its API shape.
func ToBudgetOverviewResponse(overview domain.BudgetOverview) BudgetOverviewResponse {
	response := BudgetOverviewResponse{
		Categories: make([]BudgetCategoryResponse, len(overview.Categories)),
	}
	for i, category := range overview.Categories {
		response.Categories[i] = ToBudgetCategoryResponse(category)
	}
	response.Summary.TotalBudgeted = overview.TotalBudgeted.Round(2)
	response.Summary.TotalSpent = overview.TotalSpent.Round(2)
	response.Summary.TotalRemaining = overview.TotalRemaining.Round(2)
	response.Summary.OverallUtilization = overview.OverallUtilization.Round(2)
	response.Summary.Status = overview.Status
	return response
}
