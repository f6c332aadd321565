package dto

import "github.com/floner-app/floner_backend/internal/core/domain"

// UpgradeSubscriptionRequest is the payload for a plan change. PromoCode is
// optional; a valid code applies its discount to the (simulated) charge.
type UpgradeSubscriptionRequest struct {
	Plan      domain.SubscriptionPlan `json:"plan" binding:"required,oneof=pro ultra"`
	PromoCode string                  `json:"promoCode"`
}

// PlanPolicyResponse is the caller's effective feature policy.
type PlanPolicyResponse struct {
	Plan          string `json:"plan"`
	HistoryWindow int    `json:"historyWindow"`
	BudgetAccess  bool   `json:"budgetAccess"`
	TaxAccess     bool   `json:"taxAccess"`
	ExportAccess  bool   `json:"exportAccess"`
}

// UpgradeSubscriptionResponse reports the new profile and any promo discount
// that was applied.
type UpgradeSubscriptionResponse struct {
	User            UserResponse `json:"user"`
	DiscountPercent int          `json:"discountPercent"`
}

// ToPlanPolicyResponse converts a policy record to its API shape.
func ToPlanPolicyResponse(policy domain.PlanPolicy) PlanPolicyResponse {
	return PlanPolicyResponse{
		Plan:          string(policy.Plan),
		HistoryWindow: policy.HistoryWindow,
		BudgetAccess:  policy.BudgetAccess,
		TaxAccess:     policy.TaxAccess,
		ExportAccess:  policy.ExportAccess,
	}
}
