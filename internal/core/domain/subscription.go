package domain

import "time"

// SubscriptionPlan is the closed set of subscription tiers.
type SubscriptionPlan string

const (
	PlanFree  SubscriptionPlan = "free"
	PlanPro   SubscriptionPlan = "pro"
	PlanUltra SubscriptionPlan = "ultra"
)

// IsValid reports whether p is one of the known plans.
func (p SubscriptionPlan) IsValid() bool {
	return p == PlanFree || p == PlanPro || p == PlanUltra
}

// PlanPolicy is the feature policy attached to a subscription plan.
// HistoryWindow limits how many transactions a ledger view may show after
// filtering and sorting.
type PlanPolicy struct {
	Plan          SubscriptionPlan `json:"plan"`
	HistoryWindow int              `json:"historyWindow"`
	BudgetAccess  bool             `json:"budgetAccess"`
	TaxAccess     bool             `json:"taxAccess"`
	ExportAccess  bool             `json:"exportAccess"`
}

var planPolicies = map[SubscriptionPlan]PlanPolicy{
	PlanFree:  {Plan: PlanFree, HistoryWindow: 7, BudgetAccess: false, TaxAccess: false, ExportAccess: false},
	PlanPro:   {Plan: PlanPro, HistoryWindow: 30, BudgetAccess: true, TaxAccess: true, ExportAccess: false},
	PlanUltra: {Plan: PlanUltra, HistoryWindow: 90, BudgetAccess: true, TaxAccess: true, ExportAccess: true},
}

// PolicyFor returns the feature policy for a plan. An unknown or empty plan
// resolves to the free policy: the gate fails safe, never open.
func PolicyFor(plan SubscriptionPlan) PlanPolicy {
	if policy, ok := planPolicies[plan]; ok {
		return policy
	}
	return planPolicies[PlanFree]
}

// Launch promotion: one code, flat discount, hard end date.
const (
	promoCode            = "FENQRO20"
	promoDiscountPercent = 20
)

var promoEndDate = time.Date(2025, time.September, 20, 0, 0, 0, 0, time.UTC)

// PromoDiscount returns the discount percent for a promotional code, or
// ok=false when the code is unknown or the promotion has ended.
func PromoDiscount(code string, now time.Time) (int, bool) {
	if code != promoCode || !now.Before(promoEndDate) {
		return 0, false
	}
	return promoDiscountPercent, true
}
