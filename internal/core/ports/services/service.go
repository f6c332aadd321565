package services

import (
	"context"

	"github.com/floner-app/floner_backend/internal/core/domain"
)

// PlanResolverSvc resolves a user's effective subscription plan and policy.
// "Effective" means after the load-time expiry check: an expired paid plan has
// already been reset to free by the time these return. Every plan-gated
// service consults this one interface instead of re-deriving gating rules.
type PlanResolverSvc interface {
	// EffectivePlan returns the user's plan after expiry normalization.
	EffectivePlan(ctx context.Context, userID string) (domain.SubscriptionPlan, error)

	// EffectivePolicy returns the policy record for the user's effective
	// plan. Unknown plans resolve to the free policy.
	EffectivePolicy(ctx context.Context, userID string) (domain.PlanPolicy, error)
}
