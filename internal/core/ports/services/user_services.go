package services

import (
	"context"

	"github.com/floner-app/floner_backend/internal/core/domain"
	"github.com/floner-app/floner_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID. Runs the subscription expiry
	// check before returning: an expired plan comes back as free.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// Register creates a new user with the free plan.
	Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// UpdateUser applies profile edits.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication.
type UserAuthSvc interface {
	// Authenticate verifies email and password.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// UserLifecycleSvc defines operations for managing user lifecycle.
type UserLifecycleSvc interface {
	// DeleteUser soft-deletes the user and clears their persisted state
	// documents (ledger, budgets, goals).
	DeleteUser(ctx context.Context, userID string) error
}

// SubscriptionSvc defines subscription management operations.
type SubscriptionSvc interface {
	PlanResolverSvc

	// Upgrade changes the user's plan, sets a fresh expiry and applies any
	// promo discount. Returns the updated user and the discount percent.
	Upgrade(ctx context.Context, userID string, req dto.UpgradeSubscriptionRequest) (*domain.User, int, error)
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
	UserLifecycleSvc
	SubscriptionSvc
}
