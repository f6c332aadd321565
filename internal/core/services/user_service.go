package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/floner-app/floner_backend/internal/apperrors"
	"github.com/floner-app/floner_backend/internal/core/domain"
	portsrepo "github.com/floner-app/floner_backend/internal/core/ports/repositories"
	portssvc "github.com/floner-app/floner_backend/internal/core/ports/services"
	"github.com/floner-app/floner_backend/internal/dto"
	"github.com/floner-app/floner_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Paid plans run for 30 days from purchase; demo accounts start with the
// original product's opening balance.
const subscriptionTerm = 30 * 24 * time.Hour

var demoOpeningBalance = decimal.NewFromInt(50000)

// userService implements the UserSvcFacade interface.
type userService struct {
	BaseService
	userRepo   portsrepo.UserRepository
	ledgerRepo portsrepo.LedgerRepository
	budgetRepo portsrepo.BudgetWriter
	goalRepo   portsrepo.GoalWriter
}

// NewUserService creates a new user service.
func NewUserService(
	userRepo portsrepo.UserRepository,
	ledgerRepo portsrepo.LedgerRepository,
	budgetRepo portsrepo.BudgetWriter,
	goalRepo portsrepo.GoalWriter,
) portssvc.UserSvcFacade {
	return &userService{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		budgetRepo: budgetRepo,
		goalRepo:   goalRepo,
	}
}

// Ensure userService implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// Register creates a new user with the free plan and an empty ledger.
func (s *userService) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	_, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err == nil {
		return nil, apperrors.ErrDuplicate
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:           uuid.NewString(),
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		PasswordHash:     hash,
		SubscriptionPlan: domain.PlanFree,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	user.CreatedBy = user.UserID
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save new user", slog.String("email", req.Email))
		return nil, err
	}

	// Seed the ledger document so the first load sees the demo opening balance.
	ledger := domain.Ledger{OpeningBalance: demoOpeningBalance, Transactions: []domain.Transaction{}}
	if err := s.ledgerRepo.SaveLedger(ctx, user.UserID, ledger); err != nil {
		s.LogError(ctx, err, "Failed to seed ledger for new user", slog.String("user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// GetUserByID retrieves a user, applying the subscription expiry check first.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.normalizeSubscription(ctx, user)
}

// Authenticate verifies email and password.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return s.normalizeSubscription(ctx, user)
}

// UpdateUser applies profile edits.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.ProfileImageURL != nil {
		user.ProfileImageURL = *req.ProfileImageURL
	}
	if req.ConnectedAccounts != nil {
		if *req.ConnectedAccounts < 0 {
			return nil, fmt.Errorf("%w: connected accounts cannot be negative", apperrors.ErrValidation)
		}
		user.ConnectedAccounts = *req.ConnectedAccounts
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

// DeleteUser soft-deletes the user and clears their persisted state documents.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now()); err != nil {
		return err
	}
	if err := s.ledgerRepo.DeleteLedger(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to delete ledger state", slog.String("user_id", userID))
		return err
	}
	if err := s.budgetRepo.DeleteBudgets(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to delete budget state", slog.String("user_id", userID))
		return err
	}
	if err := s.goalRepo.DeleteGoals(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to delete goal state", slog.String("user_id", userID))
		return err
	}
	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return nil
}

// EffectivePlan returns the user's plan after expiry normalization.
func (s *userService) EffectivePlan(ctx context.Context, userID string) (domain.SubscriptionPlan, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return domain.PlanFree, err
	}
	return user.SubscriptionPlan, nil
}

// EffectivePolicy returns the policy record for the user's effective plan.
func (s *userService) EffectivePolicy(ctx context.Context, userID string) (domain.PlanPolicy, error) {
	plan, err := s.EffectivePlan(ctx, userID)
	if err != nil {
		return domain.PolicyFor(domain.PlanFree), err
	}
	return domain.PolicyFor(plan), nil
}

// Upgrade changes the user's plan, sets a fresh expiry and applies any promo
// discount to the (simulated) charge.
func (s *userService) Upgrade(ctx context.Context, userID string, req dto.UpgradeSubscriptionRequest) (*domain.User, int, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	discount := 0
	if req.PromoCode != "" {
		var ok bool
		discount, ok = domain.PromoDiscount(req.PromoCode, time.Now())
		if !ok {
			return nil, 0, fmt.Errorf("%w: invalid or expired promo code", apperrors.ErrValidation)
		}
	}

	expiry := time.Now().Add(subscriptionTerm)
	user.SubscriptionPlan = req.Plan
	user.SubscriptionExpiry = &expiry
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to upgrade subscription", slog.String("user_id", userID))
		return nil, 0, err
	}

	s.LogInfo(ctx, "Subscription upgraded",
		slog.String("user_id", userID),
		slog.String("plan", string(req.Plan)),
		slog.Int("discount_percent", discount))
	return user, discount, nil
}

// normalizeSubscription resets an expired paid plan to free and clears the
// expiry. The downgrade is persisted so the check fires once, not on every
// request for the rest of the session.
func (s *userService) normalizeSubscription(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.SubscriptionExpiry == nil || !user.SubscriptionExpiry.Before(time.Now()) {
		return user, nil
	}

	s.LogInfo(ctx, "Subscription expired, downgrading to free",
		slog.String("user_id", user.UserID),
		slog.String("expired_plan", string(user.SubscriptionPlan)))

	user.SubscriptionPlan = domain.PlanFree
	user.SubscriptionExpiry = nil
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to persist subscription downgrade", slog.String("user_id", user.UserID))
		return nil, err
	}
	return user, nil
}
