package domain

import "time"

// User represents a registered user of the application in the domain.
type User struct {
	UserID            string           `json:"userID"` // Primary Key (UUID)
	Name              string           `json:"name"`
	Email             string           `json:"email"`
	Phone             string           `json:"phone"`
	PasswordHash      string           `json:"-"`
	SubscriptionPlan  SubscriptionPlan `json:"subscriptionPlan"`
	ConnectedAccounts int              `json:"connectedAccounts"` // Simulated bank links
	ProfileImageURL   string           `json:"profileImageURL,omitempty"`
	// SubscriptionExpiry, when set and in the past, forces the plan back to
	// free on the next load before any plan-gated logic runs.
	SubscriptionExpiry *time.Time `json:"subscriptionExpiry,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
