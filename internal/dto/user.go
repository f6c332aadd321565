package dto

import "github.com/floner-app/floner_backend/internal/core/domain"

// RegisterUserRequest is the signup payload. No verification is performed;
// signup simply stores the record.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest carries profile edits. Nil fields are left unchanged.
type UpdateUserRequest struct {
	Name              *string `json:"name"`
	Phone             *string `json:"phone"`
	ProfileImageURL   *string `json:"profileImageURL"`
	ConnectedAccounts *int    `json:"connectedAccounts"`
}

// UserResponse represents a user profile in API responses.
type UserResponse struct {
	UserID             string `json:"userID"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	SubscriptionPlan   string `json:"subscriptionPlan"`
	ConnectedAccounts  int    `json:"connectedAccounts"`
	ProfileImageURL    string `json:"profileImageURL,omitempty"`
	SubscriptionExpiry string `json:"subscriptionExpiry,omitempty"`
}

// ToUserResponse converts a domain user to its API shape.
func ToUserResponse(user domain.User) UserResponse {
	response := UserResponse{
		UserID:            user.UserID,
		Name:              user.Name,
		Email:             user.Email,
		Phone:             user.Phone,
		SubscriptionPlan:  string(user.SubscriptionPlan),
		ConnectedAccounts: user.ConnectedAccounts,
		ProfileImageURL:   user.ProfileImageURL,
	}
	if user.SubscriptionExpiry != nil {
		response.SubscriptionExpiry = user.SubscriptionExpiry.Format("2006-01-02T15:04:05Z07:00")
	}
	return response
}
