package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target with a deadline.
type Goal struct {
	GoalID   string          `json:"goalID"` // Primary Key (UUID)
	Title    string          `json:"title"`
	Icon     string          `json:"icon"`    // Cosmetic
	Target   decimal.Decimal `json:"target"`  // > 0
	Current  decimal.Decimal `json:"current"` // >= 0
	Deadline time.Time       `json:"deadline"`
	AuditFields
}

// GoalStatus is a Goal with its derived display fields. Progress is not
// clamped; values above 100 mean the goal is overfunded. DeadlinePassed and
// RemindDeadline are mutually exclusive.
type GoalStatus struct {
	Goal
	Progress       decimal.Decimal `json:"progress"`  // current/target*100, 0 when target is 0
	Remaining      decimal.Decimal `json:"remaining"` // target - current
	DaysLeft       int             `json:"daysLeft"`  // ceiling of whole days until deadline
	DeadlinePassed bool            `json:"deadlinePassed"`
	RemindDeadline bool            `json:"remindDeadline"` // ultra plan only, 0 < daysLeft <= 30
}
