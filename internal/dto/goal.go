package dto

import (
	"github.com/floner-app/floner_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest is the payload for adding a savings goal.
type CreateGoalRequest struct {
	Title    string          `json:"title" binding:"required"`
	Icon     string          `json:"icon"`
	Target   decimal.Decimal `json:"target" binding:"required"`
	Deadline string          `json:"deadline" binding:"required,datetime=2006-01-02"`
}

// AddFundsRequest is the payload for adding funds to a goal.
type AddFundsRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// GoalResponse is a goal with its derived display fields. DisplayProgress is
// clamped at 100 for progress bars; Progress itself is not.
type GoalResponse struct {
	GoalID          string          `json:"goalID"`
	Title           string          `json:"title"`
	Icon            string          `json:"icon"`
	Target          decimal.Decimal `json:"target"`
	Current         decimal.Decimal `json:"current"`
	Deadline        string          `json:"deadline"`
	Progress        decimal.Decimal `json:"progress"`
	DisplayProgress decimal.Decimal `json:"displayProgress"`
	Remaining       decimal.Decimal `json:"remaining"`
	DaysLeft        int             `json:"daysLeft"`
	DeadlinePassed  bool            `json:"deadlinePassed"`
	RemindDeadline  bool            `json:"remindDeadline"`
}

// ToGoalResponse converts a derived goal status to its API shape.
func ToGoalResponse(status domain.GoalStatus) GoalResponse {
	progress := status.Progress.Round(2)
	displayProgress := progress
	if displayProgress.GreaterThan(decimal.NewFromInt(100)) {
		displayProgress = decimal.NewFromInt(100)
	}
	return GoalResponse{
		GoalID:          status.GoalID,
		Title:           status.Title,
		Icon:            status.Icon,
		Target:          status.Target.Round(2),
		Current:         status.Current.Round(2),
		Deadline:        status.Deadline.Format("2006-01-02"),
		Progress:        progress,
		DisplayProgress: displayProgress,
		Remaining:       status.Remaining.Round(2),
		DaysLeft:        status.DaysLeft,
		DeadlinePassed:  status.DeadlinePassed,
		RemindDeadline:  status.RemindDeadline,
	}
}

// ToGoalResponses converts a list of goal statuses to their API shape.
func ToGoalResponses(statuses []domain.GoalStatus) []GoalResponse {
	responses := make([]GoalResponse, len(statuses))
	for i, status := range statuses {
		responses[i] = ToGoalResponse(status)
	}
	return responses
}
