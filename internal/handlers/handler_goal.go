package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/floner-app/floner_backend/internal/core/ports/services"
	"github.com/floner-app/floner_backend/internal/dto"
	"github.com/floner-app/floner_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// goalHandler handles HTTP requests for savings goals.
type goalHandler struct {
	goalService portssvc.GoalSvc
}

func newGoalHandler(gs portssvc.GoalSvc) *goalHandler {
	return &goalHandler{goalService: gs}
}

// registerGoalRoutes registers all goal routes.
func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvc) {
	h := newGoalHandler(goalService)

	goals := rg.Group("/goals")
	{
		goals.GET("", h.listGoals)
		goals.POST("", h.createGoal)
		goals.POST("/:id/funds", h.addFunds)
	}
}

// listGoals godoc
// @Summary List savings goals
// @Description Returns every goal with progress, days-left and deadline reminder fields. Pro plan or higher.
// @Tags goals
// @Produce json
// @Success 200 {array} dto.GoalResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	statuses, err := h.goalService.ListGoals(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list goals")
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponses(statuses))
}

// createGoal godoc
// @Summary Create a savings goal
// @Description Adds a savings goal with zero saved. Pro plan or higher.
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create goal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create goal")
		return
	}

	logger.Info("Goal created", slog.String("goal_id", goal.GoalID))
	c.JSON(http.StatusCreated, gin.H{"goalID": goal.GoalID, "title": goal.Title})
}

// addFunds godoc
// @Summary Add funds to a goal
// @Description Increases a goal's saved amount. Goals can be overfunded past the target.
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param funds body dto.AddFundsRequest true "Amount to add"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /goals/{id}/funds [post]
func (h *goalHandler) addFunds(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.AddFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for add funds", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	goal, err := h.goalService.AddFunds(c.Request.Context(), userID, c.Param("id"), req.Amount)
	if err != nil {
		respondServiceError(c, err, "Failed to add funds")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"goalID":  goal.GoalID,
		"current": goal.Current.Round(2).String(),
	})
}
