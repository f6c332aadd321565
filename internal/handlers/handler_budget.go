package handlers

import (
	"log/slog"
	"net/http"

	"github.com/floner-app/floner_backend/internal/core/domain"
	portssvc "github.com/floner-app/floner_backend/internal/core/ports/services"
	"github.com/floner-app/floner_backend/internal/dto"
	"github.com/floner-app/floner_backend/internal/middleware"
	"github.com/floner-app/floner_backend/internal/utils/finmath"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests for budget categories.
type budgetHandler struct {
	budgetService portssvc.BudgetSvc
}

func newBudgetHandler(bs portssvc.BudgetSvc) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// registerBudgetRoutes registers all budget routes.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvc) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets")
	{
		budgets.GET("", h.listBudgets)
		budgets.POST("", h.createBudget)
		budgets.POST("/:id/spend", h.recordSpend)
	}
}

// listBudgets godoc
// @Summary List budget categories
// @Description Returns every budget category with utilization bands plus the overall position. Pro plan or higher.
// @Tags budgets
// @Produce json
// @Success 200 {object} dto.BudgetOverviewResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	overview, err := h.budgetService.ListBudgets(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list budgets")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetOverviewResponse(*overview))
}

// createBudget godoc
// @Summary Create a budget category
// @Description Adds a budget category with zero spend. Pro plan or higher.
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.BudgetCategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create budget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create budget")
		return
	}

	status := dto.ToBudgetCategoryResponse(statusForNewBudget(*budget))
	c.JSON(http.StatusCreated, status)
}

// recordSpend godoc
// @Summary Record spend against a category
// @Description Increases a category's spent amount. Spend is monotonic; it never decreases.
// @Tags budgets
// @Accept json
// @Produce json
// @Param id path string true "Budget category ID"
// @Param spend body dto.RecordSpendRequest true "Spend amount"
// @Success 200 {object} dto.BudgetCategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets/{id}/spend [post]
func (h *budgetHandler) recordSpend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.RecordSpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for record spend", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	budget, err := h.budgetService.RecordSpend(c.Request.Context(), userID, c.Param("id"), req.Amount)
	if err != nil {
		respondServiceError(c, err, "Failed to record spend")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetCategoryResponse(statusForNewBudget(*budget)))
}

// statusForNewBudget derives the display fields for a single just-written
// category, mirroring what ListBudgets computes for the whole set.
func statusForNewBudget(budget domain.BudgetCategory) domain.BudgetCategoryStatus {
	utilization := finmath.Utilization(budget.Spent, budget.Budgeted)
	return domain.BudgetCategoryStatus{
		BudgetCategory: budget,
		Remaining:      budget.Budgeted.Sub(budget.Spent),
		Utilization:    utilization,
		Band:           finmath.CategoryBudgetBand(utilization),
	}
}
