package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/floner-app/floner_backend/internal/core/ports/services"
	"github.com/floner-app/floner_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// Default size of the top-expense-categories ranking.
const defaultTopCategories = 5

// reportingHandler handles HTTP requests for ledger-derived reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers all reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/top-categories", h.getTopCategories)
	}
}

// getSummary godoc
// @Summary Financial summary
// @Description Returns the dashboard overview derived from the caller's ledger: totals, balance, savings rate and health score.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.FinancialSummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.Summary(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to derive financial summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialSummaryResponse(*summary))
}

// getTopCategories godoc
// @Summary Top expense categories
// @Description Ranks the caller's expense categories by total, highest first.
// @Tags reports
// @Produce json
// @Param limit query int false "Number of entries" default(5)
// @Success 200 {array} dto.CategoryExpenseResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/top-categories [get]
func (h *reportingHandler) getTopCategories(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultTopCategories)))
	if err != nil || limit <= 0 {
		limit = defaultTopCategories
	}

	ranking, err := h.reportingService.TopExpenseCategories(c.Request.Context(), userID, limit)
	if err != nil {
		respondServiceError(c, err, "Failed to rank expense categories")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryExpenseResponses(ranking))
}
