package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/floner-app/floner_backend/internal/core/ports/services"
	"github.com/floner-app/floner_backend/internal/dto"
	"github.com/floner-app/floner_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// taxSavingTips is static planning guidance shown alongside every estimate.
var taxSavingTips = []string{
	"Invest up to ₹1.5 lakh in ELSS, PPF or EPF to claim Section 80C deductions.",
	"Health insurance premiums qualify for Section 80D deductions up to ₹25,000.",
	"Claim HRA exemption if you live in rented accommodation.",
	"Use LTA for travel expenses twice in a block of four years.",
	"An NPS contribution gives an extra ₹50,000 deduction under 80CCD(1B).",
}

// taxHandler handles HTTP requests for the income tax calculator.
type taxHandler struct {
	taxService portssvc.TaxSvc
}

func newTaxHandler(ts portssvc.TaxSvc) *taxHandler {
	return &taxHandler{taxService: ts}
}

// registerTaxRoutes registers all tax calculator routes.
func registerTaxRoutes(rg *gin.RouterGroup, taxService portssvc.TaxSvc) {
	h := newTaxHandler(taxService)

	tax := rg.Group("/tax")
	{
		tax.POST("/calculate", h.calculateTax)
		tax.GET("/prefill", h.getPrefill)
	}
}

// calculateTax godoc
// @Summary Estimate income tax
// @Description Runs the FY 2023-24 old regime estimate over the supplied figures. Pro plan or higher. Nothing is persisted.
// @Tags tax
// @Accept json
// @Produce json
// @Param input body dto.CalculateTaxRequest true "Income and deductions"
// @Success 200 {object} dto.CalculateTaxResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tax/calculate [post]
func (h *taxHandler) calculateTax(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CalculateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for tax calculation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.taxService.Calculate(c.Request.Context(), userID, req.ToTaxInput())
	if err != nil {
		respondServiceError(c, err, "Failed to calculate tax")
		return
	}

	c.JSON(http.StatusOK, dto.CalculateTaxResponse{
		Breakdown: dto.ToTaxBreakdownResponse(*result),
		Tips:      taxSavingTips,
	})
}

// getPrefill godoc
// @Summary Suggest annual income
// @Description Suggests an annual income for the calculator form by annualizing the ledger's income total.
// @Tags tax
// @Produce json
// @Success 200 {object} dto.TaxPrefillResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tax/prefill [get]
func (h *taxHandler) getPrefill(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	income, err := h.taxService.PrefillAnnualIncome(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to derive income suggestion")
		return
	}

	c.JSON(http.StatusOK, dto.TaxPrefillResponse{AnnualIncome: income.Round(2)})
}
