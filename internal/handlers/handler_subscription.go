package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/floner-app/floner_backend/internal/core/ports/services"
	"github.com/floner-app/floner_backend/internal/dto"
	"github.com/floner-app/floner_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// subscriptionHandler handles HTTP requests for subscription plans.
type subscriptionHandler struct {
	subscriptionService portssvc.SubscriptionSvc
}

func newSubscriptionHandler(ss portssvc.SubscriptionSvc) *subscriptionHandler {
	return &subscriptionHandler{subscriptionService: ss}
}

// registerSubscriptionRoutes registers all subscription routes.
func registerSubscriptionRoutes(rg *gin.RouterGroup, subscriptionService portssvc.SubscriptionSvc) {
	h := newSubscriptionHandler(subscriptionService)

	subscription := rg.Group("/subscription")
	{
		subscription.GET("/policy", h.getPolicy)
		subscription.POST("/upgrade", h.upgrade)
	}
}

// getPolicy godoc
// @Summary Effective plan policy
// @Description Returns the caller's effective feature policy after the expiry check.
// @Tags subscription
// @Produce json
// @Success 200 {object} dto.PlanPolicyResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /subscription/policy [get]
func (h *subscriptionHandler) getPolicy(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	policy, err := h.subscriptionService.EffectivePolicy(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve plan policy")
		return
	}

	c.JSON(http.StatusOK, dto.ToPlanPolicyResponse(policy))
}

// upgrade godoc
// @Summary Upgrade subscription plan
// @Description Switches the caller to a paid plan with a fresh 30 day term, applying any valid promo code.
// @Tags subscription
// @Accept json
// @Produce json
// @Param upgrade body dto.UpgradeSubscriptionRequest true "Target plan and optional promo code"
// @Success 200 {object} dto.UpgradeSubscriptionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /subscription/upgrade [post]
func (h *subscriptionHandler) upgrade(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpgradeSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for subscription upgrade", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, discount, err := h.subscriptionService.Upgrade(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to upgrade subscription")
		return
	}

	logger.Info("Subscription upgraded", slog.String("plan", string(user.SubscriptionPlan)))
	c.JSON(http.StatusOK, dto.UpgradeSubscriptionResponse{
		User:            dto.ToUserResponse(*user),
		DiscountPercent: discount,
	})
}
