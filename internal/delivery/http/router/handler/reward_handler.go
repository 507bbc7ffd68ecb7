package handler

import (
	"log/slog"
	"net/http"

	"tally/internal/delivery/http/response"
	"tally/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RewardHandlerParams holds dependencies for RewardHandler, injected by Fx.
type RewardHandlerParams struct {
	fx.In

	RewardUC usecase.RewardUsecase
	Logger   *slog.Logger
}

// RewardHandler serves reward lookup and counter redemption, keyed by the
// membership ID shown on the member's pass.
type RewardHandler struct {
	rewardUC usecase.RewardUsecase
	logger   *slog.Logger
}

// NewRewardHandler is the constructor for RewardHandler
func NewRewardHandler(params RewardHandlerParams) *RewardHandler {
	return &RewardHandler{
		rewardUC: params.RewardUC,
		logger:   params.Logger,
	}
}

// GetAvailableReward handles looking up the open redemption for a membership
func (h *RewardHandler) GetAvailableReward(c echo.Context) error {
	membershipID, err := uuid.Parse(c.Param("membershipId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid membership ID format")
	}

	redemption, err := h.rewardUC.GetAvailableReward(c.Request().Context(), membershipID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if redemption == nil {
		return response.Success(c, http.StatusOK, map[string]bool{"available": false}, "No reward available")
	}

	return response.Success(c, http.StatusOK, redemption, "Reward available")
}

// Redeem handles closing the open redemption at the counter
func (h *RewardHandler) Redeem(c echo.Context) error {
	membershipID, err := uuid.Parse(c.Param("membershipId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid membership ID format")
	}

	result, err := h.rewardUC.Redeem(c.Request().Context(), membershipID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Redemption processed")
}

// GetRedemptionHistory handles listing a membership's past redemptions
func (h *RewardHandler) GetRedemptionHistory(c echo.Context) error {
	membershipID, err := uuid.Parse(c.Param("membershipId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid membership ID format")
	}

	redemptions, err := h.rewardUC.GetRedemptionHistory(c.Request().Context(), membershipID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, redemptions, "Redemption history retrieved")
}
