// Package handler contains the Echo handlers for the API server.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tally/internal/delivery/http/response"
	"tally/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LoyaltyHandlerParams holds dependencies for LoyaltyHandler, injected by Fx.
type LoyaltyHandlerParams struct {
	fx.In

	StampLedgerUC usecase.StampLedgerUsecase
	JoinUC        usecase.JoinUsecase
	Logger        *slog.Logger
}

// LoyaltyHandler holds dependencies for member-facing loyalty handlers.
// These routes are unauthenticated: the earn token proves a scan, and the
// wallet pass ID identifies the member.
type LoyaltyHandler struct {
	stampLedgerUC usecase.StampLedgerUsecase
	joinUC        usecase.JoinUsecase
	logger        *slog.Logger
}

// NewLoyaltyHandler is the constructor for LoyaltyHandler
func NewLoyaltyHandler(params LoyaltyHandlerParams) *LoyaltyHandler {
	return &LoyaltyHandler{
		stampLedgerUC: params.StampLedgerUC,
		joinUC:        params.JoinUC,
		logger:        params.Logger,
	}
}

// EarnRequest represents the request body for earning a stamp
type EarnRequest struct {
	Token        string `json:"token" validate:"required"`
	WalletPassID string `json:"wallet_pass_id" validate:"required"`
	Source       string `json:"source,omitempty"`
}

// ScanRequest represents the request body for dispatching a scanned QR URL
type ScanRequest struct {
	URL          string `json:"url" validate:"required"`
	WalletPassID string `json:"wallet_pass_id" validate:"required"`
}

// JoinRequest represents the request body for joining a program
type JoinRequest struct {
	WalletPassID string     `json:"wallet_pass_id" validate:"required"`
	FirstName    string     `json:"first_name,omitempty"`
	LastName     string     `json:"last_name,omitempty"`
	Email        string     `json:"email,omitempty" validate:"omitempty,email"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
}

// RetryWalletPassRequest represents the request body for re-provisioning a pass
type RetryWalletPassRequest struct {
	WalletPassID string `json:"wallet_pass_id" validate:"required"`
}

// Earn handles a single stamp earn for a scanned program QR code.
// Declined earns are expected outcomes and come back as 200s with a reason;
// only infrastructure trouble is an error.
func (h *LoyaltyHandler) Earn(c echo.Context) error {
	var req EarnRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid earn input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.stampLedgerUC.Earn(c.Request().Context(), c.Param("publicId"), req.Token, req.WalletPassID, req.Source)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Earn processed")
}

// GetMembershipStatus handles retrieving the member-facing balance view
func (h *LoyaltyHandler) GetMembershipStatus(c echo.Context) error {
	walletPassID := c.QueryParam("wallet_pass_id")
	if walletPassID == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "wallet_pass_id is required")
	}

	status, err := h.stampLedgerUC.GetMembershipStatus(c.Request().Context(), c.Param("publicId"), walletPassID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status, "Membership status retrieved")
}

// Scan handles dispatching a scanned QR payload URL
func (h *LoyaltyHandler) Scan(c echo.Context) error {
	var req ScanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.stampLedgerUC.Scan(c.Request().Context(), req.URL, req.WalletPassID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Scan processed")
}

// Join handles enrolling a wallet pass in a program
func (h *LoyaltyHandler) Join(c echo.Context) error {
	var req JoinRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid join input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	var profile *usecase.JoinProfile
	if req.FirstName != "" || req.LastName != "" || req.Email != "" || req.DateOfBirth != nil {
		profile = &usecase.JoinProfile{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Email:       req.Email,
			DateOfBirth: req.DateOfBirth,
		}
	}

	result, err := h.joinUC.Join(c.Request().Context(), c.Param("publicId"), req.WalletPassID, profile)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	statusCode := http.StatusCreated
	if !result.Success || result.AlreadyMember {
		statusCode = http.StatusOK
	}

	return response.Success(c, statusCode, result, "Join processed")
}

// RetryWalletPass handles re-publishing the pass provision event
func (h *LoyaltyHandler) RetryWalletPass(c echo.Context) error {
	var req RetryWalletPassRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid retry input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.joinUC.RetryWalletPass(c.Request().Context(), c.Param("publicId"), req.WalletPassID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"status": "queued"}, "Wallet pass provisioning queued")
}
