package handler

import (
	"log/slog"
	"net/http"

	"tally/internal/delivery/http/middleware"
	"tally/internal/delivery/http/response"
	"tally/internal/domain/entity"
	"tally/internal/domain/service"
	"tally/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProgramHandlerParams holds dependencies for ProgramHandler, injected by Fx.
type ProgramHandlerParams struct {
	fx.In

	ProgramUC usecase.ProgramUsecase
	Logger    *slog.Logger
}

// ProgramHandler serves the owner/admin back-office program surface.
type ProgramHandler struct {
	programUC usecase.ProgramUsecase
	logger    *slog.Logger
}

// NewProgramHandler is the constructor for ProgramHandler
func NewProgramHandler(params ProgramHandlerParams) *ProgramHandler {
	return &ProgramHandler{
		programUC: params.ProgramUC,
		logger:    params.Logger,
	}
}

// CreateProgramRequest represents the request body for creating a program
type CreateProgramRequest struct {
	Name              string `json:"name" validate:"required,max=100"`
	RewardThreshold   int    `json:"reward_threshold" validate:"required,min=1"`
	RewardDescription string `json:"reward_description" validate:"required,max=200"`
	StampLabel        string `json:"stamp_label,omitempty" validate:"omitempty,max=50"`
	EarnMode          string `json:"earn_mode,omitempty" validate:"omitempty,oneof=per_visit per_purchase"`
	MaxEarnsPerDay    int    `json:"max_earns_per_day,omitempty" validate:"omitempty,min=0"`
	MinGapMinutes     int    `json:"min_gap_minutes,omitempty" validate:"omitempty,min=0"`
}

// UpdateProgramRequest represents the request body for updating a program.
// Absent fields leave the stored configuration untouched.
type UpdateProgramRequest struct {
	Name              *string `json:"name,omitempty" validate:"omitempty,max=100"`
	RewardThreshold   *int    `json:"reward_threshold,omitempty"`
	RewardDescription *string `json:"reward_description,omitempty" validate:"omitempty,max=200"`
	StampLabel        *string `json:"stamp_label,omitempty" validate:"omitempty,max=50"`
	EarnMode          *string `json:"earn_mode,omitempty" validate:"omitempty,oneof=per_visit per_purchase"`
	MaxEarnsPerDay    *int    `json:"max_earns_per_day,omitempty"`
	MinGapMinutes     *int    `json:"min_gap_minutes,omitempty"`
}

// UpdateStatusRequest represents the request body for a lifecycle transition
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft active paused archived"`
}

// CreateProgram handles creating a new loyalty program in draft
func (h *ProgramHandler) CreateProgram(c echo.Context) error {
	businessID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Account ID missing from context")
	}

	var req CreateProgramRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid program input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	program, err := h.programUC.CreateProgram(c.Request().Context(), businessID, &usecase.CreateProgramInput{
		Name:              req.Name,
		RewardThreshold:   req.RewardThreshold,
		RewardDescription: req.RewardDescription,
		StampLabel:        req.StampLabel,
		EarnMode:          entity.EarnMode(req.EarnMode),
		MaxEarnsPerDay:    req.MaxEarnsPerDay,
		MinGapMinutes:     req.MinGapMinutes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, program, "Program created")
}

// GetProgram handles retrieving a single program owned by the business
func (h *ProgramHandler) GetProgram(c echo.Context) error {
	businessID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Account ID missing from context")
	}

	program, err := h.programUC.GetProgram(c.Request().Context(), businessID, c.Param("publicId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, program, "Program retrieved")
}

// ListPrograms handles listing the business's programs
func (h *ProgramHandler) ListPrograms(c echo.Context) error {
	businessID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Account ID missing from context")
	}

	programs, err := h.programUC.ListPrograms(c.Request().Context(), businessID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, programs, "Programs retrieved")
}

// UpdateProgram handles partial configuration updates
func (h *ProgramHandler) UpdateProgram(c echo.Context) error {
	businessID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Account ID missing from context")
	}

	var req UpdateProgramRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid program input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateProgramInput{
		Name:              req.Name,
		RewardThreshold:   req.RewardThreshold,
		RewardDescription: req.RewardDescription,
		StampLabel:        req.StampLabel,
		MaxEarnsPerDay:    req.MaxEarnsPerDay,
		MinGapMinutes:     req.MinGapMinutes,
	}
	if req.EarnMode != nil {
		mode := entity.EarnMode(*req.EarnMode)
		input.EarnMode = &mode
	}

	program, err := h.programUC.UpdateProgram(c.Request().Context(), businessID, c.Param("publicId"), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, program, "Program updated")
}

// UpdateStatus handles lifecycle transitions. Admin only.
func (h *ProgramHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.programUC.UpdateStatus(c.Request().Context(), c.Param("publicId"), entity.ProgramStatus(req.Status)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Program status updated")
}

// RotateEarnToken handles replacing the program's earn token
func (h *ProgramHandler) RotateEarnToken(c echo.Context) error {
	businessID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Account ID missing from context")
	}

	program, err := h.programUC.RotateEarnToken(c.Request().Context(), businessID, c.Param("publicId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, program, "Earn token rotated")
}

// RenderProgramQR handles rendering the printable earn or join QR code.
// Responds with the PNG bytes directly rather than the JSON envelope.
func (h *ProgramHandler) RenderProgramQR(c echo.Context) error {
	businessID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Account ID missing from context")
	}

	mode := service.ScanMode(c.QueryParam("mode"))
	if mode == "" {
		mode = service.ScanModeEarn
	}
	if mode != service.ScanModeEarn && mode != service.ScanModeJoin {
		return response.BadRequest(c, "VALIDATION_ERROR", "mode must be earn or join")
	}

	png, err := h.programUC.RenderProgramQR(c.Request().Context(), businessID, c.Param("publicId"), mode)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", `inline; filename="`+c.Param("publicId")+`-`+string(mode)+`.png"`)

	return c.Blob(http.StatusOK, "image/png", png)
}
