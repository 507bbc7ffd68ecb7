package usecase

import (
	"context"

	"tally/internal/domain/entity"
	"tally/internal/domain/service"

	"github.com/google/uuid"
)

// CreateProgramInput carries the owner-supplied fields for a new program.
type CreateProgramInput struct {
	Name              string
	RewardThreshold   int
	RewardDescription string
	StampLabel        string
	EarnMode          entity.EarnMode
	MaxEarnsPerDay    int
	MinGapMinutes     int
}

// UpdateProgramInput carries the owner-editable configuration. Nil pointers
// leave the corresponding field untouched.
type UpdateProgramInput struct {
	Name              *string
	RewardThreshold   *int
	RewardDescription *string
	StampLabel        *string
	EarnMode          *entity.EarnMode
	MaxEarnsPerDay    *int
	MinGapMinutes     *int
}

// ProgramUsecase is the owner/admin back-office surface.
type ProgramUsecase interface {
	// CreateProgram mints a public ID and earn token and creates the program in draft.
	CreateProgram(ctx context.Context, businessID uuid.UUID, input *CreateProgramInput) (*entity.LoyaltyProgram, error)

	// GetProgram returns a program owned by the business.
	GetProgram(ctx context.Context, businessID uuid.UUID, publicID string) (*entity.LoyaltyProgram, error)

	// ListPrograms returns the business's programs, newest first.
	ListPrograms(ctx context.Context, businessID uuid.UUID) ([]*entity.LoyaltyProgram, error)

	// UpdateProgram applies owner-editable configuration changes.
	UpdateProgram(ctx context.Context, businessID uuid.UUID, publicID string, input *UpdateProgramInput) (*entity.LoyaltyProgram, error)

	// UpdateStatus transitions the program lifecycle state. Admin only.
	UpdateStatus(ctx context.Context, publicID string, status entity.ProgramStatus) error

	// RotateEarnToken replaces the earn token, invalidating printed codes.
	RotateEarnToken(ctx context.Context, businessID uuid.UUID, publicID string) (*entity.LoyaltyProgram, error)

	// RenderProgramQR renders the printable earn or join QR code as PNG.
	RenderProgramQR(ctx context.Context, businessID uuid.UUID, publicID string, mode service.ScanMode) ([]byte, error)
}
