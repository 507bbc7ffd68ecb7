package impl

import (
	"context"

	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	"tally/internal/domain/service"
	"tally/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type programService struct {
	programRepo   repository.ProgramRepository
	qrcodeService service.QRCodeService
}

// ProgramServiceParams holds dependencies for the program service, injected by Fx.
type ProgramServiceParams struct {
	fx.In

	ProgramRepo   repository.ProgramRepository
	QRCodeService service.QRCodeService
}

// NewProgramService creates the owner/admin back-office service.
func NewProgramService(params ProgramServiceParams) usecase.ProgramUsecase {
	return &programService{
		programRepo:   params.ProgramRepo,
		qrcodeService: params.QRCodeService,
	}
}

// CreateProgram mints a public ID and earn token and creates the program in draft.
func (s *programService) CreateProgram(ctx context.Context, businessID uuid.UUID, input *usecase.CreateProgramInput) (*entity.LoyaltyProgram, error) {
	if input.RewardThreshold < 1 {
		return nil, domainerrors.ErrInvalidRewardThreshold
	}
	if input.MaxEarnsPerDay < 0 || input.MinGapMinutes < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rate limits must not be negative")
	}

	publicID, err := mintPublicID()
	if err != nil {
		return nil, domainerrors.ErrProgramCreationFailed.WrapMessage("failed to mint public id")
	}

	earnToken, err := mintEarnToken()
	if err != nil {
		return nil, domainerrors.ErrProgramCreationFailed.WrapMessage("failed to mint earn token")
	}

	earnMode := input.EarnMode
	if earnMode == "" {
		earnMode = entity.EarnModePerVisit
	}

	program := &entity.LoyaltyProgram{
		PublicID:          publicID,
		BusinessID:        businessID,
		Name:              input.Name,
		RewardThreshold:   input.RewardThreshold,
		RewardDescription: input.RewardDescription,
		StampLabel:        input.StampLabel,
		EarnMode:          earnMode,
		MaxEarnsPerDay:    input.MaxEarnsPerDay,
		MinGapMinutes:     input.MinGapMinutes,
		EarnToken:         earnToken,
		Status:            entity.ProgramStatusDraft,
	}

	if err := s.programRepo.CreateProgram(ctx, program); err != nil {
		return nil, err
	}

	return program, nil
}

// GetProgram returns a program owned by the business.
func (s *programService) GetProgram(ctx context.Context, businessID uuid.UUID, publicID string) (*entity.LoyaltyProgram, error) {
	return s.findOwnedProgram(ctx, businessID, publicID)
}

// ListPrograms returns the business's programs, newest first.
func (s *programService) ListPrograms(ctx context.Context, businessID uuid.UUID) ([]*entity.LoyaltyProgram, error) {
	programs, err := s.programRepo.FindProgramsByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list programs")
	}

	return programs, nil
}

// UpdateProgram applies owner-editable configuration changes.
func (s *programService) UpdateProgram(ctx context.Context, businessID uuid.UUID, publicID string, input *usecase.UpdateProgramInput) (*entity.LoyaltyProgram, error) {
	program, err := s.findOwnedProgram(ctx, businessID, publicID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		program.Name = *input.Name
	}
	if input.RewardThreshold != nil {
		if *input.RewardThreshold < 1 {
			return nil, domainerrors.ErrInvalidRewardThreshold
		}
		program.RewardThreshold = *input.RewardThreshold
	}
	if input.RewardDescription != nil {
		program.RewardDescription = *input.RewardDescription
	}
	if input.StampLabel != nil {
		program.StampLabel = *input.StampLabel
	}
	if input.EarnMode != nil {
		if *input.EarnMode != entity.EarnModePerVisit && *input.EarnMode != entity.EarnModePerPurchase {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown earn mode")
		}
		program.EarnMode = *input.EarnMode
	}
	if input.MaxEarnsPerDay != nil {
		if *input.MaxEarnsPerDay < 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("daily cap must not be negative")
		}
		program.MaxEarnsPerDay = *input.MaxEarnsPerDay
	}
	if input.MinGapMinutes != nil {
		if *input.MinGapMinutes < 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("minimum gap must not be negative")
		}
		program.MinGapMinutes = *input.MinGapMinutes
	}

	if err := s.programRepo.UpdateProgramConfig(ctx, program); err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			return nil, domainerrors.ErrProgramNotFound
		}

		return nil, err
	}

	return program, nil
}

// UpdateStatus transitions the program lifecycle state. Archived is terminal;
// programs are never hard-deleted so the ledger history stays intact.
func (s *programService) UpdateStatus(ctx context.Context, publicID string, status entity.ProgramStatus) error {
	if !status.Valid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown program status")
	}

	program, err := s.programRepo.FindProgramByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			return domainerrors.ErrProgramNotFound
		}

		return errors.Wrap(err, "failed to resolve program")
	}

	if !validStatusTransition(program.Status, status) {
		return domainerrors.ErrInvalidStatusTransition.WrapMessage(
			string(program.Status) + " -> " + string(status))
	}

	if err := s.programRepo.UpdateProgramStatus(ctx, program.ID, status); err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			return domainerrors.ErrProgramNotFound
		}

		return err
	}

	return nil
}

// RotateEarnToken replaces the earn token, invalidating printed codes.
func (s *programService) RotateEarnToken(ctx context.Context, businessID uuid.UUID, publicID string) (*entity.LoyaltyProgram, error) {
	program, err := s.findOwnedProgram(ctx, businessID, publicID)
	if err != nil {
		return nil, err
	}

	earnToken, err := mintEarnToken()
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("failed to mint earn token")
	}

	if err := s.programRepo.UpdateEarnToken(ctx, program.ID, earnToken); err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			return nil, domainerrors.ErrProgramNotFound
		}

		return nil, err
	}

	program.EarnToken = earnToken

	return program, nil
}

// RenderProgramQR renders the printable earn or join QR code as PNG.
func (s *programService) RenderProgramQR(ctx context.Context, businessID uuid.UUID, publicID string, mode service.ScanMode) ([]byte, error) {
	program, err := s.findOwnedProgram(ctx, businessID, publicID)
	if err != nil {
		return nil, err
	}

	scanURL, err := s.qrcodeService.BuildScanURL(program.PublicID, program.EarnToken, mode)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("failed to build scan url")
	}

	png, err := s.qrcodeService.RenderPNG(scanURL)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("failed to render qr code")
	}

	return png, nil
}

// findOwnedProgram resolves a program and enforces ownership.
func (s *programService) findOwnedProgram(ctx context.Context, businessID uuid.UUID, publicID string) (*entity.LoyaltyProgram, error) {
	program, err := s.programRepo.FindProgramByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			return nil, domainerrors.ErrProgramNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve program")
	}

	if program.BusinessID != businessID {
		return nil, domainerrors.ErrProgramOwnershipViolation
	}

	return program, nil
}

// validStatusTransition encodes the program lifecycle: draft activates,
// active and paused toggle, anything can be archived, archived stays archived.
func validStatusTransition(from, to entity.ProgramStatus) bool {
	if from == to {
		return true
	}
	if from == entity.ProgramStatusArchived {
		return false
	}
	if to == entity.ProgramStatusArchived {
		return true
	}

	switch from {
	case entity.ProgramStatusDraft:
		return to == entity.ProgramStatusActive
	case entity.ProgramStatusActive:
		return to == entity.ProgramStatusPaused
	case entity.ProgramStatusPaused:
		return to == entity.ProgramStatusActive
	}

	return false
}
