package impl

import (
	"context"
	"testing"

	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	"tally/internal/domain/service"
	mockRepo "tally/internal/mocks/repository"
	mockService "tally/internal/mocks/service"
	"tally/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// programServiceFixtures holds all test dependencies for back-office tests.
type programServiceFixtures struct {
	service       usecase.ProgramUsecase
	programRepo   *mockRepo.MockProgramRepository
	qrcodeService *mockService.MockQRCodeService
}

func createTestProgramService(t *testing.T) programServiceFixtures {
	programRepo := mockRepo.NewMockProgramRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)

	svc := NewProgramService(ProgramServiceParams{
		ProgramRepo:   programRepo,
		QRCodeService: qrcodeService,
	})

	return programServiceFixtures{
		service:       svc,
		programRepo:   programRepo,
		qrcodeService: qrcodeService,
	}
}

func TestProgramService_CreateProgram_Success(t *testing.T) {
	fx := createTestProgramService(t)

	ctx := context.Background()
	businessID := uuid.New()
	input := &usecase.CreateProgramInput{
		Name:              "早餐集點卡",
		RewardThreshold:   8,
		RewardDescription: "免費咖啡一杯",
		StampLabel:        "咖啡",
	}

	fx.programRepo.EXPECT().
		CreateProgram(ctx, mock.AnythingOfType("*entity.LoyaltyProgram")).
		Return(nil)

	program, err := fx.service.CreateProgram(ctx, businessID, input)

	require.NoError(t, err)
	assert.Equal(t, businessID, program.BusinessID)
	assert.Equal(t, entity.ProgramStatusDraft, program.Status)
	assert.Equal(t, entity.EarnModePerVisit, program.EarnMode)
	assert.NotEmpty(t, program.PublicID)
	assert.NotEmpty(t, program.EarnToken)
}

func TestProgramService_CreateProgram_RejectsZeroThreshold(t *testing.T) {
	fx := createTestProgramService(t)

	ctx := context.Background()
	input := &usecase.CreateProgramInput{Name: "x", RewardThreshold: 0}

	program, err := fx.service.CreateProgram(ctx, uuid.New(), input)

	require.Error(t, err)
	assert.Nil(t, program)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRewardThreshold))
}

func TestProgramService_CreateProgram_RejectsNegativeLimits(t *testing.T) {
	fx := createTestProgramService(t)

	ctx := context.Background()
	input := &usecase.CreateProgramInput{Name: "x", RewardThreshold: 5, MaxEarnsPerDay: -1}

	program, err := fx.service.CreateProgram(ctx, uuid.New(), input)

	require.Error(t, err)
	assert.Nil(t, program)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProgramService_GetProgram_OwnershipEnforced(t *testing.T) {
	fx := createTestProgramService(t)

	ctx := context.Background()
	program := activeProgram(8)

	fx.programRepo.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil)

	got, err := fx.service.GetProgram(ctx, uuid.New(), program.PublicID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrProgramOwnershipViolation))
}

func TestProgramService_GetProgram_Success(t *testing.T) {
	fx := createTestProgramService(t)

	ctx := context.Background()
	program := activeProgram(8)

	fx.programRepo.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil)

	got, err := fx.service.GetProgram(ctx, program.BusinessID, program.PublicID)

	require.NoError(t, err)
	assert.Equal(t, program, got)
}

func TestProgramService_UpdateProgram_AppliesPartialInput(t *testing.T) {
	fx := createTestProgramService(t)

	ctx := context.Background()
	program := activeProgram(8)
	newThreshold := 10

	fx.programRepo.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil)
	fx.programRepo.EXPECT().
		UpdateProgramConfig(ctx, mock.AnythingOfType("*entity.LoyaltyProgram")).
		Run(func(_ context.Context, updated *entity.LoyaltyProgram) {
			assert.Equal(t, 10, updated.RewardThreshold)
			assert.Equal(t, "早餐集點卡", updated.Name)
		}).
		Return(nil)

	updated, err := fx.service.UpdateProgram(ctx, program.BusinessID, program.PublicID, &usecase.UpdateProgramInput{
		RewardThreshold: &newThreshold,
	})

	require.NoError(t, err)
	assert.Equal(t, 10, updated.RewardThreshold)
}

func TestProgramService_UpdateProgram_RejectsBadThreshold(t *testing.T) {
	fx := createTestProgramService(t)

	ctx := context.Background()
	program := activeProgram(8)
	zero := 0

	fx.programRepo.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil)

	updated, err := fx.service.UpdateProgram(ctx, program.BusinessID, program.PublicID, &usecase.UpdateProgramInput{
		RewardThreshold: &zero,
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRewardThreshold))
}

func TestProgramService_UpdateStatus_DraftActivates(t *testing.T) {
	fx := createTestProgramService(t)

	ctx := context.Background()
	program := activeProgram(8)
	program.Status = entity.ProgramStatusDraft

	fx.programRepo.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil)
	fx.programRepo.EXPECT().
		UpdateProgramStatus(ctx, program.ID, entity.ProgramStatusActive).
		Return(nil)

	err := fx.service.UpdateStatus(ctx, program.PublicID, entity.ProgramStatusActive)

	require.NoError(t, err)
}

func TestProgramService_UpdateStatus_ArchivedIsTerminal(t *testing.T) {
	fx := createTestProgramService(t)

	ctx := context.Background()
	program := activeProgram(8)
	program.Status = entity.ProgramStatusArchived

	fx.programRepo.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil)

	err := fx.service.UpdateStatus(ctx, program.PublicID, entity.ProgramStatusActive)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestProgramService_UpdateStatus_DraftCannotPause(t *testing.T) {
	fx := createTestProgramService(t)

	ctx := context.Background()
	program := activeProgram(8)
	program.Status = entity.ProgramStatusDraft

	fx.programRepo.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil)

	err := fx.service.UpdateStatus(ctx, program.PublicID, entity.ProgramStatusPaused)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestProgramService_UpdateStatus_UnknownStatus(t *testing.T) {
	fx := createTestProgramService(t)

	ctx := context.Background()

	err := fx.service.UpdateStatus(ctx, "p_7f3k9x", entity.ProgramStatus("retired"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProgramService_RotateEarnToken_ReplacesToken(t *testing.T) {
	fx := createTestProgramService(t)

	ctx := context.Background()
	program := activeProgram(8)
	oldToken := program.EarnToken

	fx.programRepo.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil)
	fx.programRepo.EXPECT().
		UpdateEarnToken(ctx, program.ID, mock.AnythingOfType("string")).
		Return(nil)

	rotated, err := fx.service.RotateEarnToken(ctx, program.BusinessID, program.PublicID)

	require.NoError(t, err)
	assert.NotEqual(t, oldToken, rotated.EarnToken)
	assert.NotEmpty(t, rotated.EarnToken)
}

func TestProgramService_RenderProgramQR_EarnMode(t *testing.T) {
	fx := createTestProgramService(t)

	ctx := context.Background()
	program := activeProgram(8)
	scanURL := "https://tally.example.com/s/" + program.PublicID + "?mode=earn&token=" + program.EarnToken
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.programRepo.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil)
	fx.qrcodeService.EXPECT().
		BuildScanURL(program.PublicID, program.EarnToken, service.ScanModeEarn).
		Return(scanURL, nil)
	fx.qrcodeService.EXPECT().
		RenderPNG(scanURL).
		Return(png, nil)

	got, err := fx.service.RenderProgramQR(ctx, program.BusinessID, program.PublicID, service.ScanModeEarn)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestProgramService_ListPrograms(t *testing.T) {
	fx := createTestProgramService(t)

	ctx := context.Background()
	businessID := uuid.New()
	programs := []*entity.LoyaltyProgram{activeProgram(5), activeProgram(8)}

	fx.programRepo.EXPECT().
		FindProgramsByBusiness(ctx, businessID).
		Return(programs, nil)

	got, err := fx.service.ListPrograms(ctx, businessID)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestProgramService_UpdateStatus_NotFound(t *testing.T) {
	fx := createTestProgramService(t)

	ctx := context.Background()

	fx.programRepo.EXPECT().
		FindProgramByPublicID(ctx, "p_missing").
		Return(nil, repository.ErrProgramNotFound)

	err := fx.service.UpdateStatus(ctx, "p_missing", entity.ProgramStatusActive)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProgramNotFound))
}
