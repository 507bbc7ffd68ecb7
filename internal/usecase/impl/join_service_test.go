package impl

import (
	"context"
	"testing"
	"time"

	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	"tally/internal/domain/service"
	mockRepo "tally/internal/mocks/repository"
	mockService "tally/internal/mocks/service"
	"tally/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// joinServiceFixtures holds all test dependencies for join orchestrator tests.
type joinServiceFixtures struct {
	service        usecase.JoinUsecase
	programRepo    *mockRepo.MockProgramRepository
	membershipRepo *mockRepo.MockMembershipRepository
	publisher      *mockService.MockEventPublisher
	now            time.Time
}

func createTestJoinService(t *testing.T) joinServiceFixtures {
	programRepo := mockRepo.NewMockProgramRepository(t)
	membershipRepo := mockRepo.NewMockMembershipRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewJoinService(JoinServiceParams{
		ProgramRepo:    programRepo,
		MembershipRepo: membershipRepo,
		Publisher:      publisher,
		Logger:         newDiscardLogger(),
	}).(*joinService)

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return joinServiceFixtures{
		service:        svc,
		programRepo:    programRepo,
		membershipRepo: membershipRepo,
		publisher:      publisher,
		now:            now,
	}
}

func TestJoinService_Join_CreatesMembership(t *testing.T) {
	fx := createTestJoinService(t)

	ctx := context.Background()
	program := activeProgram(8)

	fx.programRepo.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil)
	fx.membershipRepo.EXPECT().
		FindMembership(ctx, program.ID, "wp_new_member").
		Return(nil, repository.ErrMembershipNotFound)
	fx.membershipRepo.EXPECT().
		CreateMembership(ctx, mock.AnythingOfType("*entity.Membership")).
		Run(func(_ context.Context, membership *entity.Membership) {
			assert.Equal(t, program.ID, membership.ProgramID)
			assert.Equal(t, "wp_new_member", membership.WalletPassID)
			assert.Equal(t, 0, membership.StampsBalance)
			assert.Equal(t, fx.now, membership.JoinedAt)
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishWalletPassEvent(ctx, mock.AnythingOfType("*service.WalletPassEvent")).
		Run(func(_ context.Context, event *service.WalletPassEvent) {
			assert.Equal(t, service.WalletPassEventProvision, event.Kind)
			assert.Equal(t, program.PublicID, event.ProgramPublicID)
		}).
		Return(nil)

	result, err := fx.service.Join(ctx, program.PublicID, "wp_new_member", nil)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, result.AlreadyMember)
	assert.Equal(t, 0, result.StampsBalance)
	assert.False(t, result.HasWalletPass)
}

func TestJoinService_Join_WithProfile(t *testing.T) {
	fx := createTestJoinService(t)

	ctx := context.Background()
	program := activeProgram(8)
	dob := time.Date(1990, 7, 1, 0, 0, 0, 0, time.UTC)
	profile := &usecase.JoinProfile{
		FirstName:   "美玲",
		LastName:    "陳",
		Email:       "meiling@example.com",
		DateOfBirth: &dob,
	}

	fx.programRepo.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil)
	fx.membershipRepo.EXPECT().
		FindMembership(ctx, program.ID, "wp_new_member").
		Return(nil, repository.ErrMembershipNotFound)
	fx.membershipRepo.EXPECT().
		CreateMembership(ctx, mock.AnythingOfType("*entity.Membership")).
		Run(func(_ context.Context, membership *entity.Membership) {
			assert.Equal(t, "美玲", membership.FirstName)
			assert.Equal(t, "陳", membership.LastName)
			assert.Equal(t, "meiling@example.com", membership.Email)
			require.NotNil(t, membership.DateOfBirth)
			assert.Equal(t, dob, *membership.DateOfBirth)
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishWalletPassEvent(ctx, mock.AnythingOfType("*service.WalletPassEvent")).
		Return(nil)

	result, err := fx.service.Join(ctx, program.PublicID, "wp_new_member", profile)

	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestJoinService_Join_RepeatJoinIsIdempotent(t *testing.T) {
	fx := createTestJoinService(t)

	ctx := context.Background()
	program := activeProgram(8)
	existing := testMembership(program.ID, 3)
	existing.HasWalletPass = true
	existing.AppleWalletURL = "https://passes.example.com/apple/abc"

	fx.programRepo.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil)
	fx.membershipRepo.EXPECT().
		FindMembership(ctx, program.ID, existing.WalletPassID).
		Return(existing, nil)

	// No create and no publish: the second join must write nothing.
	result, err := fx.service.Join(ctx, program.PublicID, existing.WalletPassID, nil)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.AlreadyMember)
	assert.Equal(t, 3, result.StampsBalance)
	assert.True(t, result.HasWalletPass)
	assert.Equal(t, "https://passes.example.com/apple/abc", result.AppleWalletURL)
}

func TestJoinService_Join_DuplicateRaceReportsWinner(t *testing.T) {
	fx := createTestJoinService(t)

	ctx := context.Background()
	program := activeProgram(8)
	winner := testMembership(program.ID, 0)

	fx.programRepo.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil)
	fx.membershipRepo.EXPECT().
		FindMembership(ctx, program.ID, winner.WalletPassID).
		Return(nil, repository.ErrMembershipNotFound).Once()
	fx.membershipRepo.EXPECT().
		CreateMembership(ctx, mock.AnythingOfType("*entity.Membership")).
		Return(repository.ErrDuplicateMembership)
	fx.membershipRepo.EXPECT().
		FindMembership(ctx, program.ID, winner.WalletPassID).
		Return(winner, nil).Once()

	result, err := fx.service.Join(ctx, program.PublicID, winner.WalletPassID, nil)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.AlreadyMember)
}

func TestJoinService_Join_UnknownProgram(t *testing.T) {
	fx := createTestJoinService(t)

	ctx := context.Background()

	fx.programRepo.EXPECT().
		FindProgramByPublicID(ctx, "p_missing").
		Return(nil, repository.ErrProgramNotFound)

	result, err := fx.service.Join(ctx, "p_missing", "wp_new_member", nil)

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, usecase.EarnReasonProgramUnavailable, result.Reason)
}

func TestJoinService_Join_PausedProgram(t *testing.T) {
	fx := createTestJoinService(t)

	ctx := context.Background()
	program := activeProgram(8)
	program.Status = entity.ProgramStatusPaused

	fx.programRepo.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil)

	result, err := fx.service.Join(ctx, program.PublicID, "wp_new_member", nil)

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, usecase.EarnReasonProgramUnavailable, result.Reason)
}

func TestJoinService_Join_PublishFailureStillSucceeds(t *testing.T) {
	fx := createTestJoinService(t)

	ctx := context.Background()
	program := activeProgram(8)

	fx.programRepo.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil)
	fx.membershipRepo.EXPECT().
		FindMembership(ctx, program.ID, "wp_new_member").
		Return(nil, repository.ErrMembershipNotFound)
	fx.membershipRepo.EXPECT().
		CreateMembership(ctx, mock.AnythingOfType("*entity.Membership")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishWalletPassEvent(ctx, mock.AnythingOfType("*service.WalletPassEvent")).
		Return(errors.New("broker unavailable"))

	result, err := fx.service.Join(ctx, program.PublicID, "wp_new_member", nil)

	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestJoinService_RetryWalletPass_Republishes(t *testing.T) {
	fx := createTestJoinService(t)

	ctx := context.Background()
	program := activeProgram(8)
	member := testMembership(program.ID, 2)

	fx.programRepo.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil)
	fx.membershipRepo.EXPECT().
		FindMembership(ctx, program.ID, member.WalletPassID).
		Return(member, nil)
	fx.publisher.EXPECT().
		PublishWalletPassEvent(ctx, mock.AnythingOfType("*service.WalletPassEvent")).
		Run(func(_ context.Context, event *service.WalletPassEvent) {
			assert.Equal(t, service.WalletPassEventProvision, event.Kind)
			assert.Equal(t, member.ID.String(), event.MembershipID)
			assert.Equal(t, 2, event.StampsBalance)
		}).
		Return(nil)

	err := fx.service.RetryWalletPass(ctx, program.PublicID, member.WalletPassID)

	require.NoError(t, err)
}

func TestJoinService_RetryWalletPass_PublishFailureSurfaces(t *testing.T) {
	fx := createTestJoinService(t)

	ctx := context.Background()
	program := activeProgram(8)
	member := testMembership(program.ID, 2)

	fx.programRepo.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil)
	fx.membershipRepo.EXPECT().
		FindMembership(ctx, program.ID, member.WalletPassID).
		Return(member, nil)
	fx.publisher.EXPECT().
		PublishWalletPassEvent(ctx, mock.AnythingOfType("*service.WalletPassEvent")).
		Return(errors.New("broker unavailable"))

	err := fx.service.RetryWalletPass(ctx, program.PublicID, member.WalletPassID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish wallet pass provision event")
}

func TestJoinService_RetryWalletPass_NotMember(t *testing.T) {
	fx := createTestJoinService(t)

	ctx := context.Background()
	program := activeProgram(8)

	fx.programRepo.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil)
	fx.membershipRepo.EXPECT().
		FindMembership(ctx, program.ID, "wp_stranger").
		Return(nil, repository.ErrMembershipNotFound)

	err := fx.service.RetryWalletPass(ctx, program.PublicID, "wp_stranger")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMembershipNotFound))
}
