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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stampLedgerFixtures holds all test dependencies for stamp ledger tests.
type stampLedgerFixtures struct {
	service        *stampLedgerService
	txManager      *mockRepo.MockTransactionManager
	programRepo    *mockRepo.MockProgramRepository
	membershipRepo *mockRepo.MockMembershipRepository
	redemptionRepo *mockRepo.MockRedemptionRepository
	qrcodeService  *mockService.MockQRCodeService
	publisher      *mockService.MockEventPublisher
	now            time.Time
}

func createTestStampLedger(t *testing.T) stampLedgerFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	programRepo := mockRepo.NewMockProgramRepository(t)
	membershipRepo := mockRepo.NewMockMembershipRepository(t)
	redemptionRepo := mockRepo.NewMockRedemptionRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewStampLedgerService(StampLedgerParams{
		TxManager:      txManager,
		ProgramRepo:    programRepo,
		MembershipRepo: membershipRepo,
		RedemptionRepo: redemptionRepo,
		QRCodeService:  qrcodeService,
		Publisher:      publisher,
		Logger:         newDiscardLogger(),
		Config:         newTestConfig(),
	}).(*stampLedgerService)

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return stampLedgerFixtures{
		service:        svc,
		txManager:      txManager,
		programRepo:    programRepo,
		membershipRepo: membershipRepo,
		redemptionRepo: redemptionRepo,
		qrcodeService:  qrcodeService,
		publisher:      publisher,
		now:            now,
	}
}

// onExecute routes the transaction callback through a factory configured by
// the test. The callback's error becomes the transaction's error.
func (f *stampLedgerFixtures) onExecute(t *testing.T, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}

func activeProgram(threshold int) *entity.LoyaltyProgram {
	return &entity.LoyaltyProgram{
		ID:                uuid.New(),
		PublicID:          "p_7f3k9x",
		BusinessID:        uuid.New(),
		Name:              "早餐集點卡",
		RewardThreshold:   threshold,
		RewardDescription: "免費咖啡一杯",
		EarnMode:          entity.EarnModePerVisit,
		EarnToken:         "tok_abc123",
		Status:            entity.ProgramStatusActive,
	}
}

func testMembership(programID uuid.UUID, balance int) *entity.Membership {
	return &entity.Membership{
		ID:             uuid.New(),
		ProgramID:      programID,
		WalletPassID:   "wp_member_1",
		StampsBalance:  balance,
		LifetimeStamps: balance,
	}
}

func TestStampLedger_Earn_Success(t *testing.T) {
	fx := createTestStampLedger(t)

	ctx := context.Background()
	program := activeProgram(8)
	member := testMembership(program.ID, 2)

	fx.programRepo.EXPECT().
		FindProgramByPublicID(mock.Anything, program.PublicID).
		Return(program, nil)

	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		membershipRepo := mockRepo.NewMockMembershipRepository(t)
		eventRepo := mockRepo.NewMockEarnEventRepository(t)
		factory.EXPECT().NewMembershipRepository().Return(membershipRepo)
		factory.EXPECT().NewEarnEventRepository().Return(eventRepo)

		membershipRepo.EXPECT().
			FindMembershipForUpdate(mock.Anything, program.ID, member.WalletPassID).
			Return(member, nil)
		membershipRepo.EXPECT().
			ApplyEarn(mock.Anything, member.ID, 3, member.LifetimeStamps+1, fx.now).
			Return(nil)
		eventRepo.EXPECT().
			CreateEarnEvent(mock.Anything, mock.AnythingOfType("*entity.EarnEvent")).
			Run(func(_ context.Context, event *entity.EarnEvent) {
				assert.Equal(t, member.ID, event.MembershipID)
				assert.Equal(t, 3, event.BalanceAfter)
				assert.False(t, event.RewardUnlocked)
				assert.Equal(t, entity.EarnSourceQRScan, event.Source)
			}).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishWalletPassEvent(mock.Anything, mock.AnythingOfType("*service.WalletPassEvent")).
		Return(nil)

	result, err := fx.service.Earn(ctx, program.PublicID, program.EarnToken, member.WalletPassID, "qr_scan")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 3, result.StampsBalance)
	assert.Equal(t, 8, result.RewardThreshold)
	assert.False(t, result.RewardUnlocked)
	assert.Empty(t, result.ProximityMessage)
	assert.Nil(t, result.NextEligibleAt)
}

func TestStampLedger_Earn_UnlockAtThresholdResetsBalance(t *testing.T) {
	fx := createTestStampLedger(t)

	ctx := context.Background()
	program := activeProgram(5)
	member := testMembership(program.ID, 4)

	fx.programRepo.EXPECT().
		FindProgramByPublicID(mock.Anything, program.PublicID).
		Return(program, nil)

	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		membershipRepo := mockRepo.NewMockMembershipRepository(t)
		eventRepo := mockRepo.NewMockEarnEventRepository(t)
		redemptionRepo := mockRepo.NewMockRedemptionRepository(t)
		factory.EXPECT().NewMembershipRepository().Return(membershipRepo)
		factory.EXPECT().NewEarnEventRepository().Return(eventRepo)
		factory.EXPECT().NewRedemptionRepository().Return(redemptionRepo)

		membershipRepo.EXPECT().
			FindMembershipForUpdate(mock.Anything, program.ID, member.WalletPassID).
			Return(member, nil)
		membershipRepo.EXPECT().
			ApplyEarn(mock.Anything, member.ID, 0, member.LifetimeStamps+1, fx.now).
			Return(nil)
		eventRepo.EXPECT().
			CreateEarnEvent(mock.Anything, mock.AnythingOfType("*entity.EarnEvent")).
			Run(func(_ context.Context, event *entity.EarnEvent) {
				assert.Equal(t, 0, event.BalanceAfter)
				assert.True(t, event.RewardUnlocked)
			}).
			Return(nil)
		redemptionRepo.EXPECT().
			CreateRedemption(mock.Anything, mock.AnythingOfType("*entity.RewardRedemption")).
			Run(func(_ context.Context, redemption *entity.RewardRedemption) {
				assert.Equal(t, member.ID, redemption.MembershipID)
				assert.Equal(t, fx.now, redemption.UnlockedAt)
				assert.Equal(t, program.RewardDescription, redemption.RewardDescription)
			}).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishWalletPassEvent(mock.Anything, mock.AnythingOfType("*service.WalletPassEvent")).
		Run(func(_ context.Context, event *service.WalletPassEvent) {
			assert.Equal(t, service.WalletPassEventRefresh, event.Kind)
			assert.True(t, event.RewardAvailable)
			assert.Equal(t, 0, event.StampsBalance)
		}).
		Return(nil)

	result, err := fx.service.Earn(ctx, program.PublicID, program.EarnToken, member.WalletPassID, "qr_scan")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.RewardUnlocked)
	assert.Equal(t, 0, result.StampsBalance)
	assert.Empty(t, result.ProximityMessage)
}

func TestStampLedger_Earn_ProximityAtExactlyOneRemaining(t *testing.T) {
	fx := createTestStampLedger(t)

	ctx := context.Background()
	program := activeProgram(8)
	member := testMembership(program.ID, 6)

	fx.programRepo.EXPECT().
		FindProgramByPublicID(mock.Anything, program.PublicID).
		Return(program, nil)

	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		membershipRepo := mockRepo.NewMockMembershipRepository(t)
		eventRepo := mockRepo.NewMockEarnEventRepository(t)
		factory.EXPECT().NewMembershipRepository().Return(membershipRepo)
		factory.EXPECT().NewEarnEventRepository().Return(eventRepo)

		membershipRepo.EXPECT().
			FindMembershipForUpdate(mock.Anything, program.ID, member.WalletPassID).
			Return(member, nil)
		membershipRepo.EXPECT().
			ApplyEarn(mock.Anything, member.ID, 7, member.LifetimeStamps+1, fx.now).
			Return(nil)
		eventRepo.EXPECT().
			CreateEarnEvent(mock.Anything, mock.AnythingOfType("*entity.EarnEvent")).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishWalletPassEvent(mock.Anything, mock.AnythingOfType("*service.WalletPassEvent")).
		Return(nil)

	result, err := fx.service.Earn(ctx, program.PublicID, program.EarnToken, member.WalletPassID, "qr_scan")

	require.NoError(t, err)
	assert.Equal(t, 7, result.StampsBalance)
	assert.Equal(t, "再集 1 點即可兌換獎勵！", result.ProximityMessage)
}

func TestStampLedger_Earn_ThresholdOneUnlocksWithoutNudge(t *testing.T) {
	fx := createTestStampLedger(t)

	ctx := context.Background()
	program := activeProgram(1)
	member := testMembership(program.ID, 0)

	fx.programRepo.EXPECT().
		FindProgramByPublicID(mock.Anything, program.PublicID).
		Return(program, nil)

	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		membershipRepo := mockRepo.NewMockMembershipRepository(t)
		eventRepo := mockRepo.NewMockEarnEventRepository(t)
		redemptionRepo := mockRepo.NewMockRedemptionRepository(t)
		factory.EXPECT().NewMembershipRepository().Return(membershipRepo)
		factory.EXPECT().NewEarnEventRepository().Return(eventRepo)
		factory.EXPECT().NewRedemptionRepository().Return(redemptionRepo)

		membershipRepo.EXPECT().
			FindMembershipForUpdate(mock.Anything, program.ID, member.WalletPassID).
			Return(member, nil)
		membershipRepo.EXPECT().
			ApplyEarn(mock.Anything, member.ID, 0, member.LifetimeStamps+1, fx.now).
			Return(nil)
		eventRepo.EXPECT().
			CreateEarnEvent(mock.Anything, mock.AnythingOfType("*entity.EarnEvent")).
			Return(nil)
		redemptionRepo.EXPECT().
			CreateRedemption(mock.Anything, mock.AnythingOfType("*entity.RewardRedemption")).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishWalletPassEvent(mock.Anything, mock.AnythingOfType("*service.WalletPassEvent")).
		Return(nil)

	result, err := fx.service.Earn(ctx, program.PublicID, program.EarnToken, member.WalletPassID, "qr_scan")

	require.NoError(t, err)
	assert.True(t, result.RewardUnlocked)
	assert.Equal(t, 0, result.StampsBalance)
	assert.Empty(t, result.ProximityMessage)
}

func TestStampLedger_Earn_InvalidTokenWritesNothing(t *testing.T) {
	fx := createTestStampLedger(t)

	ctx := context.Background()
	program := activeProgram(5)

	fx.programRepo.EXPECT().
		FindProgramByPublicID(mock.Anything, program.PublicID).
		Return(program, nil)

	// No transaction expectations: a failed validation must not touch the store.
	result, err := fx.service.Earn(ctx, program.PublicID, "wrong-token", "wp_member_1", "qr_scan")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, usecase.EarnReasonInvalidToken, result.Reason)
}

func TestStampLedger_Earn_UnknownProgram(t *testing.T) {
	fx := createTestStampLedger(t)

	ctx := context.Background()

	fx.programRepo.EXPECT().
		FindProgramByPublicID(mock.Anything, "p_missing").
		Return(nil, repository.ErrProgramNotFound)

	result, err := fx.service.Earn(ctx, "p_missing", "tok_abc123", "wp_member_1", "qr_scan")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, usecase.EarnReasonInvalidToken, result.Reason)
}

func TestStampLedger_Earn_PausedProgramRejected(t *testing.T) {
	fx := createTestStampLedger(t)

	ctx := context.Background()
	program := activeProgram(5)
	program.Status = entity.ProgramStatusPaused

	fx.programRepo.EXPECT().
		FindProgramByPublicID(mock.Anything, program.PublicID).
		Return(program, nil)

	result, err := fx.service.Earn(ctx, program.PublicID, program.EarnToken, "wp_member_1", "qr_scan")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, usecase.EarnReasonInvalidToken, result.Reason)
}

func TestStampLedger_Earn_NotMember(t *testing.T) {
	fx := createTestStampLedger(t)

	ctx := context.Background()
	program := activeProgram(5)

	fx.programRepo.EXPECT().
		FindProgramByPublicID(mock.Anything, program.PublicID).
		Return(program, nil)

	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		membershipRepo := mockRepo.NewMockMembershipRepository(t)
		eventRepo := mockRepo.NewMockEarnEventRepository(t)
		factory.EXPECT().NewMembershipRepository().Return(membershipRepo)
		factory.EXPECT().NewEarnEventRepository().Return(eventRepo)

		membershipRepo.EXPECT().
			FindMembershipForUpdate(mock.Anything, program.ID, "wp_stranger").
			Return(nil, repository.ErrMembershipNotFound)
	})

	result, err := fx.service.Earn(ctx, program.PublicID, program.EarnToken, "wp_stranger", "qr_scan")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, usecase.EarnReasonNotMember, result.Reason)
	assert.Equal(t, 5, result.RewardThreshold)
}

func TestStampLedger_Earn_MinGapCooldownReportsNextEligibleAt(t *testing.T) {
	fx := createTestStampLedger(t)

	ctx := context.Background()
	program := activeProgram(8)
	program.MinGapMinutes = 10
	member := testMembership(program.ID, 3)
	lastEarn := fx.now.Add(-5 * time.Minute)
	member.LastEarnAt = &lastEarn

	fx.programRepo.EXPECT().
		FindProgramByPublicID(mock.Anything, program.PublicID).
		Return(program, nil)

	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		membershipRepo := mockRepo.NewMockMembershipRepository(t)
		eventRepo := mockRepo.NewMockEarnEventRepository(t)
		factory.EXPECT().NewMembershipRepository().Return(membershipRepo)
		factory.EXPECT().NewEarnEventRepository().Return(eventRepo)

		membershipRepo.EXPECT().
			FindMembershipForUpdate(mock.Anything, program.ID, member.WalletPassID).
			Return(member, nil)
	})

	result, err := fx.service.Earn(ctx, program.PublicID, program.EarnToken, member.WalletPassID, "qr_scan")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, usecase.EarnReasonCooldown, result.Reason)
	assert.Equal(t, 3, result.StampsBalance)
	require.NotNil(t, result.NextEligibleAt)
	assert.Equal(t, lastEarn.Add(10*time.Minute), *result.NextEligibleAt)
}

func TestStampLedger_Earn_DailyCapReportsOldestPlusWindow(t *testing.T) {
	fx := createTestStampLedger(t)

	ctx := context.Background()
	program := activeProgram(8)
	program.MaxEarnsPerDay = 2
	member := testMembership(program.ID, 3)
	oldest := &entity.EarnEvent{
		MembershipID: member.ID,
		OccurredAt:   fx.now.Add(-20 * time.Hour),
	}

	fx.programRepo.EXPECT().
		FindProgramByPublicID(mock.Anything, program.PublicID).
		Return(program, nil)

	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		membershipRepo := mockRepo.NewMockMembershipRepository(t)
		eventRepo := mockRepo.NewMockEarnEventRepository(t)
		factory.EXPECT().NewMembershipRepository().Return(membershipRepo)
		factory.EXPECT().NewEarnEventRepository().Return(eventRepo)

		membershipRepo.EXPECT().
			FindMembershipForUpdate(mock.Anything, program.ID, member.WalletPassID).
			Return(member, nil)
		eventRepo.EXPECT().
			CountEventsSince(mock.Anything, member.ID, fx.now.Add(-24*time.Hour)).
			Return(int64(2), nil)
		eventRepo.EXPECT().
			FindOldestEventSince(mock.Anything, member.ID, fx.now.Add(-24*time.Hour)).
			Return(oldest, nil)
	})

	result, err := fx.service.Earn(ctx, program.PublicID, program.EarnToken, member.WalletPassID, "qr_scan")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, usecase.EarnReasonCooldown, result.Reason)
	require.NotNil(t, result.NextEligibleAt)
	assert.Equal(t, oldest.OccurredAt.Add(24*time.Hour), *result.NextEligibleAt)
}

func TestStampLedger_Earn_TransactionFailureIsTransient(t *testing.T) {
	fx := createTestStampLedger(t)

	ctx := context.Background()
	program := activeProgram(5)

	fx.programRepo.EXPECT().
		FindProgramByPublicID(mock.Anything, program.PublicID).
		Return(program, nil)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset"))

	result, err := fx.service.Earn(ctx, program.PublicID, program.EarnToken, "wp_member_1", "qr_scan")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrTransientStore))
}

func TestStampLedger_Earn_PublishFailureStillSucceeds(t *testing.T) {
	fx := createTestStampLedger(t)

	ctx := context.Background()
	program := activeProgram(8)
	member := testMembership(program.ID, 1)

	fx.programRepo.EXPECT().
		FindProgramByPublicID(mock.Anything, program.PublicID).
		Return(program, nil)

	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		membershipRepo := mockRepo.NewMockMembershipRepository(t)
		eventRepo := mockRepo.NewMockEarnEventRepository(t)
		factory.EXPECT().NewMembershipRepository().Return(membershipRepo)
		factory.EXPECT().NewEarnEventRepository().Return(eventRepo)

		membershipRepo.EXPECT().
			FindMembershipForUpdate(mock.Anything, program.ID, member.WalletPassID).
			Return(member, nil)
		membershipRepo.EXPECT().
			ApplyEarn(mock.Anything, member.ID, 2, member.LifetimeStamps+1, fx.now).
			Return(nil)
		eventRepo.EXPECT().
			CreateEarnEvent(mock.Anything, mock.AnythingOfType("*entity.EarnEvent")).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishWalletPassEvent(mock.Anything, mock.AnythingOfType("*service.WalletPassEvent")).
		Return(errors.New("broker unavailable"))

	result, err := fx.service.Earn(ctx, program.PublicID, program.EarnToken, member.WalletPassID, "qr_scan")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.StampsBalance)
}

func TestStampLedger_GetMembershipStatus_Success(t *testing.T) {
	fx := createTestStampLedger(t)

	ctx := context.Background()
	program := activeProgram(8)
	member := testMembership(program.ID, 7)
	member.HasWalletPass = true
	member.AppleWalletURL = "https://passes.example.com/apple/abc"

	fx.programRepo.EXPECT().
		FindProgramByPublicID(mock.Anything, program.PublicID).
		Return(program, nil)
	fx.membershipRepo.EXPECT().
		FindMembership(mock.Anything, program.ID, member.WalletPassID).
		Return(member, nil)
	fx.redemptionRepo.EXPECT().
		FindOpenRedemption(mock.Anything, member.ID).
		Return(nil, repository.ErrRedemptionNotFound)

	status, err := fx.service.GetMembershipStatus(ctx, program.PublicID, member.WalletPassID)

	require.NoError(t, err)
	assert.Equal(t, 7, status.StampsBalance)
	assert.Equal(t, 8, status.RewardThreshold)
	assert.False(t, status.RewardAvailable)
	assert.Equal(t, "再集 1 點即可兌換獎勵！", status.ProximityMessage)
	assert.True(t, status.HasWalletPass)
	assert.Equal(t, "https://passes.example.com/apple/abc", status.AppleWalletURL)
}

func TestStampLedger_GetMembershipStatus_RewardAvailable(t *testing.T) {
	fx := createTestStampLedger(t)

	ctx := context.Background()
	program := activeProgram(5)
	member := testMembership(program.ID, 0)
	open := &entity.RewardRedemption{ID: uuid.New(), MembershipID: member.ID}

	fx.programRepo.EXPECT().
		FindProgramByPublicID(mock.Anything, program.PublicID).
		Return(program, nil)
	fx.membershipRepo.EXPECT().
		FindMembership(mock.Anything, program.ID, member.WalletPassID).
		Return(member, nil)
	fx.redemptionRepo.EXPECT().
		FindOpenRedemption(mock.Anything, member.ID).
		Return(open, nil)

	status, err := fx.service.GetMembershipStatus(ctx, program.PublicID, member.WalletPassID)

	require.NoError(t, err)
	assert.True(t, status.RewardAvailable)
	assert.Equal(t, 0, status.StampsBalance)
}

func TestStampLedger_GetMembershipStatus_NotMember(t *testing.T) {
	fx := createTestStampLedger(t)

	ctx := context.Background()
	program := activeProgram(5)

	fx.programRepo.EXPECT().
		FindProgramByPublicID(mock.Anything, program.PublicID).
		Return(program, nil)
	fx.membershipRepo.EXPECT().
		FindMembership(mock.Anything, program.ID, "wp_stranger").
		Return(nil, repository.ErrMembershipNotFound)

	status, err := fx.service.GetMembershipStatus(ctx, program.PublicID, "wp_stranger")

	require.Error(t, err)
	assert.Nil(t, status)
	assert.True(t, errors.Is(err, domainerrors.ErrMembershipNotFound))
}

func TestStampLedger_Scan_JoinModeForNonMember(t *testing.T) {
	fx := createTestStampLedger(t)

	ctx := context.Background()
	program := activeProgram(5)
	rawURL := "https://tally.example.com/s/" + program.PublicID + "?mode=join"

	fx.qrcodeService.EXPECT().
		ParseScanURL(rawURL).
		Return(&service.ScanPayload{ProgramPublicID: program.PublicID, Mode: service.ScanModeJoin}, nil)
	fx.programRepo.EXPECT().
		FindProgramByPublicID(mock.Anything, program.PublicID).
		Return(program, nil)
	fx.membershipRepo.EXPECT().
		FindMembership(mock.Anything, program.ID, "wp_new").
		Return(nil, repository.ErrMembershipNotFound)

	result, err := fx.service.Scan(ctx, rawURL, "wp_new")

	require.NoError(t, err)
	assert.Equal(t, service.ScanModeJoin, result.Mode)
	assert.True(t, result.JoinRequired)
	assert.Nil(t, result.Membership)
}

func TestStampLedger_Scan_EarnModeDispatches(t *testing.T) {
	fx := createTestStampLedger(t)

	ctx := context.Background()
	program := activeProgram(8)
	member := testMembership(program.ID, 0)
	rawURL := "https://tally.example.com/s/" + program.PublicID + "?mode=earn&token=" + program.EarnToken

	fx.qrcodeService.EXPECT().
		ParseScanURL(rawURL).
		Return(&service.ScanPayload{
			ProgramPublicID: program.PublicID,
			EarnToken:       program.EarnToken,
			Mode:            service.ScanModeEarn,
		}, nil)
	fx.programRepo.EXPECT().
		FindProgramByPublicID(mock.Anything, program.PublicID).
		Return(program, nil)

	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		membershipRepo := mockRepo.NewMockMembershipRepository(t)
		eventRepo := mockRepo.NewMockEarnEventRepository(t)
		factory.EXPECT().NewMembershipRepository().Return(membershipRepo)
		factory.EXPECT().NewEarnEventRepository().Return(eventRepo)

		membershipRepo.EXPECT().
			FindMembershipForUpdate(mock.Anything, program.ID, member.WalletPassID).
			Return(member, nil)
		membershipRepo.EXPECT().
			ApplyEarn(mock.Anything, member.ID, 1, 1, fx.now).
			Return(nil)
		eventRepo.EXPECT().
			CreateEarnEvent(mock.Anything, mock.AnythingOfType("*entity.EarnEvent")).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishWalletPassEvent(mock.Anything, mock.AnythingOfType("*service.WalletPassEvent")).
		Return(nil)

	result, err := fx.service.Scan(ctx, rawURL, member.WalletPassID)

	require.NoError(t, err)
	assert.Equal(t, service.ScanModeEarn, result.Mode)
	require.NotNil(t, result.Earn)
	assert.True(t, result.Earn.Success)
	assert.Equal(t, 1, result.Earn.StampsBalance)
}

func TestStampLedger_Scan_UnrecognizedURL(t *testing.T) {
	fx := createTestStampLedger(t)

	ctx := context.Background()

	fx.qrcodeService.EXPECT().
		ParseScanURL("https://elsewhere.example.com/x").
		Return(nil, errors.New("not a scan url"))

	result, err := fx.service.Scan(ctx, "https://elsewhere.example.com/x", "wp_member_1")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
