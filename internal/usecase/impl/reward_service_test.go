package impl

import (
	"context"
	"testing"
	"time"

	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	mockRepo "tally/internal/mocks/repository"
	"tally/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rewardServiceFixtures holds all test dependencies for reward tracker tests.
type rewardServiceFixtures struct {
	service        usecase.RewardUsecase
	redemptionRepo *mockRepo.MockRedemptionRepository
	now            time.Time
}

func createTestRewardService(t *testing.T) rewardServiceFixtures {
	redemptionRepo := mockRepo.NewMockRedemptionRepository(t)

	svc := NewRewardService(RewardServiceParams{
		RedemptionRepo: redemptionRepo,
	}).(*rewardService)

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return rewardServiceFixtures{
		service:        svc,
		redemptionRepo: redemptionRepo,
		now:            now,
	}
}

func openRedemption(membershipID uuid.UUID) *entity.RewardRedemption {
	return &entity.RewardRedemption{
		ID:                uuid.New(),
		MembershipID:      membershipID,
		UnlockedAt:        time.Date(2026, 3, 13, 18, 30, 0, 0, time.UTC),
		RewardDescription: "免費咖啡一杯",
	}
}

func TestRewardService_GetAvailableReward_Open(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	membershipID := uuid.New()
	open := openRedemption(membershipID)

	fx.redemptionRepo.EXPECT().
		FindOpenRedemption(ctx, membershipID).
		Return(open, nil)

	redemption, err := fx.service.GetAvailableReward(ctx, membershipID)

	require.NoError(t, err)
	assert.Equal(t, open, redemption)
}

func TestRewardService_GetAvailableReward_NoneIsNotAnError(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	membershipID := uuid.New()

	fx.redemptionRepo.EXPECT().
		FindOpenRedemption(ctx, membershipID).
		Return(nil, repository.ErrRedemptionNotFound)

	redemption, err := fx.service.GetAvailableReward(ctx, membershipID)

	require.NoError(t, err)
	assert.Nil(t, redemption)
}

func TestRewardService_Redeem_ClosesOpenRedemption(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	membershipID := uuid.New()
	open := openRedemption(membershipID)

	fx.redemptionRepo.EXPECT().
		FindLatestRedemption(ctx, membershipID).
		Return(open, nil)
	fx.redemptionRepo.EXPECT().
		MarkRedeemed(ctx, open.ID, fx.now).
		Return(nil)

	result, err := fx.service.Redeem(ctx, membershipID)

	require.NoError(t, err)
	assert.True(t, result.Redeemed)
	assert.False(t, result.AlreadyRedeemed)
	assert.Equal(t, fx.now, result.RedeemedAt)
	assert.Equal(t, "免費咖啡一杯", result.RewardDescription)
}

func TestRewardService_Redeem_RepeatRedeemIsIdempotent(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	membershipID := uuid.New()
	redeemedAt := time.Date(2026, 3, 13, 19, 0, 0, 0, time.UTC)
	closed := openRedemption(membershipID)
	closed.RedeemedAt = &redeemedAt

	fx.redemptionRepo.EXPECT().
		FindLatestRedemption(ctx, membershipID).
		Return(closed, nil)

	// No MarkRedeemed: the second redeem reports the original outcome.
	result, err := fx.service.Redeem(ctx, membershipID)

	require.NoError(t, err)
	assert.True(t, result.Redeemed)
	assert.True(t, result.AlreadyRedeemed)
	assert.Equal(t, redeemedAt, result.RedeemedAt)
}

func TestRewardService_Redeem_NoRewardAvailable(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	membershipID := uuid.New()

	fx.redemptionRepo.EXPECT().
		FindLatestRedemption(ctx, membershipID).
		Return(nil, repository.ErrRedemptionNotFound)

	result, err := fx.service.Redeem(ctx, membershipID)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrNoRewardAvailable))
}

func TestRewardService_Redeem_ConcurrentRedeemReportsWinner(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	membershipID := uuid.New()
	open := openRedemption(membershipID)

	winnerRedeemedAt := fx.now.Add(-time.Second)
	closed := *open
	closed.RedeemedAt = &winnerRedeemedAt

	fx.redemptionRepo.EXPECT().
		FindLatestRedemption(ctx, membershipID).
		Return(open, nil).Once()
	fx.redemptionRepo.EXPECT().
		MarkRedeemed(ctx, open.ID, fx.now).
		Return(repository.ErrRedemptionNotFound)
	fx.redemptionRepo.EXPECT().
		FindLatestRedemption(ctx, membershipID).
		Return(&closed, nil).Once()

	result, err := fx.service.Redeem(ctx, membershipID)

	require.NoError(t, err)
	assert.True(t, result.Redeemed)
	assert.True(t, result.AlreadyRedeemed)
	assert.Equal(t, winnerRedeemedAt, result.RedeemedAt)
}

func TestRewardService_GetRedemptionHistory(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	membershipID := uuid.New()
	history := []*entity.RewardRedemption{openRedemption(membershipID), openRedemption(membershipID)}

	fx.redemptionRepo.EXPECT().
		FindRedemptionsByMembership(ctx, membershipID).
		Return(history, nil)

	redemptions, err := fx.service.GetRedemptionHistory(ctx, membershipID)

	require.NoError(t, err)
	assert.Len(t, redemptions, 2)
}

func TestRewardService_GetRedemptionHistory_Error(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	membershipID := uuid.New()

	fx.redemptionRepo.EXPECT().
		FindRedemptionsByMembership(ctx, membershipID).
		Return(nil, errors.New("db error"))

	redemptions, err := fx.service.GetRedemptionHistory(ctx, membershipID)

	require.Error(t, err)
	assert.Nil(t, redemptions)
	assert.Contains(t, err.Error(), "failed to find redemptions")
}
