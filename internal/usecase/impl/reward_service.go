package impl

import (
	"context"
	"time"

	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	"tally/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type rewardService struct {
	redemptionRepo repository.RedemptionRepository

	now func() time.Time
}

// RewardServiceParams holds dependencies for the reward tracker, injected by Fx.
type RewardServiceParams struct {
	fx.In

	RedemptionRepo repository.RedemptionRepository
}

// NewRewardService creates the reward redemption tracker.
func NewRewardService(params RewardServiceParams) usecase.RewardUsecase {
	return &rewardService{
		redemptionRepo: params.RedemptionRepo,
		now:            time.Now,
	}
}

// GetAvailableReward returns the membership's open redemption, or nil when
// there is nothing to collect.
func (s *rewardService) GetAvailableReward(ctx context.Context, membershipID uuid.UUID) (*entity.RewardRedemption, error) {
	redemption, err := s.redemptionRepo.FindOpenRedemption(ctx, membershipID)
	if err != nil {
		if errors.Is(err, repository.ErrRedemptionNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find open redemption")
	}

	return redemption, nil
}

// Redeem closes the open redemption. Redeeming an already-redeemed reward is
// benign: the call reports the original redemption instead of failing, so a
// double-tap at the counter cannot turn success into an error.
func (s *rewardService) Redeem(ctx context.Context, membershipID uuid.UUID) (*usecase.RedeemResult, error) {
	latest, err := s.redemptionRepo.FindLatestRedemption(ctx, membershipID)
	if err != nil {
		if errors.Is(err, repository.ErrRedemptionNotFound) {
			return nil, domainerrors.ErrNoRewardAvailable
		}

		return nil, errors.Wrap(err, "failed to find latest redemption")
	}

	if !latest.Open() {
		return &usecase.RedeemResult{
			Redeemed:          true,
			AlreadyRedeemed:   true,
			RedeemedAt:        *latest.RedeemedAt,
			RewardDescription: latest.RewardDescription,
		}, nil
	}

	redeemedAt := s.now()
	if err := s.redemptionRepo.MarkRedeemed(ctx, latest.ID, redeemedAt); err != nil {
		// A concurrent redeem won the state guard; report its outcome.
		if errors.Is(err, repository.ErrRedemptionNotFound) {
			closed, findErr := s.redemptionRepo.FindLatestRedemption(ctx, membershipID)
			if findErr != nil || closed.RedeemedAt == nil {
				return nil, errors.Wrap(err, "failed to mark redemption redeemed")
			}

			return &usecase.RedeemResult{
				Redeemed:          true,
				AlreadyRedeemed:   true,
				RedeemedAt:        *closed.RedeemedAt,
				RewardDescription: closed.RewardDescription,
			}, nil
		}

		return nil, errors.Wrap(err, "failed to mark redemption redeemed")
	}

	return &usecase.RedeemResult{
		Redeemed:          true,
		AlreadyRedeemed:   false,
		RedeemedAt:        redeemedAt,
		RewardDescription: latest.RewardDescription,
	}, nil
}

// GetRedemptionHistory returns past redemptions, newest first.
func (s *rewardService) GetRedemptionHistory(ctx context.Context, membershipID uuid.UUID) ([]*entity.RewardRedemption, error) {
	redemptions, err := s.redemptionRepo.FindRedemptionsByMembership(ctx, membershipID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find redemptions")
	}

	return redemptions, nil
}
