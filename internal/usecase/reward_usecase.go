package usecase

import (
	"context"
	"time"

	"tally/internal/domain/entity"

	"github.com/google/uuid"
)

// RedeemResult is the outcome of a redeem call. Redeeming twice is benign;
// the second call reports AlreadyRedeemed with the original timestamp.
type RedeemResult struct {
	Redeemed          bool      `json:"redeemed"`
	AlreadyRedeemed   bool      `json:"alreadyRedeemed"`
	RedeemedAt        time.Time `json:"redeemedAt"`
	RewardDescription string    `json:"rewardDescription"`
}

// RewardUsecase tracks unlocked rewards through to redemption at the counter.
type RewardUsecase interface {
	// GetAvailableReward returns the membership's open redemption, or nil when
	// there is nothing to collect.
	GetAvailableReward(ctx context.Context, membershipID uuid.UUID) (*entity.RewardRedemption, error)

	// Redeem closes the open redemption. Idempotent on the latest record.
	Redeem(ctx context.Context, membershipID uuid.UUID) (*RedeemResult, error)

	// GetRedemptionHistory returns past redemptions, newest first.
	GetRedemptionHistory(ctx context.Context, membershipID uuid.UUID) ([]*entity.RewardRedemption, error)
}
