package repository

import (
	"context"
	"time"

	"tally/internal/domain/entity"
	"tally/internal/errors"

	"github.com/google/uuid"
)

// ErrRedemptionNotFound is returned when a redemption record is not found.
var ErrRedemptionNotFound = errors.New("redemption not found")

// RedemptionRepository defines the interface for reward-redemption database operations.
type RedemptionRepository interface {
	// CreateRedemption opens a new redemption at the moment a reward unlocks.
	CreateRedemption(ctx context.Context, redemption *entity.RewardRedemption) error

	// FindOpenRedemption retrieves the membership's open (unredeemed)
	// redemption. A membership has at most one.
	FindOpenRedemption(ctx context.Context, membershipID uuid.UUID) (*entity.RewardRedemption, error)

	// FindLatestRedemption retrieves the most recently unlocked redemption
	// regardless of state, for idempotent redeem handling.
	FindLatestRedemption(ctx context.Context, membershipID uuid.UUID) (*entity.RewardRedemption, error)

	// MarkRedeemed closes a redemption. Closing an already-closed record is
	// reported via ErrRedemptionNotFound by implementations that guard on state.
	MarkRedeemed(ctx context.Context, id uuid.UUID, redeemedAt time.Time) error

	// FindRedemptionsByMembership returns redemption history, newest first.
	FindRedemptionsByMembership(ctx context.Context, membershipID uuid.UUID) ([]*entity.RewardRedemption, error)
}
