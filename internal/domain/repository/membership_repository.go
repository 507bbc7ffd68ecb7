package repository

import (
	"context"
	"time"

	"tally/internal/domain/entity"
	"tally/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for membership persistence.
var (
	// ErrMembershipNotFound is returned when a membership is not found.
	ErrMembershipNotFound = errors.New("membership not found")
	// ErrDuplicateMembership is returned when the (program, wallet pass) pair already exists.
	ErrDuplicateMembership = errors.New("membership already exists")
)

// MembershipRepository defines the interface for membership database operations.
type MembershipRepository interface {
	// CreateMembership persists a new membership with a zero balance.
	CreateMembership(ctx context.Context, membership *entity.Membership) error

	// FindMembership retrieves a membership by its composite identity.
	FindMembership(ctx context.Context, programID uuid.UUID, walletPassID string) (*entity.Membership, error)

	// FindMembershipByID retrieves a membership by its internal ID.
	FindMembershipByID(ctx context.Context, id uuid.UUID) (*entity.Membership, error)

	// FindMembershipForUpdate retrieves a membership by its composite identity
	// while holding a row-level lock for the duration of the enclosing
	// transaction. The stamp ledger uses this to serialize concurrent earn
	// calls for the same membership; different memberships never block each other.
	FindMembershipForUpdate(ctx context.Context, programID uuid.UUID, walletPassID string) (*entity.Membership, error)

	// ApplyEarn writes the outcome of one earn: the new balance (post reset on
	// an unlocking earn), the lifetime counter, and last_earn_at.
	ApplyEarn(ctx context.Context, id uuid.UUID, newBalance, lifetimeStamps int, earnedAt time.Time) error

	// UpdateWalletPass records the install URLs produced by the pass provisioner.
	UpdateWalletPass(ctx context.Context, id uuid.UUID, appleURL, googleURL string) error
}
