package repository

import (
	"context"
	"time"

	"tally/internal/domain/entity"

	"github.com/google/uuid"
)

// EarnEventRepository defines the interface for the append-only stamp ledger.
// Events are immutable once written and are never deleted.
type EarnEventRepository interface {
	// CreateEarnEvent appends one ledger entry for a successful earn.
	CreateEarnEvent(ctx context.Context, event *entity.EarnEvent) error

	// CountEventsSince counts a membership's earn events at or after the given instant.
	// The rate limiter uses this for the rolling daily cap.
	CountEventsSince(ctx context.Context, membershipID uuid.UUID, since time.Time) (int64, error)

	// FindOldestEventSince returns the earliest event at or after the given
	// instant, or nil when there is none. Used to compute when a capped
	// member becomes eligible again.
	FindOldestEventSince(ctx context.Context, membershipID uuid.UUID, since time.Time) (*entity.EarnEvent, error)

	// FindEventsByMembership returns the most recent events for a membership,
	// newest first, for the member-facing history view.
	FindEventsByMembership(ctx context.Context, membershipID uuid.UUID, limit int) ([]*entity.EarnEvent, error)
}
