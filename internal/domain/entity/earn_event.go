package entity

import (
	"time"

	"github.com/google/uuid"
)

// EarnSource records how a stamp was granted.
type EarnSource string

const (
	EarnSourceQRScan EarnSource = "qr_scan"
	EarnSourceManual EarnSource = "manual"
)

// EarnEvent is one successful stamp-granting transaction. Events are
// append-only and never deleted; rejected earn calls never produce one.
type EarnEvent struct {
	ID             uuid.UUID  `json:"id"`
	MembershipID   uuid.UUID  `json:"membership_id"`
	OccurredAt     time.Time  `json:"occurred_at"`
	BalanceAfter   int        `json:"balance_after"` // Post-reset value (0) on the unlocking earn.
	RewardUnlocked bool       `json:"reward_unlocked"`
	Source         EarnSource `json:"source"`
}
