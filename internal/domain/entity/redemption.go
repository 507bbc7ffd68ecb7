package entity

import (
	"time"

	"github.com/google/uuid"
)

// RewardRedemption tracks one unlocked reward from threshold crossing to
// confirmation at the counter. A membership has at most one open redemption;
// the snapshot preserves the reward text even if the owner later edits it.
type RewardRedemption struct {
	ID                uuid.UUID  `json:"id"`
	MembershipID      uuid.UUID  `json:"membership_id"`
	UnlockedAt        time.Time  `json:"unlocked_at"`
	RedeemedAt        *time.Time `json:"redeemed_at,omitempty"`
	RewardDescription string     `json:"reward_description"` // Snapshot taken at unlock time.
}

// Open reports whether the reward is still waiting to be redeemed.
func (r *RewardRedemption) Open() bool {
	return r != nil && r.RedeemedAt == nil
}
