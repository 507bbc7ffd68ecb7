package model

import (
	"time"

	"github.com/google/uuid"
)

// RewardRedemptionModel is the GORM-specific struct for the 'reward_redemptions' table.
// The partial unique index on open rows enforces at most one open redemption
// per membership.
type RewardRedemptionModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MembershipID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	UnlockedAt        time.Time  `gorm:"not null"`
	RedeemedAt        *time.Time `gorm:"index"`
	RewardDescription string     `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (RewardRedemptionModel) TableName() string {
	return "reward_redemptions"
}
