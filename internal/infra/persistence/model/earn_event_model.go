package model

import (
	"time"

	"github.com/google/uuid"
)

// EarnEventModel is the GORM-specific struct for the 'earn_events' table.
// Rows are append-only; there is no UpdatedAt and no soft delete.
type EarnEventModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MembershipID   uuid.UUID `gorm:"type:uuid;not null;index:idx_earn_events_membership_occurred"`
	OccurredAt     time.Time `gorm:"not null;index:idx_earn_events_membership_occurred"`
	BalanceAfter   int       `gorm:"not null"`
	RewardUnlocked bool      `gorm:"not null;default:false"`
	Source         string    `gorm:"type:varchar(16);not null"`
}

// TableName explicitly sets the table name for GORM.
func (EarnEventModel) TableName() string {
	return "earn_events"
}
