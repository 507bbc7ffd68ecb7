package model

import (
	"time"

	"github.com/google/uuid"
)

// LoyaltyProgramModel is the GORM-specific struct for the 'loyalty_programs' table.
// Programs are archived, never hard-deleted, so the historical ledger stays intact.
type LoyaltyProgramModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PublicID          string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	BusinessID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name              string    `gorm:"type:varchar(255);not null"`
	RewardThreshold   int       `gorm:"not null;check:reward_threshold >= 1"`
	RewardDescription string    `gorm:"type:text;not null"`
	StampLabel        string    `gorm:"type:varchar(64)"`
	EarnMode          string    `gorm:"type:varchar(16);not null;default:'per_visit'"`
	MaxEarnsPerDay    int       `gorm:"not null;default:0;check:max_earns_per_day >= 0"`
	MinGapMinutes     int       `gorm:"not null;default:0;check:min_gap_minutes >= 0"`
	EarnToken         string    `gorm:"type:varchar(64);not null"`
	Status            string    `gorm:"type:varchar(16);not null;default:'draft';index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoyaltyProgramModel) TableName() string {
	return "loyalty_programs"
}
