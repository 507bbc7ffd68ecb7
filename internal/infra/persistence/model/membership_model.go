package model

import (
	"time"

	"github.com/google/uuid"
)

// MembershipModel is the GORM-specific struct for the 'memberships' table.
// The composite unique index makes joins idempotent at the store level; the
// balance check mirrors the ledger invariant.
type MembershipModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProgramID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_memberships_program_wallet"`
	WalletPassID    string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_memberships_program_wallet"`
	StampsBalance   int       `gorm:"not null;default:0;check:stamps_balance >= 0"`
	LifetimeStamps  int       `gorm:"not null;default:0"`
	LastEarnAt      *time.Time
	FirstName       string `gorm:"type:varchar(128)"`
	LastName        string `gorm:"type:varchar(128)"`
	Email           string `gorm:"type:varchar(255)"`
	DateOfBirth     *time.Time
	HasWalletPass   bool   `gorm:"not null;default:false"`
	AppleWalletURL  string `gorm:"type:text"`
	GoogleWalletURL string `gorm:"type:text"`
	JoinedAt        time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (MembershipModel) TableName() string {
	return "memberships"
}
