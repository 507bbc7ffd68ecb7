package entity

import (
	"time"

	"github.com/google/uuid"
)

// Membership is a customer's enrollment in one program, keyed by the stable
// external wallet identity. The stamp balance is mutated exclusively by the
// stamp ledger; wallet-pass fields are written only by the sync worker.
type Membership struct {
	ID              uuid.UUID  `json:"id"`
	ProgramID       uuid.UUID  `json:"program_id"`
	WalletPassID    string     `json:"wallet_pass_id"` // Stable opaque identity of the end user.
	StampsBalance   int        `json:"stamps_balance"` // Always 0 <= balance < reward threshold.
	LifetimeStamps  int        `json:"lifetime_stamps"`
	LastEarnAt      *time.Time `json:"last_earn_at,omitempty"`
	FirstName       string     `json:"first_name,omitempty"`
	LastName        string     `json:"last_name,omitempty"`
	Email           string     `json:"email,omitempty"`
	DateOfBirth     *time.Time `json:"date_of_birth,omitempty"`
	HasWalletPass   bool       `json:"has_wallet_pass"`
	AppleWalletURL  string     `json:"apple_wallet_url,omitempty"`
	GoogleWalletURL string     `json:"google_wallet_url,omitempty"`
	JoinedAt        time.Time  `json:"joined_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
