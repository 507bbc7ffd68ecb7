// Package usecase defines the application's use case interfaces and their
// request/response shapes.
package usecase

import (
	"context"
	"time"

	"tally/internal/domain/service"
)

// EarnReason explains a declined earn. Declines are expected outcomes and
// travel as data, not as errors; only infrastructure trouble is an error.
type EarnReason string

const (
	// EarnReasonInvalidToken covers unknown programs, inactive programs and
	// token mismatches alike, so a probing client learns nothing.
	EarnReasonInvalidToken EarnReason = "invalid_token"
	// EarnReasonNotMember means the wallet pass has not joined this program.
	EarnReasonNotMember EarnReason = "not_member"
	// EarnReasonCooldown means a rate limit rejected the earn.
	EarnReasonCooldown EarnReason = "cooldown"
	// EarnReasonProgramUnavailable means the program is not accepting joins.
	EarnReasonProgramUnavailable EarnReason = "program_unavailable"
)

// EarnResult is the outcome of one earn attempt.
type EarnResult struct {
	Success          bool       `json:"success"`
	Reason           EarnReason `json:"reason,omitempty"`
	StampsBalance    int        `json:"stampsBalance"`
	RewardThreshold  int        `json:"rewardThreshold,omitempty"`
	RewardUnlocked   bool       `json:"rewardUnlocked"`
	ProximityMessage string     `json:"proximityMessage,omitempty"`
	NextEligibleAt   *time.Time `json:"nextEligibleAt,omitempty"`
}

// MembershipStatus is the member-facing view of one membership.
type MembershipStatus struct {
	StampsBalance    int    `json:"stampsBalance"`
	LifetimeStamps   int    `json:"lifetimeStamps"`
	RewardThreshold  int    `json:"rewardThreshold"`
	RewardAvailable  bool   `json:"rewardAvailable"`
	ProximityMessage string `json:"proximityMessage,omitempty"`
	HasWalletPass    bool   `json:"hasWalletPass"`
	AppleWalletURL   string `json:"appleWalletUrl,omitempty"`
	GoogleWalletURL  string `json:"googleWalletUrl,omitempty"`
}

// ScanResult is the outcome of dispatching a scanned QR payload URL.
type ScanResult struct {
	Mode service.ScanMode `json:"mode"`

	// Earn is set for earn-mode scans.
	Earn *EarnResult `json:"earn,omitempty"`

	// JoinRequired and Membership are set for join-mode scans.
	JoinRequired bool              `json:"joinRequired,omitempty"`
	Membership   *MembershipStatus `json:"membership,omitempty"`
}

// StampLedgerUsecase is the member-facing earn surface.
type StampLedgerUsecase interface {
	// Earn authorizes and applies a single stamp for a scan.
	Earn(ctx context.Context, programPublicID, token, walletPassID string, source string) (*EarnResult, error)

	// GetMembershipStatus returns the member-facing balance view.
	GetMembershipStatus(ctx context.Context, programPublicID, walletPassID string) (*MembershipStatus, error)

	// Scan decodes a QR payload URL and dispatches on its mode: earn-mode
	// performs the earn, join-mode reports whether a join is required.
	Scan(ctx context.Context, rawURL, walletPassID string) (*ScanResult, error)
}

// JoinProfile carries the optional member details captured at join time.
type JoinProfile struct {
	FirstName   string
	LastName    string
	Email       string
	DateOfBirth *time.Time
}

// JoinResult is the outcome of one join attempt.
type JoinResult struct {
	Success         bool       `json:"success"`
	Reason          EarnReason `json:"reason,omitempty"`
	AlreadyMember   bool       `json:"alreadyMember"`
	StampsBalance   int        `json:"stampsBalance"`
	HasWalletPass   bool       `json:"hasWalletPass"`
	AppleWalletURL  string     `json:"appleWalletUrl,omitempty"`
	GoogleWalletURL string     `json:"googleWalletUrl,omitempty"`
}

// JoinUsecase is the member onboarding surface.
type JoinUsecase interface {
	// Join creates a membership, or reports the existing one untouched.
	Join(ctx context.Context, programPublicID, walletPassID string, profile *JoinProfile) (*JoinResult, error)

	// RetryWalletPass re-publishes the pass provision event for a membership
	// whose original provisioning never landed.
	RetryWalletPass(ctx context.Context, programPublicID, walletPassID string) error
}
