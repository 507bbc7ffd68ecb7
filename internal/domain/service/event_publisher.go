package service

import (
	"context"
)

// Wallet-pass event kinds.
const (
	WalletPassEventProvision = "provision" // First pass creation after join.
	WalletPassEventRefresh   = "refresh"   // Balance or reward state changed.
)

// WalletPassEvent is the payload handed to the pass-sync worker. Publishing is
// strictly fire-and-forget: a publish failure is logged and must never fail
// the earn or join call that produced it.
type WalletPassEvent struct {
	RequestID       string `json:"request_id,omitempty"` // For distributed tracing
	Kind            string `json:"kind"`
	MembershipID    string `json:"membership_id"`
	ProgramPublicID string `json:"program_public_id"`
	WalletPassID    string `json:"wallet_pass_id"`
	StampsBalance   int    `json:"stamps_balance"`
	RewardThreshold int    `json:"reward_threshold"`
	RewardAvailable bool   `json:"reward_available"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishWalletPassEvent publishes a wallet-pass sync event for async processing
	PublishWalletPassEvent(ctx context.Context, event *WalletPassEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
