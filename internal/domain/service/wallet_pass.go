package service

import "context"

// WalletPassRequest carries the membership state the provisioner renders onto the pass.
type WalletPassRequest struct {
	MembershipID    string `json:"membership_id"`
	ProgramPublicID string `json:"program_public_id"`
	WalletPassID    string `json:"wallet_pass_id"`
	StampsBalance   int    `json:"stamps_balance"`
	RewardThreshold int    `json:"reward_threshold"`
	RewardAvailable bool   `json:"reward_available"`
}

// WalletPassURLs are the install links returned by the provisioner.
type WalletPassURLs struct {
	AppleURL  string `json:"apple_url"`
	GoogleURL string `json:"google_url"`
}

// WalletPassProvisioner defines the interface to the external collaborator that
// builds Apple/Google wallet passes. All pass-format logic lives on the other
// side of this interface.
type WalletPassProvisioner interface {
	// ProvisionPass creates or refreshes the pass for a membership and
	// returns the install URLs.
	ProvisionPass(ctx context.Context, req *WalletPassRequest) (*WalletPassURLs, error)
}
