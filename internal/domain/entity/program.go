// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProgramStatus is the closed set of lifecycle states for a loyalty program.
type ProgramStatus string

const (
	ProgramStatusDraft    ProgramStatus = "draft"
	ProgramStatusActive   ProgramStatus = "active"
	ProgramStatusPaused   ProgramStatus = "paused"
	ProgramStatusArchived ProgramStatus = "archived"
)

// Valid reports whether the status is one of the known states.
func (s ProgramStatus) Valid() bool {
	switch s {
	case ProgramStatusDraft, ProgramStatusActive, ProgramStatusPaused, ProgramStatusArchived:
		return true
	}

	return false
}

// EarnMode describes what a single stamp represents for a program.
type EarnMode string

const (
	EarnModePerVisit    EarnMode = "per_visit"
	EarnModePerPurchase EarnMode = "per_purchase"
)

// LoyaltyProgram is a business's stamp-card program. The earn token is the
// static secret embedded in the printed QR code; rotating it invalidates all
// previously printed codes for the program.
type LoyaltyProgram struct {
	ID                uuid.UUID     `json:"-"`                  // Internal identifier, never exposed over the API.
	PublicID          string        `json:"public_id"`          // Opaque identifier embedded in QR payload URLs.
	BusinessID        uuid.UUID     `json:"business_id"`        // The owning business.
	Name              string        `json:"name"`               // Display name shown on the stamp card.
	RewardThreshold   int           `json:"reward_threshold"`   // Stamps needed to unlock a reward, always >= 1.
	RewardDescription string        `json:"reward_description"` // What the member gets at the threshold.
	StampLabel        string        `json:"stamp_label"`        // Label for a single stamp, e.g. "咖啡".
	EarnMode          EarnMode      `json:"earn_mode"`          // per_visit or per_purchase.
	MaxEarnsPerDay    int           `json:"max_earns_per_day"`  // Rolling-24h cap per member, 0 = unlimited.
	MinGapMinutes     int           `json:"min_gap_minutes"`    // Minimum minutes between earns, 0 = none.
	EarnToken         string        `json:"-"`                  // Static per-program secret, never serialized.
	Status            ProgramStatus `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// Acceptable reports whether the program currently accepts earn and join calls.
func (p *LoyaltyProgram) Acceptable() bool {
	return p != nil && p.Status == ProgramStatusActive
}

// MinGap returns the cooldown between earns as a duration.
func (p *LoyaltyProgram) MinGap() time.Duration {
	return time.Duration(p.MinGapMinutes) * time.Minute
}
