// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"tally/internal/domain/entity"
	"tally/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for program persistence.
var (
	// ErrProgramNotFound is returned when a program is not found.
	ErrProgramNotFound = errors.New("program not found")
	// ErrDuplicateProgram is returned when a program with the same public ID already exists.
	ErrDuplicateProgram = errors.New("program already exists")
)

// ProgramRepository defines the interface for loyalty-program database operations.
// Programs are read-mostly; the hot earn path only ever reads them.
type ProgramRepository interface {
	// CreateProgram persists a new loyalty program.
	CreateProgram(ctx context.Context, program *entity.LoyaltyProgram) error

	// FindProgramByPublicID retrieves a program by its opaque public identifier.
	FindProgramByPublicID(ctx context.Context, publicID string) (*entity.LoyaltyProgram, error)

	// FindProgramByID retrieves a program by its internal ID.
	FindProgramByID(ctx context.Context, id uuid.UUID) (*entity.LoyaltyProgram, error)

	// FindProgramsByBusiness retrieves all programs owned by a business.
	FindProgramsByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.LoyaltyProgram, error)

	// UpdateProgramConfig updates owner-editable configuration (name, threshold,
	// reward text, stamp label, earn mode, rate limits).
	UpdateProgramConfig(ctx context.Context, program *entity.LoyaltyProgram) error

	// UpdateProgramStatus transitions the program lifecycle state.
	UpdateProgramStatus(ctx context.Context, id uuid.UUID, status entity.ProgramStatus) error

	// UpdateEarnToken replaces the program's earn token, invalidating printed codes.
	UpdateEarnToken(ctx context.Context, id uuid.UUID, earnToken string) error
}
