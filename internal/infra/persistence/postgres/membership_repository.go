// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	"tally/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// membershipRepository implements the domain.MembershipRepository interface using GORM.
type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository is the constructor for membershipRepository.
func NewMembershipRepository(db *gorm.DB) repository.MembershipRepository {
	return &membershipRepository{db: db}
}

// CreateMembership persists a new membership with a zero balance.
// The unique index on (program_id, wallet_pass_id) is the idempotency
// backstop when two joins race.
func (repo *membershipRepository) CreateMembership(ctx context.Context, membership *entity.Membership) error {
	membershipM := fromMembershipDomain(membership)

	if err := repo.db.WithContext(ctx).Create(membershipM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMembership
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMembershipCreationFailed.WrapMessage("invalid program reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMembershipCreationFailed.WrapMessage("missing required membership information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create membership")
	}

	// Update the entity with generated values
	membership.ID = membershipM.ID
	membership.JoinedAt = membershipM.JoinedAt
	membership.UpdatedAt = membershipM.UpdatedAt

	return nil
}

// FindMembership retrieves a membership by its composite identity.
func (repo *membershipRepository) FindMembership(ctx context.Context, programID uuid.UUID, walletPassID string) (*entity.Membership, error) {
	var membershipM model.MembershipModel

	err := repo.db.WithContext(ctx).
		Where("program_id = ? AND wallet_pass_id = ?", programID, walletPassID).
		First(&membershipM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find membership")
	}

	return toMembershipDomain(&membershipM), nil
}

// FindMembershipByID retrieves a membership by its internal ID.
func (repo *membershipRepository) FindMembershipByID(ctx context.Context, id uuid.UUID) (*entity.Membership, error) {
	var membershipM model.MembershipModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&membershipM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find membership by id")
	}

	return toMembershipDomain(&membershipM), nil
}

// FindMembershipForUpdate retrieves a membership under SELECT ... FOR UPDATE.
// Callers must hold an open transaction; the row lock serializes concurrent
// earns for one membership while leaving other memberships untouched.
func (repo *membershipRepository) FindMembershipForUpdate(ctx context.Context, programID uuid.UUID, walletPassID string) (*entity.Membership, error) {
	var membershipM model.MembershipModel

	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("program_id = ? AND wallet_pass_id = ?", programID, walletPassID).
		First(&membershipM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "failed to lock membership")
	}

	return toMembershipDomain(&membershipM), nil
}

// ApplyEarn writes the outcome of one earn as a targeted column update.
func (repo *membershipRepository) ApplyEarn(ctx context.Context, id uuid.UUID, newBalance, lifetimeStamps int, earnedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MembershipModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"stamps_balance":  newBalance,
			"lifetime_stamps": lifetimeStamps,
			"last_earn_at":    earnedAt,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.NewDatabaseExecuteError(result.Error, "earn produced a negative balance")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to apply earn")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMembershipNotFound
	}

	return nil
}

// UpdateWalletPass records the install URLs produced by the pass provisioner.
func (repo *membershipRepository) UpdateWalletPass(ctx context.Context, id uuid.UUID, appleURL, googleURL string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MembershipModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"has_wallet_pass":   true,
			"apple_wallet_url":  appleURL,
			"google_wallet_url": googleURL,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update wallet pass")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMembershipNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMembershipDomain converts a GORM MembershipModel to a domain Membership entity.
func toMembershipDomain(data *model.MembershipModel) *entity.Membership {
	if data == nil {
		return nil
	}

	return &entity.Membership{
		ID:              data.ID,
		ProgramID:       data.ProgramID,
		WalletPassID:    data.WalletPassID,
		StampsBalance:   data.StampsBalance,
		LifetimeStamps:  data.LifetimeStamps,
		LastEarnAt:      data.LastEarnAt,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           data.Email,
		DateOfBirth:     data.DateOfBirth,
		HasWalletPass:   data.HasWalletPass,
		AppleWalletURL:  data.AppleWalletURL,
		GoogleWalletURL: data.GoogleWalletURL,
		JoinedAt:        data.JoinedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromMembershipDomain converts a domain Membership entity to a GORM MembershipModel.
func fromMembershipDomain(data *entity.Membership) *model.MembershipModel {
	if data == nil {
		return nil
	}

	return &model.MembershipModel{
		ID:              data.ID,
		ProgramID:       data.ProgramID,
		WalletPassID:    data.WalletPassID,
		StampsBalance:   data.StampsBalance,
		LifetimeStamps:  data.LifetimeStamps,
		LastEarnAt:      data.LastEarnAt,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           data.Email,
		DateOfBirth:     data.DateOfBirth,
		HasWalletPass:   data.HasWalletPass,
		AppleWalletURL:  data.AppleWalletURL,
		GoogleWalletURL: data.GoogleWalletURL,
	}
}
