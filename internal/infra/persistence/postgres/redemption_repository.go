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
	"gorm.io/plugin/dbresolver"
)

// redemptionRepository implements the domain.RedemptionRepository interface using GORM.
type redemptionRepository struct {
	db *gorm.DB
}

// NewRedemptionRepository is the constructor for redemptionRepository.
func NewRedemptionRepository(db *gorm.DB) repository.RedemptionRepository {
	return &redemptionRepository{db: db}
}

// CreateRedemption opens a new redemption at the moment a reward unlocks.
func (repo *redemptionRepository) CreateRedemption(ctx context.Context, redemption *entity.RewardRedemption) error {
	redemptionM := fromRedemptionDomain(redemption)

	if err := repo.db.WithContext(ctx).Create(redemptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "redemption references unknown membership")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create redemption")
	}

	redemption.ID = redemptionM.ID

	return nil
}

// FindOpenRedemption retrieves the membership's open (unredeemed) redemption.
func (repo *redemptionRepository) FindOpenRedemption(ctx context.Context, membershipID uuid.UUID) (*entity.RewardRedemption, error) {
	var redemptionM model.RewardRedemptionModel

	err := repo.db.WithContext(ctx).
		Where("membership_id = ? AND redeemed_at IS NULL", membershipID).
		Order("unlocked_at DESC").
		First(&redemptionM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRedemptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find open redemption")
	}

	return toRedemptionDomain(&redemptionM), nil
}

// FindLatestRedemption retrieves the most recently unlocked redemption regardless of state.
func (repo *redemptionRepository) FindLatestRedemption(ctx context.Context, membershipID uuid.UUID) (*entity.RewardRedemption, error) {
	var redemptionM model.RewardRedemptionModel

	err := repo.db.WithContext(ctx).
		Where("membership_id = ?", membershipID).
		Order("unlocked_at DESC").
		First(&redemptionM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRedemptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest redemption")
	}

	return toRedemptionDomain(&redemptionM), nil
}

// MarkRedeemed closes a redemption. The state guard in the WHERE clause keeps
// a second redeem of the same record from overwriting the original timestamp.
func (repo *redemptionRepository) MarkRedeemed(ctx context.Context, id uuid.UUID, redeemedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RewardRedemptionModel{}).
		Where("id = ? AND redeemed_at IS NULL", id).
		Update("redeemed_at", redeemedAt)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark redemption redeemed")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRedemptionNotFound
	}

	return nil
}

// FindRedemptionsByMembership returns redemption history, newest first.
func (repo *redemptionRepository) FindRedemptionsByMembership(ctx context.Context, membershipID uuid.UUID) ([]*entity.RewardRedemption, error) {
	var redemptionModels []*model.RewardRedemptionModel

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("membership_id = ?", membershipID).
		Order("unlocked_at DESC").
		Find(&redemptionModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	redemptions := make([]*entity.RewardRedemption, 0, len(redemptionModels))
	for _, redemptionM := range redemptionModels {
		redemptions = append(redemptions, toRedemptionDomain(redemptionM))
	}

	return redemptions, nil
}

// --- Mapper Functions ---

// toRedemptionDomain converts a GORM RewardRedemptionModel to a domain RewardRedemption entity.
func toRedemptionDomain(data *model.RewardRedemptionModel) *entity.RewardRedemption {
	if data == nil {
		return nil
	}

	return &entity.RewardRedemption{
		ID:                data.ID,
		MembershipID:      data.MembershipID,
		UnlockedAt:        data.UnlockedAt,
		RedeemedAt:        data.RedeemedAt,
		RewardDescription: data.RewardDescription,
	}
}

// fromRedemptionDomain converts a domain RewardRedemption entity to a GORM RewardRedemptionModel.
func fromRedemptionDomain(data *entity.RewardRedemption) *model.RewardRedemptionModel {
	if data == nil {
		return nil
	}

	return &model.RewardRedemptionModel{
		ID:                data.ID,
		MembershipID:      data.MembershipID,
		UnlockedAt:        data.UnlockedAt,
		RedeemedAt:        data.RedeemedAt,
		RewardDescription: data.RewardDescription,
	}
}
