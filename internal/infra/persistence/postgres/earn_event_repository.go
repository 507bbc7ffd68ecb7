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

// earnEventRepository implements the domain.EarnEventRepository interface using GORM.
type earnEventRepository struct {
	db *gorm.DB
}

// NewEarnEventRepository is the constructor for earnEventRepository.
func NewEarnEventRepository(db *gorm.DB) repository.EarnEventRepository {
	return &earnEventRepository{db: db}
}

// CreateEarnEvent appends one ledger entry for a successful earn.
func (repo *earnEventRepository) CreateEarnEvent(ctx context.Context, event *entity.EarnEvent) error {
	eventM := fromEarnEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "earn event references unknown membership")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create earn event")
	}

	event.ID = eventM.ID

	return nil
}

// CountEventsSince counts a membership's earn events at or after the given instant.
// Called inside the earn transaction, so it reads the primary and sees
// rows written by concurrent committed earns.
func (repo *earnEventRepository) CountEventsSince(ctx context.Context, membershipID uuid.UUID, since time.Time) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.EarnEventModel{}).
		Where("membership_id = ? AND occurred_at >= ?", membershipID, since).
		Count(&count).Error

	if err != nil {
		return 0, errors.Wrap(err, "failed to count earn events")
	}

	return count, nil
}

// FindOldestEventSince returns the earliest event at or after the given
// instant, or nil when there is none.
func (repo *earnEventRepository) FindOldestEventSince(ctx context.Context, membershipID uuid.UUID, since time.Time) (*entity.EarnEvent, error) {
	var eventM model.EarnEventModel

	err := repo.db.WithContext(ctx).
		Where("membership_id = ? AND occurred_at >= ?", membershipID, since).
		Order("occurred_at ASC").
		First(&eventM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find oldest earn event")
	}

	return toEarnEventDomain(&eventM), nil
}

// FindEventsByMembership returns the most recent events for a membership, newest first.
func (repo *earnEventRepository) FindEventsByMembership(ctx context.Context, membershipID uuid.UUID, limit int) ([]*entity.EarnEvent, error) {
	var eventModels []*model.EarnEventModel

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("membership_id = ?", membershipID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&eventModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	events := make([]*entity.EarnEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEarnEventDomain(eventM))
	}

	return events, nil
}

// --- Mapper Functions ---

// toEarnEventDomain converts a GORM EarnEventModel to a domain EarnEvent entity.
func toEarnEventDomain(data *model.EarnEventModel) *entity.EarnEvent {
	if data == nil {
		return nil
	}

	return &entity.EarnEvent{
		ID:             data.ID,
		MembershipID:   data.MembershipID,
		OccurredAt:     data.OccurredAt,
		BalanceAfter:   data.BalanceAfter,
		RewardUnlocked: data.RewardUnlocked,
		Source:         entity.EarnSource(data.Source),
	}
}

// fromEarnEventDomain converts a domain EarnEvent entity to a GORM EarnEventModel.
func fromEarnEventDomain(data *entity.EarnEvent) *model.EarnEventModel {
	if data == nil {
		return nil
	}

	return &model.EarnEventModel{
		ID:             data.ID,
		MembershipID:   data.MembershipID,
		OccurredAt:     data.OccurredAt,
		BalanceAfter:   data.BalanceAfter,
		RewardUnlocked: data.RewardUnlocked,
		Source:         string(data.Source),
	}
}
