// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	"tally/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// programRepository implements the domain.ProgramRepository interface using GORM.
type programRepository struct {
	db *gorm.DB
}

// NewProgramRepository is the constructor for programRepository.
// It returns the repository as a domain.ProgramRepository interface, adhering to dependency inversion.
func NewProgramRepository(db *gorm.DB) repository.ProgramRepository {
	return &programRepository{db: db}
}

// CreateProgram persists a new loyalty program.
func (repo *programRepository) CreateProgram(ctx context.Context, program *entity.LoyaltyProgram) error {
	programM := fromProgramDomain(program)

	if err := repo.db.WithContext(ctx).Create(programM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProgramCreationFailed.WrapMessage("public id already exists")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRewardThreshold.WrapMessage("program limits out of range")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProgramCreationFailed.WrapMessage("missing required program information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create program")
	}

	// Update the entity with generated values
	program.ID = programM.ID
	program.CreatedAt = programM.CreatedAt
	program.UpdatedAt = programM.UpdatedAt

	return nil
}

// FindProgramByPublicID retrieves a program by its opaque public identifier.
// This is the hot lookup on every scan, so it is routed to a read replica.
func (repo *programRepository) FindProgramByPublicID(ctx context.Context, publicID string) (*entity.LoyaltyProgram, error) {
	var programM model.LoyaltyProgramModel

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("public_id = ?", publicID).
		First(&programM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProgramNotFound
		}

		return nil, errors.Wrap(err, "failed to find program by public id")
	}

	return toProgramDomain(&programM), nil
}

// FindProgramByID retrieves a program by its internal ID.
func (repo *programRepository) FindProgramByID(ctx context.Context, id uuid.UUID) (*entity.LoyaltyProgram, error) {
	var programM model.LoyaltyProgramModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&programM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProgramNotFound
		}

		return nil, errors.Wrap(err, "failed to find program by id")
	}

	return toProgramDomain(&programM), nil
}

// FindProgramsByBusiness retrieves all programs owned by a business, newest first.
func (repo *programRepository) FindProgramsByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.LoyaltyProgram, error) {
	var programModels []*model.LoyaltyProgramModel

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&programModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	programs := make([]*entity.LoyaltyProgram, 0, len(programModels))
	for _, programM := range programModels {
		programs = append(programs, toProgramDomain(programM))
	}

	return programs, nil
}

// UpdateProgramConfig updates owner-editable configuration fields.
// Status and the earn token have their own targeted updates and are excluded here.
func (repo *programRepository) UpdateProgramConfig(ctx context.Context, program *entity.LoyaltyProgram) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyProgramModel{}).
		Where("id = ?", program.ID).
		Updates(map[string]any{
			"name":               program.Name,
			"reward_threshold":   program.RewardThreshold,
			"reward_description": program.RewardDescription,
			"stamp_label":        program.StampLabel,
			"earn_mode":          string(program.EarnMode),
			"max_earns_per_day":  program.MaxEarnsPerDay,
			"min_gap_minutes":    program.MinGapMinutes,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidRewardThreshold.WrapMessage("program limits out of range")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update program")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProgramNotFound
	}

	return nil
}

// UpdateProgramStatus transitions the program lifecycle state.
func (repo *programRepository) UpdateProgramStatus(ctx context.Context, id uuid.UUID, status entity.ProgramStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyProgramModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update program status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProgramNotFound
	}

	return nil
}

// UpdateEarnToken replaces the program's earn token, invalidating printed codes.
func (repo *programRepository) UpdateEarnToken(ctx context.Context, id uuid.UUID, earnToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyProgramModel{}).
		Where("id = ?", id).
		Update("earn_token", earnToken)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to rotate earn token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProgramNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toProgramDomain converts a GORM LoyaltyProgramModel to a domain LoyaltyProgram entity.
func toProgramDomain(data *model.LoyaltyProgramModel) *entity.LoyaltyProgram {
	if data == nil {
		return nil
	}

	return &entity.LoyaltyProgram{
		ID:                data.ID,
		PublicID:          data.PublicID,
		BusinessID:        data.BusinessID,
		Name:              data.Name,
		RewardThreshold:   data.RewardThreshold,
		RewardDescription: data.RewardDescription,
		StampLabel:        data.StampLabel,
		EarnMode:          entity.EarnMode(data.EarnMode),
		MaxEarnsPerDay:    data.MaxEarnsPerDay,
		MinGapMinutes:     data.MinGapMinutes,
		EarnToken:         data.EarnToken,
		Status:            entity.ProgramStatus(data.Status),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromProgramDomain converts a domain LoyaltyProgram entity to a GORM LoyaltyProgramModel.
func fromProgramDomain(data *entity.LoyaltyProgram) *model.LoyaltyProgramModel {
	if data == nil {
		return nil
	}

	return &model.LoyaltyProgramModel{
		ID:                data.ID,
		PublicID:          data.PublicID,
		BusinessID:        data.BusinessID,
		Name:              data.Name,
		RewardThreshold:   data.RewardThreshold,
		RewardDescription: data.RewardDescription,
		StampLabel:        data.StampLabel,
		EarnMode:          string(data.EarnMode),
		MaxEarnsPerDay:    data.MaxEarnsPerDay,
		MinGapMinutes:     data.MinGapMinutes,
		EarnToken:         data.EarnToken,
		Status:            string(data.Status),
	}
}
