package cache

import (
	"context"
	"testing"
	"time"

	"tally/internal/domain/entity"
	"tally/internal/domain/repository"
	mockRepo "tally/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cachedTestProgram() *entity.LoyaltyProgram {
	return &entity.LoyaltyProgram{
		ID:        uuid.New(),
		PublicID:  "p_7f3k9x",
		EarnToken: "tok_abc123",
		Status:    entity.ProgramStatusActive,
	}
}

func TestProgramCache_SecondReadServedFromCache(t *testing.T) {
	inner := mockRepo.NewMockProgramRepository(t)
	cache := NewProgramCache(inner, time.Minute)

	ctx := context.Background()
	program := cachedTestProgram()

	inner.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil).
		Once()

	first, err := cache.FindProgramByPublicID(ctx, program.PublicID)
	require.NoError(t, err)

	second, err := cache.FindProgramByPublicID(ctx, program.PublicID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestProgramCache_ExpiredEntryReadsThrough(t *testing.T) {
	inner := mockRepo.NewMockProgramRepository(t)
	cache := NewProgramCache(inner, time.Nanosecond)

	ctx := context.Background()
	program := cachedTestProgram()

	inner.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil).
		Twice()

	_, err := cache.FindProgramByPublicID(ctx, program.PublicID)
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	_, err = cache.FindProgramByPublicID(ctx, program.PublicID)
	require.NoError(t, err)
}

func TestProgramCache_NotFoundIsNotCached(t *testing.T) {
	inner := mockRepo.NewMockProgramRepository(t)
	cache := NewProgramCache(inner, time.Minute)

	ctx := context.Background()

	inner.EXPECT().
		FindProgramByPublicID(ctx, "p_missing").
		Return(nil, repository.ErrProgramNotFound).
		Once()

	_, err := cache.FindProgramByPublicID(ctx, "p_missing")
	require.Error(t, err)

	// A program created right after the miss must be visible.
	program := cachedTestProgram()
	program.PublicID = "p_missing"
	inner.EXPECT().
		FindProgramByPublicID(ctx, "p_missing").
		Return(program, nil).
		Once()

	got, err := cache.FindProgramByPublicID(ctx, "p_missing")
	require.NoError(t, err)
	assert.Equal(t, program, got)
}

func TestProgramCache_UpdateEarnTokenInvalidates(t *testing.T) {
	inner := mockRepo.NewMockProgramRepository(t)
	cache := NewProgramCache(inner, time.Minute)

	ctx := context.Background()
	program := cachedTestProgram()
	rotated := *program
	rotated.EarnToken = "tok_rotated"

	inner.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil).
		Once()

	_, err := cache.FindProgramByPublicID(ctx, program.PublicID)
	require.NoError(t, err)

	inner.EXPECT().
		UpdateEarnToken(ctx, program.ID, "tok_rotated").
		Return(nil)

	require.NoError(t, cache.UpdateEarnToken(ctx, program.ID, "tok_rotated"))

	inner.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(&rotated, nil).
		Once()

	got, err := cache.FindProgramByPublicID(ctx, program.PublicID)
	require.NoError(t, err)
	assert.Equal(t, "tok_rotated", got.EarnToken)
}

func TestProgramCache_UpdateStatusInvalidates(t *testing.T) {
	inner := mockRepo.NewMockProgramRepository(t)
	cache := NewProgramCache(inner, time.Minute)

	ctx := context.Background()
	program := cachedTestProgram()
	paused := *program
	paused.Status = entity.ProgramStatusPaused

	inner.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil).
		Once()

	_, err := cache.FindProgramByPublicID(ctx, program.PublicID)
	require.NoError(t, err)

	inner.EXPECT().
		UpdateProgramStatus(ctx, program.ID, entity.ProgramStatusPaused).
		Return(nil)

	require.NoError(t, cache.UpdateProgramStatus(ctx, program.ID, entity.ProgramStatusPaused))

	inner.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(&paused, nil).
		Once()

	got, err := cache.FindProgramByPublicID(ctx, program.PublicID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProgramStatusPaused, got.Status)
}

func TestProgramCache_FailedWriteKeepsEntry(t *testing.T) {
	inner := mockRepo.NewMockProgramRepository(t)
	cache := NewProgramCache(inner, time.Minute)

	ctx := context.Background()
	program := cachedTestProgram()

	inner.EXPECT().
		FindProgramByPublicID(ctx, program.PublicID).
		Return(program, nil).
		Once()

	_, err := cache.FindProgramByPublicID(ctx, program.PublicID)
	require.NoError(t, err)

	inner.EXPECT().
		UpdateProgramStatus(ctx, program.ID, entity.ProgramStatusPaused).
		Return(errors.New("db error"))

	require.Error(t, cache.UpdateProgramStatus(ctx, program.ID, entity.ProgramStatusPaused))

	// The cached row still matches the store, so it survives.
	got, err := cache.FindProgramByPublicID(ctx, program.PublicID)
	require.NoError(t, err)
	assert.Equal(t, program, got)
}

func TestProgramCache_PassThroughReads(t *testing.T) {
	inner := mockRepo.NewMockProgramRepository(t)
	cache := NewProgramCache(inner, time.Minute)

	ctx := context.Background()
	program := cachedTestProgram()

	inner.EXPECT().
		FindProgramByID(ctx, program.ID).
		Return(program, nil)
	inner.EXPECT().
		FindProgramsByBusiness(ctx, program.BusinessID).
		Return([]*entity.LoyaltyProgram{program}, nil)

	byID, err := cache.FindProgramByID(ctx, program.ID)
	require.NoError(t, err)
	assert.Equal(t, program, byID)

	list, err := cache.FindProgramsByBusiness(ctx, program.BusinessID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
