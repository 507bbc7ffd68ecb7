package impl

import (
	"testing"
	"time"

	"tally/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limiterProgram(maxPerDay, minGapMinutes int) *entity.LoyaltyProgram {
	return &entity.LoyaltyProgram{
		RewardThreshold: 8,
		MaxEarnsPerDay:  maxPerDay,
		MinGapMinutes:   minGapMinutes,
		Status:          entity.ProgramStatusActive,
	}
}

func TestCheckEarnEligibility_NoLimitsAlwaysAllows(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	lastEarn := now.Add(-time.Second)

	verdict := checkEarnEligibility(limiterProgram(0, 0), &lastEarn, 100, nil, now)

	assert.True(t, verdict.allowed)
	assert.True(t, verdict.nextEligibleAt.IsZero())
}

func TestCheckEarnEligibility_FirstEarnAllowed(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	verdict := checkEarnEligibility(limiterProgram(3, 30), nil, 0, nil, now)

	assert.True(t, verdict.allowed)
}

func TestCheckEarnEligibility_MinGapBlocks(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	lastEarn := now.Add(-10 * time.Minute)

	verdict := checkEarnEligibility(limiterProgram(0, 30), &lastEarn, 0, nil, now)

	require.False(t, verdict.allowed)
	assert.Equal(t, lastEarn.Add(30*time.Minute), verdict.nextEligibleAt)
}

func TestCheckEarnEligibility_MinGapExactBoundaryAllows(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	lastEarn := now.Add(-30 * time.Minute)

	verdict := checkEarnEligibility(limiterProgram(0, 30), &lastEarn, 0, nil, now)

	assert.True(t, verdict.allowed)
}

func TestCheckEarnEligibility_DailyCapBlocks(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	oldest := &entity.EarnEvent{OccurredAt: now.Add(-23 * time.Hour)}

	verdict := checkEarnEligibility(limiterProgram(2, 0), nil, 2, oldest, now)

	require.False(t, verdict.allowed)
	assert.Equal(t, oldest.OccurredAt.Add(24*time.Hour), verdict.nextEligibleAt)
}

func TestCheckEarnEligibility_UnderCapAllows(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	verdict := checkEarnEligibility(limiterProgram(3, 0), nil, 2, nil, now)

	assert.True(t, verdict.allowed)
}

func TestCheckEarnEligibility_BothBlockReportsLaterTime(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	lastEarn := now.Add(-5 * time.Minute)
	oldest := &entity.EarnEvent{OccurredAt: now.Add(-2 * time.Hour)}

	// Gap clears at now+25m, cap clears at now+22h. The member must be told
	// the later of the two.
	verdict := checkEarnEligibility(limiterProgram(1, 30), &lastEarn, 1, oldest, now)

	require.False(t, verdict.allowed)
	assert.Equal(t, oldest.OccurredAt.Add(24*time.Hour), verdict.nextEligibleAt)
}

func TestCheckEarnEligibility_BothBlockGapLater(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	lastEarn := now.Add(-time.Minute)
	oldest := &entity.EarnEvent{OccurredAt: now.Add(-24*time.Hour + time.Minute)}

	// Cap clears at now+1m, gap clears at now+59m.
	verdict := checkEarnEligibility(limiterProgram(1, 60), &lastEarn, 1, oldest, now)

	require.False(t, verdict.allowed)
	assert.Equal(t, lastEarn.Add(60*time.Minute), verdict.nextEligibleAt)
}

func TestCheckEarnEligibility_RollingWindowFreesUp(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	// The caller counted zero events in the trailing 24h, so an earlier burst
	// outside the window no longer counts against the cap.
	verdict := checkEarnEligibility(limiterProgram(2, 0), nil, 0, nil, now)

	assert.True(t, verdict.allowed)
}
