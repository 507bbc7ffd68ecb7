package impl

import (
	"strings"
	"testing"

	"tally/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintEarnToken_UniqueAndOpaque(t *testing.T) {
	first, err := mintEarnToken()
	require.NoError(t, err)
	second, err := mintEarnToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, first, 43) // 32 bytes, base64 raw-url encoded.
	assert.NotContains(t, first, "=")
}

func TestMintPublicID_Format(t *testing.T) {
	id, err := mintPublicID()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, "p_"))
	assert.Len(t, id, 14) // "p_" + 9 bytes encoded.
	assert.NotContains(t, id, "/")
}

func TestValidateEarnToken_Matches(t *testing.T) {
	program := &entity.LoyaltyProgram{
		EarnToken: "tok_abc123",
		Status:    entity.ProgramStatusActive,
	}

	assert.True(t, validateEarnToken(program, "tok_abc123"))
}

func TestValidateEarnToken_WrongToken(t *testing.T) {
	program := &entity.LoyaltyProgram{
		EarnToken: "tok_abc123",
		Status:    entity.ProgramStatusActive,
	}

	assert.False(t, validateEarnToken(program, "tok_abc124"))
	assert.False(t, validateEarnToken(program, "tok_abc123extra"))
	assert.False(t, validateEarnToken(program, ""))
}

func TestValidateEarnToken_InactiveProgram(t *testing.T) {
	for _, status := range []entity.ProgramStatus{
		entity.ProgramStatusDraft,
		entity.ProgramStatusPaused,
		entity.ProgramStatusArchived,
	} {
		program := &entity.LoyaltyProgram{EarnToken: "tok_abc123", Status: status}
		assert.False(t, validateEarnToken(program, "tok_abc123"), "status %s must reject", status)
	}
}

func TestValidateEarnToken_NilProgram(t *testing.T) {
	assert.False(t, validateEarnToken(nil, "tok_abc123"))
}

func TestValidateEarnToken_EmptyStoredToken(t *testing.T) {
	program := &entity.LoyaltyProgram{Status: entity.ProgramStatusActive}

	assert.False(t, validateEarnToken(program, ""))
	assert.False(t, validateEarnToken(program, "anything"))
}
