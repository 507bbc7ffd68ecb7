package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and validating the JWTs that
// guard the owner/admin back-office routes. Member-facing loyalty routes are
// unauthenticated; the earn token, not a session, proves a scan.
type TokenService interface {
	// GenerateTokens creates a new access/refresh token pair for an account with roles.
	GenerateTokens(accountID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
