package impl

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"

	"tally/internal/domain/entity"

	"github.com/pkg/errors"
)

const (
	earnTokenBytes = 32
	publicIDBytes  = 9
	publicIDPrefix = "p_"
)

// mintEarnToken generates a fresh opaque earn token. The token is a static
// per-program secret embedded in printed QR codes; rotating it is the only
// way to revoke codes already in the wild.
func mintEarnToken() (string, error) {
	buf := make([]byte, earnTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to mint earn token")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// mintPublicID generates a program's opaque public identifier.
func mintPublicID() (string, error) {
	buf := make([]byte, publicIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to mint public id")
	}

	return publicIDPrefix + base64.RawURLEncoding.EncodeToString(buf), nil
}

// validateEarnToken reports whether the presented token authorizes earns for
// the program. The comparison is constant-time so response timing leaks
// nothing about the stored token. A nil or non-active program always fails;
// the caller reports all failures with the same opaque reason.
func validateEarnToken(program *entity.LoyaltyProgram, presented string) bool {
	if !program.Acceptable() {
		return false
	}
	if presented == "" || program.EarnToken == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(program.EarnToken), []byte(presented)) == 1
}
