package service

import (
	"errors"
	"time"
)

// ErrInvalidToken is the single failure every token defect collapses to:
// malformed encoding, bad signature, wrong algorithm, and expiry are
// indistinguishable to callers. Internal diagnostics may log the
// distinction, responses never carry it.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService defines the interface for issuing and validating signed,
// time-bounded identity tokens. Implementations hold only the immutable
// secret and a clock source; a token is never mutated after issuance.
type TokenService interface {
	// Generate issues a signed token asserting the given subject for the
	// configured validity window.
	Generate(userID int64) (string, error)

	// Validate checks the token's signature, algorithm, and expiry and
	// returns the subject identifier. Any defect yields ErrInvalidToken.
	Validate(tokenString string) (int64, error)

	// TTL returns the configured validity window.
	TTL() time.Duration
}
