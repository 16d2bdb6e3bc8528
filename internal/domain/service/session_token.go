package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidSessionToken is returned for a token that is malformed, carries
// a bad signature, or has expired. Callers treat all three the same way:
// the request proceeds as anonymous.
var ErrInvalidSessionToken = errors.New("invalid session token")

// SessionTokenService signs and verifies the token carried in the session
// cookie. The token holds only the session ID and an absolute expiry; it
// never carries credentials or identity.
type SessionTokenService interface {
	// Issue creates a signed token for a session ID with the given expiry.
	Issue(sessionID uuid.UUID, expiresAt time.Time) (string, error)

	// Parse verifies a token's signature and expiry and returns the session
	// ID it carries. Any failure is ErrInvalidSessionToken.
	Parse(token string) (uuid.UUID, error)
}
