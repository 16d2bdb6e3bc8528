package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-side half of a client session. The client holds a
// signed cookie token whose subject is the session ID; everything else lives
// in this record. A session carries at most one authenticated identity and
// an optional return-to URL stashed when an anonymous user was redirected
// away from a protected action.
type Session struct {
	ID        uuid.UUID  // The unique identifier for the session.
	UserID    *uuid.UUID // The authenticated identity, nil while anonymous.
	ReturnTo  string     // Stashed destination to resume after login; empty when unset.
	ExpiresAt time.Time  // Absolute expiry, fixed at issuance.
	CreatedAt time.Time  // Timestamp of when this session was issued.
	UpdatedAt time.Time  // Timestamp of the last modification to this session.
}

// Authenticated reports whether an identity is attached to the session.
func (s *Session) Authenticated() bool {
	return s.UserID != nil
}

// Expired reports whether the session's absolute expiry has passed.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
