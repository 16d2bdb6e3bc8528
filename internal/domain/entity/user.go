// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record behind an authenticated session.
// PasswordHash is an opaque credential blob: it is written exactly once by
// the registration flow and is never touched by resource handlers.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Username     string    // Unique login name, chosen at registration.
	Email        string    // The user's contact email, unique across users.
	PasswordHash string    // bcrypt hash managed by the credential verifier.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
