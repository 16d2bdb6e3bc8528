package repository

import (
	"context"
	"errors"

	"campsite/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when a session is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session's absolute expiry has passed.
	ErrSessionExpired = errors.New("session has expired")
)

// SessionRepository defines the interface for server-side session state.
// One row per client; the signed cookie token only carries the row's ID.
type SessionRepository interface {
	// Create persists a new session record.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session record by its unique ID. Returns
	// ErrSessionExpired when the record exists but its expiry has passed.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// Update modifies an existing session record (identity attach/detach,
	// return-to stash and clear).
	Update(ctx context.Context, session *entity.Session) error

	// Delete removes a session record, ending the session outright.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes all expired session records. Called
	// periodically for cleanup.
	DeleteExpired(ctx context.Context) error
}
