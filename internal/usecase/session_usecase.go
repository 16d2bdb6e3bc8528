package usecase

import (
	"context"

	"campsite/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase drives the session state machine:
// Anonymous -> Authenticated on register/login, back to Anonymous on logout
// or expiry. Every request resolves its session here; failures resolve to
// anonymous, never to a request error.
type SessionUsecase interface {
	// Begin creates a fresh anonymous session and returns it together with
	// its signed cookie token.
	Begin(ctx context.Context) (*entity.Session, string, error)

	// Resolve verifies a cookie token and loads the matching live session.
	// Expired and invalid tokens fail with an error the caller treats as
	// "no session".
	Resolve(ctx context.Context, token string) (*entity.Session, error)

	// AttachIdentity binds a user to a session (the Authenticated state).
	AttachIdentity(ctx context.Context, sessionID, userID uuid.UUID) error

	// ClearIdentity removes the identity from a session on logout. The
	// session row and its unrelated data survive.
	ClearIdentity(ctx context.Context, sessionID uuid.UUID) error

	// StashReturnTo records the URL an anonymous user was trying to reach
	// before being redirected to login.
	StashReturnTo(ctx context.Context, sessionID uuid.UUID, url string) error

	// ConsumeReturnTo returns the stashed URL and clears it, so the
	// redirect is honored exactly once. Returns "" when nothing is stashed.
	ConsumeReturnTo(ctx context.Context, sessionID uuid.UUID) (string, error)
}
