package impl

import (
	"context"
	"log/slog"
	"time"

	"campsite/config"
	deliverycontext "campsite/internal/delivery/context"
	"campsite/internal/domain/entity"
	"campsite/internal/domain/repository"
	"campsite/internal/domain/service"
	"campsite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface. It owns the
// session state machine; the delivery layer only moves cookies around.
type sessionService struct {
	sessionRepo repository.SessionRepository
	tokens      service.SessionTokenService
	ttl         time.Duration
	logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	sessionRepo repository.SessionRepository,
	tokens service.SessionTokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SessionUsecase {
	ttl := config.DefaultSessionTTL
	if cfg != nil && cfg.Session != nil && cfg.Session.TTL > 0 {
		ttl = cfg.Session.TTL
	}

	return &sessionService{
		sessionRepo: sessionRepo,
		tokens:      tokens,
		ttl:         ttl,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Begin creates a fresh anonymous session with an absolute expiry and
// returns its signed cookie token.
func (srv *sessionService) Begin(ctx context.Context) (*entity.Session, string, error) {
	session := &entity.Session{
		ExpiresAt: time.Now().Add(srv.ttl),
	}

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to create session", slog.Any("error", err))

		return nil, "", errors.Wrap(err, "failed to create session")
	}

	token, err := srv.tokens.Issue(session.ID, session.ExpiresAt)
	if err != nil {
		srv.log(ctx).Error("Failed to sign session token", slog.Any("error", err))

		return nil, "", errors.Wrap(err, "failed to sign session token")
	}

	srv.log(ctx).Debug("Session issued", slog.Any("sessionID", session.ID))

	return session, token, nil
}

// Resolve verifies a cookie token and loads the live session it points at.
// Any failure (bad signature, expired token, missing or expired row) is
// returned as an error; callers treat them all as "anonymous".
func (srv *sessionService) Resolve(ctx context.Context, token string) (*entity.Session, error) {
	sessionID, err := srv.tokens.Parse(token)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidSessionToken, "failed to parse session token")
	}

	session, err := srv.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}

	return session, nil
}

// AttachIdentity binds a user to a session.
func (srv *sessionService) AttachIdentity(ctx context.Context, sessionID, userID uuid.UUID) error {
	session, err := srv.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return errors.Wrap(err, "failed to load session for identity attach")
	}

	session.UserID = &userID
	if err := srv.sessionRepo.Update(ctx, session); err != nil {
		return errors.Wrap(err, "failed to attach identity to session")
	}

	srv.log(ctx).Info("Identity attached to session", slog.Any("sessionID", sessionID), slog.Any("userID", userID))

	return nil
}

// ClearIdentity removes the identity from a session. The row itself stays,
// so unrelated session data survives a logout.
func (srv *sessionService) ClearIdentity(ctx context.Context, sessionID uuid.UUID) error {
	session, err := srv.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return errors.Wrap(err, "failed to load session for identity clear")
	}

	session.UserID = nil
	if err := srv.sessionRepo.Update(ctx, session); err != nil {
		return errors.Wrap(err, "failed to clear identity from session")
	}

	srv.log(ctx).Info("Identity cleared from session", slog.Any("sessionID", sessionID))

	return nil
}

// StashReturnTo records the URL to resume after a forced login.
func (srv *sessionService) StashReturnTo(ctx context.Context, sessionID uuid.UUID, url string) error {
	session, err := srv.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return errors.Wrap(err, "failed to load session for return-to stash")
	}

	session.ReturnTo = url
	if err := srv.sessionRepo.Update(ctx, session); err != nil {
		return errors.Wrap(err, "failed to stash return-to url")
	}

	return nil
}

// ConsumeReturnTo returns the stashed URL and clears it in the same call,
// so a pending redirect is honored exactly once.
func (srv *sessionService) ConsumeReturnTo(ctx context.Context, sessionID uuid.UUID) (string, error) {
	session, err := srv.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return "", errors.Wrap(err, "failed to load session for return-to consume")
	}

	url := session.ReturnTo
	if url == "" {
		return "", nil
	}

	session.ReturnTo = ""
	if err := srv.sessionRepo.Update(ctx, session); err != nil {
		return "", errors.Wrap(err, "failed to clear return-to url")
	}

	return url, nil
}
