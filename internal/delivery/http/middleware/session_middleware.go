package middleware

import (
	"log/slog"
	"net/http"

	"campsite/config"
	"campsite/internal/domain/entity"
	"campsite/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys for the resolved session state.
const (
	keySession     = "session"
	keyCurrentUser = "currentUser"
)

// SessionMiddleware resolves the session cookie into server-side state and
// guards routes that need an authenticated identity.
type SessionMiddleware struct {
	sessions usecase.SessionUsecase
	users    usecase.UserUsecase
	cfg      *config.Config
	logger   *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(
	sessions usecase.SessionUsecase,
	users usecase.UserUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
		users:    users,
		cfg:      cfg,
		logger:   logger,
	}
}

// Resolve runs on every request. A valid, live session is attached to the
// echo context; expired, tampered and absent tokens all resolve to an
// anonymous request. Resolution never fails the request itself.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cfg.CookieName())
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		ctx := c.Request().Context()

		session, err := m.sessions.Resolve(ctx, cookie.Value)
		if err != nil {
			m.logger.Debug("Session did not resolve, treating as anonymous", slog.Any("error", err))

			return next(c)
		}

		c.Set(keySession, session)

		if session.Authenticated() {
			user, err := m.users.GetUser(ctx, *session.UserID)
			if err != nil {
				// Identity vanished underneath the session; stay anonymous.
				m.logger.Warn("Session identity no longer resolves", slog.Any("sessionID", session.ID), slog.Any("error", err))

				return next(c)
			}

			c.Set(keyCurrentUser, user)
		}

		return next(c)
	}
}

// RequireLogin guards protected routes. Anonymous requests get their
// intended destination stashed on the session and are redirected to the
// login entry point.
func (m *SessionMiddleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentUser(c) != nil {
			return next(c)
		}

		session, err := m.EnsureSession(c)
		if err != nil {
			return err
		}

		if err := m.sessions.StashReturnTo(c.Request().Context(), session.ID, c.Request().URL.RequestURI()); err != nil {
			return err
		}

		return c.Redirect(http.StatusFound, "/login")
	}
}

// EnsureSession returns the request's resolved session, creating a fresh
// anonymous one (and setting its cookie) when the request arrived without.
func (m *SessionMiddleware) EnsureSession(c echo.Context) (*entity.Session, error) {
	if session := CurrentSession(c); session != nil {
		return session, nil
	}

	session, token, err := m.sessions.Begin(c.Request().Context())
	if err != nil {
		return nil, err
	}

	SetSessionCookie(c, m.cfg.CookieName(), token, session)
	c.Set(keySession, session)

	return session, nil
}

// SetSessionCookie writes the signed session token as an HTTP-only cookie
// expiring with the session. The cookie carries the token only, never
// credentials.
func SetSessionCookie(c echo.Context, name, token string, session *entity.Session) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// CurrentSession returns the session resolved for this request, or nil.
func CurrentSession(c echo.Context) *entity.Session {
	session, _ := c.Get(keySession).(*entity.Session)

	return session
}

// CurrentUser returns the authenticated identity for this request, or nil
// when the request is anonymous.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(keyCurrentUser).(*entity.User)

	return user
}
