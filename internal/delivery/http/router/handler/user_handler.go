package handler

import (
	"log/slog"
	"net/http"

	"campsite/internal/delivery/http/middleware"
	"campsite/internal/delivery/http/response"
	domainerrors "campsite/internal/domain/errors"
	"campsite/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// defaultLanding is where authentication flows land when no destination
// was stashed on the session.
const defaultLanding = "/campgrounds"

// UserHandler holds dependencies for registration, login and logout.
type UserHandler struct {
	users    usecase.UserUsecase
	sessions usecase.SessionUsecase
	sm       *middleware.SessionMiddleware
	logger   *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(
	users usecase.UserUsecase,
	sessions usecase.SessionUsecase,
	sm *middleware.SessionMiddleware,
	logger *slog.Logger,
) *UserHandler {
	return &UserHandler{
		users:    users,
		sessions: sessions,
		sm:       sm,
		logger:   logger,
	}
}

// RegisterForm describes the registration payload.
func (h *UserHandler) RegisterForm(c echo.Context) error {
	return response.Success(c, http.StatusOK, usecase.RegisterInput{}, "Registration form")
}

// Register handles the registration request. A successful registration
// signs the new user in immediately.
func (h *UserHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.users.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.signIn(c, user.ID)
}

// LoginForm describes the login payload.
func (h *UserHandler) LoginForm(c echo.Context) error {
	return response.Success(c, http.StatusOK, usecase.LoginInput{}, "Login form")
}

// Login handles the credential check. Missing or bad credentials send the
// client back to the login entry without touching session state.
func (h *UserHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	user, err := h.users.Login(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			return c.Redirect(http.StatusSeeOther, "/login")
		}

		return errors.WithStack(err)
	}

	return h.signIn(c, user.ID)
}

// Logout detaches the identity from the session. The session itself and
// its cookie survive, back in the anonymous state.
func (h *UserHandler) Logout(c echo.Context) error {
	if session := middleware.CurrentSession(c); session != nil && session.Authenticated() {
		if err := h.sessions.ClearIdentity(c.Request().Context(), session.ID); err != nil {
			return errors.WithStack(err)
		}
	}

	return c.Redirect(http.StatusSeeOther, defaultLanding)
}

// signIn attaches the user to the request's session (creating one when the
// request arrived without) and honors a stashed destination once.
func (h *UserHandler) signIn(c echo.Context, userID uuid.UUID) error {
	session, err := h.sm.EnsureSession(c)
	if err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()

	if err := h.sessions.AttachIdentity(ctx, session.ID, userID); err != nil {
		return errors.WithStack(err)
	}

	target, err := h.sessions.ConsumeReturnTo(ctx, session.ID)
	if err != nil {
		h.logger.Warn("Failed to consume stashed destination", slog.Any("error", err))
		target = ""
	}
	if target == "" {
		target = defaultLanding
	}

	return c.Redirect(http.StatusSeeOther, target)
}
