// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"campsite/internal/delivery/http/response"
	domainerrors "campsite/internal/domain/errors"
	"campsite/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CampgroundHandler holds dependencies for campground-related handlers.
type CampgroundHandler struct {
	uc     usecase.CampgroundUsecase
	logger *slog.Logger
}

// NewCampgroundHandler is the constructor for CampgroundHandler, injected by Fx.
func NewCampgroundHandler(uc usecase.CampgroundUsecase, logger *slog.Logger) *CampgroundHandler {
	return &CampgroundHandler{
		uc:     uc,
		logger: logger,
	}
}

// Index handles listing every campground, newest first.
func (h *CampgroundHandler) Index(c echo.Context) error {
	campgrounds, err := h.uc.ListCampgrounds(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, campgrounds, "Campgrounds retrieved successfully")
}

// New describes the creation form. Registered ahead of the Show route so
// the literal segment "new" is never read as an identifier.
func (h *CampgroundHandler) New(c echo.Context) error {
	return response.Success(c, http.StatusOK, usecase.CreateCampgroundInput{}, "Campground form")
}

// Show handles retrieving one campground with its reviews.
func (h *CampgroundHandler) Show(c echo.Context) error {
	id, err := campgroundID(c)
	if err != nil {
		return err
	}

	campground, err := h.uc.GetCampground(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, campground, "Campground retrieved successfully")
}

// Create handles the campground creation request.
func (h *CampgroundHandler) Create(c echo.Context) error {
	input := new(usecase.CreateCampgroundInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid campground input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	campground, err := h.uc.CreateCampground(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusSeeOther, "/campgrounds/"+campground.ID.String())
}

// Edit returns the current state of a campground for editing.
func (h *CampgroundHandler) Edit(c echo.Context) error {
	id, err := campgroundID(c)
	if err != nil {
		return err
	}

	campground, err := h.uc.GetCampground(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, campground, "Campground retrieved successfully")
}

// Update handles an in-place replacement of a campground's fields.
func (h *CampgroundHandler) Update(c echo.Context) error {
	id, err := campgroundID(c)
	if err != nil {
		return err
	}

	input := new(usecase.UpdateCampgroundInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid campground input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	campground, err := h.uc.UpdateCampground(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusSeeOther, "/campgrounds/"+campground.ID.String())
}

// Delete handles removing a campground together with its reviews.
func (h *CampgroundHandler) Delete(c echo.Context) error {
	id, err := campgroundID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCampground(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusSeeOther, "/campgrounds")
}

// campgroundID parses the :id path segment. A malformed identifier can
// never name a campground, so it reads as not found.
func campgroundID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrCampgroundNotFound
	}

	return id, nil
}
