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

// ReviewHandler holds dependencies for review-related handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles attaching a review to a campground.
func (h *ReviewHandler) Create(c echo.Context) error {
	campgroundID, err := campgroundID(c)
	if err != nil {
		return err
	}

	input := new(usecase.CreateReviewInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if _, err := h.uc.AddReview(c.Request().Context(), campgroundID, input); err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusSeeOther, "/campgrounds/"+campgroundID.String())
}

// Delete handles removing a review from its campground.
func (h *ReviewHandler) Delete(c echo.Context) error {
	campgroundID, err := campgroundID(c)
	if err != nil {
		return err
	}

	reviewID, err := uuid.Parse(c.Param("reviewId"))
	if err != nil {
		return domainerrors.ErrReviewNotFound
	}

	if err := h.uc.RemoveReview(c.Request().Context(), campgroundID, reviewID); err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusSeeOther, "/campgrounds/"+campgroundID.String())
}
