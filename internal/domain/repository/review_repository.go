package repository

import (
	"context"
	"errors"

	"campsite/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is a domain-specific error returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// Create persists a new review entity to the storage.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a single review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// Delete removes a review by ID. Returns ErrReviewNotFound when no
	// record matched.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByCampgroundID removes every review attached to a campground.
	// Used when the parent campground is deleted.
	DeleteByCampgroundID(ctx context.Context, campgroundID uuid.UUID) error
}
