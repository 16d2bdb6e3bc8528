package usecase

import (
	"context"

	"campsite/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput carries a validated review creation payload.
type CreateReviewInput struct {
	Body   string `json:"body" form:"body" validate:"required"`
	Rating int    `json:"rating" form:"rating" validate:"required,min=1,max=5"`
}

// ReviewUsecase defines the operations on campground reviews.
type ReviewUsecase interface {
	// AddReview attaches a new review to an existing campground.
	AddReview(ctx context.Context, campgroundID uuid.UUID, input *CreateReviewInput) (*entity.Review, error)

	// RemoveReview deletes a review from a campground. The review must
	// belong to the given campground.
	RemoveReview(ctx context.Context, campgroundID, reviewID uuid.UUID) error
}
