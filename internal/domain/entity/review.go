package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a sub-resource of exactly one campground. Its lifecycle is tied
// to the parent: deleting a campground deletes its reviews.
type Review struct {
	ID           uuid.UUID // The unique identifier for the review.
	CampgroundID uuid.UUID // Back-reference to the owning campground.
	Body         string    // The review text.
	Rating       int       // Star rating, 1 through 5.
	CreatedAt    time.Time // Timestamp of when this review was posted.
	UpdatedAt    time.Time // Timestamp of the last modification to this review.
}
