// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Campground is a shared resource record. Title, description, location and
// image are always present on a persisted record; price is optional and,
// when set, non-negative. There is no owner column: any authenticated user
// may edit or delete any campground.
type Campground struct {
	ID          uuid.UUID // The unique identifier for the campground.
	Title       string    // Display title of the campground.
	Description string    // Free-form description text.
	Location    string    // Human-readable location, e.g. "Estes Park, CO".
	Image       string    // Reference (URL) to the campground's image.
	Price       *float64  // Nightly price; nil when the poster left it blank.
	Reviews     []*Review // Reviews attached to this campground, oldest first.
	CreatedAt   time.Time // Timestamp of when this record was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this record.
}
