// Package usecase defines the application's business operations and their
// input/output DTOs. Delivery binds requests into the inputs; the validator
// enforces the declarative constraints on the struct tags before any
// implementation runs.
package usecase

import (
	"context"

	"campsite/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCampgroundInput carries a validated campground creation payload.
// Price is optional; everything else must be present and non-empty.
type CreateCampgroundInput struct {
	Title       string   `json:"title" form:"title" validate:"required"`
	Price       *float64 `json:"price" form:"price" validate:"omitempty,gte=0"`
	Description string   `json:"description" form:"description" validate:"required"`
	Location    string   `json:"location" form:"location" validate:"required"`
	Image       string   `json:"image" form:"image" validate:"required"`
}

// UpdateCampgroundInput carries a validated in-place update. The full record
// is replaced; applying the same patch twice yields the same final state.
type UpdateCampgroundInput struct {
	Title       string   `json:"title" form:"title" validate:"required"`
	Price       *float64 `json:"price" form:"price" validate:"omitempty,gte=0"`
	Description string   `json:"description" form:"description" validate:"required"`
	Location    string   `json:"location" form:"location" validate:"required"`
	Image       string   `json:"image" form:"image" validate:"required"`
}

// CampgroundUsecase defines the operations on the campground collection.
type CampgroundUsecase interface {
	// ListCampgrounds returns every campground, newest first.
	ListCampgrounds(ctx context.Context) ([]*entity.Campground, error)

	// GetCampground returns one campground with its reviews populated.
	GetCampground(ctx context.Context, id uuid.UUID) (*entity.Campground, error)

	// CreateCampground persists a new campground from a validated payload.
	CreateCampground(ctx context.Context, input *CreateCampgroundInput) (*entity.Campground, error)

	// UpdateCampground replaces a campground's fields in place.
	UpdateCampground(ctx context.Context, id uuid.UUID, input *UpdateCampgroundInput) (*entity.Campground, error)

	// DeleteCampground removes a campground and cascades to its reviews.
	DeleteCampground(ctx context.Context, id uuid.UUID) error
}
