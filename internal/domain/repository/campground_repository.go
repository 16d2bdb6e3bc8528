// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"campsite/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCampgroundNotFound is a domain-specific error returned when a campground is not found.
var ErrCampgroundNotFound = errors.New("campground not found")

// CampgroundRepository defines the standard operations for campground persistence.
// The application layer will depend on this interface, not the concrete implementation.
type CampgroundRepository interface {
	// Create persists a new campground entity to the storage.
	Create(ctx context.Context, campground *entity.Campground) error

	// FindByID retrieves a single campground by its unique ID, with its
	// reviews populated oldest first.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Campground, error)

	// FindAll retrieves every campground, newest first, without reviews.
	FindAll(ctx context.Context) ([]*entity.Campground, error)

	// Update modifies an existing campground entity in the storage.
	// Update semantics are last-write-wins; concurrent patches to the same
	// ID are not serialized at this layer.
	Update(ctx context.Context, campground *entity.Campground) error

	// Delete removes a campground by ID. Returns ErrCampgroundNotFound when
	// no record matched, never a silent success.
	Delete(ctx context.Context, id uuid.UUID) error
}
