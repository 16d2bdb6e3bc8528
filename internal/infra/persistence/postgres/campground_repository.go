// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"campsite/internal/domain/entity"
	domainerrors "campsite/internal/domain/errors"
	"campsite/internal/domain/repository"
	"campsite/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// campgroundRepository implements the domain.CampgroundRepository interface using GORM.
type campgroundRepository struct {
	db *gorm.DB
}

// NewCampgroundRepository is the constructor for campgroundRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewCampgroundRepository(db *gorm.DB) repository.CampgroundRepository {
	return &campgroundRepository{db: db}
}

// Create persists a new campground entity to the database.
func (repo *campgroundRepository) Create(ctx context.Context, campground *entity.Campground) error {
	campgroundM := fromCampgroundDomain(campground)

	if err := repo.db.WithContext(ctx).Create(campgroundM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("campground violates schema constraints")
		}

		return domainerrors.NewStorageError(err, "failed to create campground")
	}

	campground.ID = campgroundM.ID
	campground.CreatedAt = campgroundM.CreatedAt
	campground.UpdatedAt = campgroundM.UpdatedAt

	return nil
}

// FindByID retrieves a single campground with its reviews, oldest first.
func (repo *campgroundRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Campground, error) {
	var campgroundM model.CampgroundModel

	err := repo.db.WithContext(ctx).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.created_at ASC")
		}).
		First(&campgroundM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCampgroundNotFound
		}

		return nil, errors.Wrap(err, "failed to find campground by id")
	}

	return toCampgroundDomain(&campgroundM), nil
}

// FindAll retrieves every campground, newest first, without reviews.
func (repo *campgroundRepository) FindAll(ctx context.Context) ([]*entity.Campground, error) {
	var campgroundModels []*model.CampgroundModel

	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&campgroundModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campgrounds")
	}

	campgrounds := make([]*entity.Campground, 0, len(campgroundModels))
	for _, campgroundM := range campgroundModels {
		campgrounds = append(campgrounds, toCampgroundDomain(campgroundM))
	}

	return campgrounds, nil
}

// Update replaces a campground's columns. Last write wins; no version check.
func (repo *campgroundRepository) Update(ctx context.Context, campground *entity.Campground) error {
	campgroundM := fromCampgroundDomain(campground)

	result := repo.db.WithContext(ctx).
		Model(&model.CampgroundModel{}).
		Where("id = ?", campground.ID).
		Updates(map[string]any{
			"title":       campgroundM.Title,
			"description": campgroundM.Description,
			"location":    campgroundM.Location,
			"image":       campgroundM.Image,
			"price":       campgroundM.Price,
		})
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) || isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("campground violates schema constraints")
		}

		return domainerrors.NewStorageError(result.Error, "failed to update campground")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCampgroundNotFound
	}

	return nil
}

// Delete removes a campground by ID.
func (repo *campgroundRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.CampgroundModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	// Zero rows means the id never resolved; surface it, never a silent success.
	if result.RowsAffected == 0 {
		return repository.ErrCampgroundNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toCampgroundDomain converts a GORM CampgroundModel to a domain Campground entity.
func toCampgroundDomain(data *model.CampgroundModel) *entity.Campground {
	if data == nil {
		return nil
	}

	reviews := make([]*entity.Review, 0, len(data.Reviews))
	for _, reviewM := range data.Reviews {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return &entity.Campground{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Location:    data.Location,
		Image:       data.Image,
		Price:       data.Price,
		Reviews:     reviews,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromCampgroundDomain converts a domain Campground entity to a GORM CampgroundModel.
func fromCampgroundDomain(data *entity.Campground) *model.CampgroundModel {
	if data == nil {
		return nil
	}

	return &model.CampgroundModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Location:    data.Location,
		Image:       data.Image,
		Price:       data.Price,
	}
}
