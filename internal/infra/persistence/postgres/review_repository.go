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

// reviewRepository implements the domain.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create persists a new review entity to the database.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCampgroundNotFound
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("review violates schema constraints")
		}

		return domainerrors.NewStorageError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByID retrieves a single review by its unique ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	err := repo.db.WithContext(ctx).First(&reviewM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// Delete removes a review by ID.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ReviewModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// DeleteByCampgroundID removes every review attached to a campground.
// Zero rows is fine here: a campground may simply have no reviews yet.
func (repo *reviewRepository) DeleteByCampgroundID(ctx context.Context, campgroundID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Delete(&model.ReviewModel{}, "campground_id = ?", campgroundID).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:           data.ID,
		CampgroundID: data.CampgroundID,
		Body:         data.Body,
		Rating:       data.Rating,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:           data.ID,
		CampgroundID: data.CampgroundID,
		Body:         data.Body,
		Rating:       data.Rating,
	}
}
