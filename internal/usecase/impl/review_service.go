package impl

import (
	"context"
	"log/slog"

	deliverycontext "campsite/internal/delivery/context"
	"campsite/internal/domain/entity"
	domainerrors "campsite/internal/domain/errors"
	"campsite/internal/domain/repository"
	"campsite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddReview attaches a new review to an existing campground. The parent is
// verified inside the same transaction as the insert, so a review can never
// land on a campground deleted mid-flight.
func (srv *reviewService) AddReview(ctx context.Context, campgroundID uuid.UUID, input *usecase.CreateReviewInput) (*entity.Review, error) {
	review := &entity.Review{
		CampgroundID: campgroundID,
		Body:         input.Body,
		Rating:       input.Rating,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		campgroundRepo := repoFactory.CampgroundRepo()
		reviewRepo := repoFactory.ReviewRepo()

		if _, err := campgroundRepo.FindByID(ctx, campgroundID); err != nil {
			if errors.Is(err, repository.ErrCampgroundNotFound) {
				return domainerrors.ErrCampgroundNotFound.WrapMessage("campground lookup failed during review create")
			}

			return errors.Wrap(err, "failed to find campground for review")
		}

		if err := reviewRepo.Create(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Review create failed", slog.Any("campgroundID", campgroundID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute review create transaction")
	}

	srv.log(ctx).Info("Review created", slog.Any("reviewID", review.ID), slog.Any("campgroundID", campgroundID))

	return review, nil
}

// RemoveReview deletes a review after checking it belongs to the given
// campground; a mismatched pair reads as not found.
func (srv *reviewService) RemoveReview(ctx context.Context, campgroundID, reviewID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		review, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrReviewNotFound.WrapMessage("review lookup failed during delete")
			}

			return errors.Wrap(err, "failed to find review for delete")
		}

		if review.CampgroundID != campgroundID {
			return domainerrors.ErrReviewNotFound.WrapMessage("review does not belong to campground")
		}

		if err := reviewRepo.Delete(ctx, reviewID); err != nil {
			return errors.Wrap(err, "failed to delete review")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Review delete failed", slog.Any("reviewID", reviewID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute review delete transaction")
	}

	srv.log(ctx).Info("Review deleted", slog.Any("reviewID", reviewID), slog.Any("campgroundID", campgroundID))

	return nil
}
