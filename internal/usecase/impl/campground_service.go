// Package impl contains the implementation of the application's business logic.
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

// campgroundService implements the CampgroundUsecase interface.
type campgroundService struct {
	txManager      repository.TransactionManager
	campgroundRepo repository.CampgroundRepository
	logger         *slog.Logger
}

// NewCampgroundService is the constructor for campgroundService.
func NewCampgroundService(
	txManager repository.TransactionManager,
	campgroundRepo repository.CampgroundRepository,
	logger *slog.Logger,
) usecase.CampgroundUsecase {
	return &campgroundService{
		txManager:      txManager,
		campgroundRepo: campgroundRepo,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *campgroundService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCampgrounds returns every campground, newest first.
func (srv *campgroundService) ListCampgrounds(ctx context.Context) ([]*entity.Campground, error) {
	campgrounds, err := srv.campgroundRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list campgrounds", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list campgrounds")
	}

	return campgrounds, nil
}

// GetCampground returns one campground with its reviews populated.
func (srv *campgroundService) GetCampground(ctx context.Context, id uuid.UUID) (*entity.Campground, error) {
	campground, err := srv.campgroundRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCampgroundNotFound) {
			return nil, domainerrors.ErrCampgroundNotFound.WrapMessage("campground lookup failed")
		}

		srv.log(ctx).Error("Failed to load campground", slog.Any("campgroundID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find campground by id")
	}

	return campground, nil
}

// CreateCampground persists a new campground from a validated payload.
// Validation has already run by the time this is called, so the write is
// all-or-nothing.
func (srv *campgroundService) CreateCampground(ctx context.Context, input *usecase.CreateCampgroundInput) (*entity.Campground, error) {
	campground := &entity.Campground{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Image:       input.Image,
		Price:       input.Price,
	}

	if err := srv.campgroundRepo.Create(ctx, campground); err != nil {
		srv.log(ctx).Error("Failed to create campground", slog.String("title", input.Title), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create campground")
	}

	srv.log(ctx).Info("Campground created", slog.Any("campgroundID", campground.ID), slog.String("title", campground.Title))

	return campground, nil
}

// UpdateCampground replaces a campground's fields in place. Reapplying the
// same patch is a no-op on the final state.
func (srv *campgroundService) UpdateCampground(ctx context.Context, id uuid.UUID, input *usecase.UpdateCampgroundInput) (*entity.Campground, error) {
	var updated *entity.Campground

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		campgroundRepo := repoFactory.CampgroundRepo()

		campground, err := campgroundRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCampgroundNotFound) {
				return domainerrors.ErrCampgroundNotFound.WrapMessage("campground lookup failed during update")
			}

			return errors.Wrap(err, "failed to find campground for update")
		}

		campground.Title = input.Title
		campground.Description = input.Description
		campground.Location = input.Location
		campground.Image = input.Image
		campground.Price = input.Price

		if err := campgroundRepo.Update(ctx, campground); err != nil {
			return errors.Wrap(err, "failed to update campground")
		}

		updated = campground

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Campground update failed", slog.Any("campgroundID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute campground update transaction")
	}

	srv.log(ctx).Info("Campground updated", slog.Any("campgroundID", id))

	return updated, nil
}

// DeleteCampground removes a campground and cascades to its reviews in a
// single transaction, so a failed delete never leaves orphans.
func (srv *campgroundService) DeleteCampground(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()
		campgroundRepo := repoFactory.CampgroundRepo()

		if err := reviewRepo.DeleteByCampgroundID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete campground reviews")
		}

		if err := campgroundRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCampgroundNotFound) {
				return domainerrors.ErrCampgroundNotFound.WrapMessage("campground lookup failed during delete")
			}

			return errors.Wrap(err, "failed to delete campground")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Campground delete failed", slog.Any("campgroundID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute campground delete transaction")
	}

	srv.log(ctx).Info("Campground deleted", slog.Any("campgroundID", id))

	return nil
}
