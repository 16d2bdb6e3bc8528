package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"campsite/internal/domain/entity"
	domainerrors "campsite/internal/domain/errors"
	"campsite/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service        usecase.ReviewUsecase
	campgroundRepo *fakeCampgroundRepo
	reviewRepo     *fakeReviewRepo
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	t.Helper()

	campgroundRepo := newFakeCampgroundRepo()
	reviewRepo := newFakeReviewRepo()
	factory := &fakeFactory{campgroundRepo: campgroundRepo, reviewRepo: reviewRepo}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewReviewService(&fakeTxManager{factory: factory}, logger)

	return reviewServiceFixtures{
		service:        service,
		campgroundRepo: campgroundRepo,
		reviewRepo:     reviewRepo,
	}
}

func (fx reviewServiceFixtures) seedCampground(t *testing.T) *entity.Campground {
	t.Helper()

	campground := &entity.Campground{
		Title:       "Salmon Creek",
		Description: "Quiet site by the water",
		Location:    "Bodega Bay, California",
		Image:       "https://example.com/salmon-creek.jpg",
	}
	require.NoError(t, fx.campgroundRepo.Create(context.Background(), campground))

	return campground
}

func TestReviewService_AddReview_Success(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	campground := fx.seedCampground(t)

	review, err := fx.service.AddReview(ctx, campground.ID, &usecase.CreateReviewInput{
		Body:   "Great spot, clean sites",
		Rating: 5,
	})

	require.NoError(t, err)
	require.NotZero(t, review.ID)
	assert.Equal(t, campground.ID, review.CampgroundID)
	assert.Len(t, fx.reviewRepo.reviews, 1)
}

func TestReviewService_AddReview_CampgroundMissing(t *testing.T) {
	fx := createTestReviewService(t)

	_, err := fx.service.AddReview(context.Background(), uuid.New(), &usecase.CreateReviewInput{
		Body:   "Great spot",
		Rating: 4,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCampgroundNotFound)
	assert.Empty(t, fx.reviewRepo.reviews)
}

func TestReviewService_RemoveReview_Success(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	campground := fx.seedCampground(t)

	review, err := fx.service.AddReview(ctx, campground.ID, &usecase.CreateReviewInput{
		Body:   "Great spot",
		Rating: 4,
	})
	require.NoError(t, err)

	require.NoError(t, fx.service.RemoveReview(ctx, campground.ID, review.ID))
	assert.Empty(t, fx.reviewRepo.reviews)
}

func TestReviewService_RemoveReview_WrongCampground(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	campground := fx.seedCampground(t)

	review, err := fx.service.AddReview(ctx, campground.ID, &usecase.CreateReviewInput{
		Body:   "Great spot",
		Rating: 4,
	})
	require.NoError(t, err)

	err = fx.service.RemoveReview(ctx, uuid.New(), review.ID)

	// A mismatched pair reads as not found and nothing is deleted
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
	assert.Len(t, fx.reviewRepo.reviews, 1)
}

func TestReviewService_RemoveReview_Missing(t *testing.T) {
	fx := createTestReviewService(t)
	campground := fx.seedCampground(t)

	err := fx.service.RemoveReview(context.Background(), campground.ID, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}
