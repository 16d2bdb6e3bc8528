package validator

import (
	"testing"

	domainerrors "campsite/internal/domain/errors"
	"campsite/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestValidate_ValidCampground(t *testing.T) {
	v := New()

	input := &usecase.CreateCampgroundInput{
		Title:       "Salmon Creek",
		Price:       floatPtr(24.5),
		Description: "Quiet site by the water",
		Location:    "Bodega Bay, California",
		Image:       "https://example.com/salmon-creek.jpg",
	}

	assert.NoError(t, v.Validate(input))
}

func TestValidate_OptionalPriceMayBeAbsent(t *testing.T) {
	v := New()

	input := &usecase.CreateCampgroundInput{
		Title:       "Salmon Creek",
		Description: "Quiet site by the water",
		Location:    "Bodega Bay, California",
		Image:       "https://example.com/salmon-creek.jpg",
	}

	assert.NoError(t, v.Validate(input))
}

func TestValidate_MissingFields(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.CreateCampgroundInput{Title: "Salmon Creek"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "description is required")
	assert.Contains(t, appErr.Details(), "location is required")
	assert.Contains(t, appErr.Details(), "image is required")
}

func TestValidate_NegativePrice(t *testing.T) {
	v := New()

	input := &usecase.CreateCampgroundInput{
		Title:       "Salmon Creek",
		Price:       floatPtr(-1),
		Description: "Quiet site by the water",
		Location:    "Bodega Bay, California",
		Image:       "https://example.com/salmon-creek.jpg",
	}

	err := v.Validate(input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "price must be at least 0")
}

func TestValidate_ReviewRatingBounds(t *testing.T) {
	v := New()

	for _, rating := range []int{1, 3, 5} {
		assert.NoError(t, v.Validate(&usecase.CreateReviewInput{Body: "Great spot", Rating: rating}))
	}

	err := v.Validate(&usecase.CreateReviewInput{Body: "Great spot", Rating: 6})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "rating must be at most 5")

	// Zero rating reads as missing
	err = v.Validate(&usecase.CreateReviewInput{Body: "Great spot"})
	require.Error(t, err)
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "rating is required")
}

func TestValidate_Registration(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&usecase.RegisterInput{
		Username: "camperdan",
		Email:    "dan@example.com",
		Password: "hunter2hunter2",
	}))

	err := v.Validate(&usecase.RegisterInput{
		Username: "camperdan",
		Email:    "not-an-email",
		Password: "short",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "email must be a valid email address")
	assert.Contains(t, appErr.Details(), "password must be at least 8")
}
