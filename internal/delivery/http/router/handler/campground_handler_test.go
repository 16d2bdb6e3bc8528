package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	deliverymw "campsite/internal/delivery/http/middleware"
	"campsite/internal/delivery/http/validator"
	"campsite/internal/domain/entity"
	domainerrors "campsite/internal/domain/errors"
	"campsite/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCampgrounds is a map-backed CampgroundUsecase for handler tests.
type fakeCampgrounds struct {
	campgrounds map[uuid.UUID]*entity.Campground
}

func newFakeCampgrounds() *fakeCampgrounds {
	return &fakeCampgrounds{campgrounds: make(map[uuid.UUID]*entity.Campground)}
}

func (f *fakeCampgrounds) ListCampgrounds(_ context.Context) ([]*entity.Campground, error) {
	all := make([]*entity.Campground, 0, len(f.campgrounds))
	for _, campground := range f.campgrounds {
		all = append(all, campground)
	}

	return all, nil
}

func (f *fakeCampgrounds) GetCampground(_ context.Context, id uuid.UUID) (*entity.Campground, error) {
	campground, ok := f.campgrounds[id]
	if !ok {
		return nil, domainerrors.ErrCampgroundNotFound
	}

	return campground, nil
}

func (f *fakeCampgrounds) CreateCampground(_ context.Context, input *usecase.CreateCampgroundInput) (*entity.Campground, error) {
	campground := &entity.Campground{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Image:       input.Image,
		Price:       input.Price,
	}
	f.campgrounds[campground.ID] = campground

	return campground, nil
}

func (f *fakeCampgrounds) UpdateCampground(_ context.Context, id uuid.UUID, input *usecase.UpdateCampgroundInput) (*entity.Campground, error) {
	campground, ok := f.campgrounds[id]
	if !ok {
		return nil, domainerrors.ErrCampgroundNotFound
	}

	campground.Title = input.Title
	campground.Description = input.Description
	campground.Location = input.Location
	campground.Image = input.Image
	campground.Price = input.Price

	return campground, nil
}

func (f *fakeCampgrounds) DeleteCampground(_ context.Context, id uuid.UUID) error {
	if _, ok := f.campgrounds[id]; !ok {
		return domainerrors.ErrCampgroundNotFound
	}
	delete(f.campgrounds, id)

	return nil
}

// newTestServer builds an echo instance wired like the real server: the
// shared validator, the centralized error responder, and method override.
func newTestServer(t *testing.T, campgrounds *fakeCampgrounds) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = deliverymw.NewErrorMiddleware(logger).HandleHTTPError
	e.Pre(echomw.MethodOverrideWithConfig(echomw.MethodOverrideConfig{
		Getter: echomw.MethodFromForm("_method"),
	}))

	h := NewCampgroundHandler(campgrounds, logger)
	e.GET("/campgrounds", h.Index)
	e.GET("/campgrounds/new", h.New)
	e.POST("/campgrounds", h.Create)
	e.GET("/campgrounds/:id", h.Show)
	e.GET("/campgrounds/:id/edit", h.Edit)
	e.PUT("/campgrounds/:id", h.Update)
	e.DELETE("/campgrounds/:id", h.Delete)

	return e
}

func seedCampground(f *fakeCampgrounds) *entity.Campground {
	campground := &entity.Campground{
		ID:          uuid.New(),
		Title:       "Salmon Creek",
		Description: "Quiet site by the water",
		Location:    "Bodega Bay, California",
		Image:       "https://example.com/salmon-creek.jpg",
	}
	f.campgrounds[campground.ID] = campground

	return campground
}

func postForm(e *echo.Echo, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestCampgroundHandler_Index(t *testing.T) {
	campgrounds := newFakeCampgrounds()
	seedCampground(campgrounds)
	e := newTestServer(t, campgrounds)

	req := httptest.NewRequest(http.MethodGet, "/campgrounds", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["data"], 1)
}

func TestCampgroundHandler_Show(t *testing.T) {
	campgrounds := newFakeCampgrounds()
	campground := seedCampground(campgrounds)
	e := newTestServer(t, campgrounds)

	req := httptest.NewRequest(http.MethodGet, "/campgrounds/"+campground.ID.String(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Salmon Creek")
}

func TestCampgroundHandler_Show_NotFound(t *testing.T) {
	e := newTestServer(t, newFakeCampgrounds())

	req := httptest.NewRequest(http.MethodGet, "/campgrounds/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CAMPGROUND_NOT_FOUND")
}

func TestCampgroundHandler_Show_MalformedIDReadsAsNotFound(t *testing.T) {
	e := newTestServer(t, newFakeCampgrounds())

	req := httptest.NewRequest(http.MethodGet, "/campgrounds/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCampgroundHandler_NewWinsOverShow(t *testing.T) {
	// The literal "new" segment must never be parsed as an identifier
	e := newTestServer(t, newFakeCampgrounds())

	req := httptest.NewRequest(http.MethodGet, "/campgrounds/new", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCampgroundHandler_Create(t *testing.T) {
	campgrounds := newFakeCampgrounds()
	e := newTestServer(t, campgrounds)

	// Price omitted: it is optional
	rec := postForm(e, "/campgrounds", url.Values{
		"title":       {"Salmon Creek"},
		"description": {"Quiet site by the water"},
		"location":    {"Bodega Bay, California"},
		"image":       {"https://example.com/salmon-creek.jpg"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Len(t, campgrounds.campgrounds, 1)
	for id, campground := range campgrounds.campgrounds {
		assert.Equal(t, "/campgrounds/"+id.String(), rec.Header().Get(echo.HeaderLocation))
		assert.Nil(t, campground.Price)
	}
}

func TestCampgroundHandler_Create_ValidationFailure(t *testing.T) {
	campgrounds := newFakeCampgrounds()
	e := newTestServer(t, campgrounds)

	rec := postForm(e, "/campgrounds", url.Values{
		"title": {"Salmon Creek"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	assert.Contains(t, rec.Body.String(), "description is required")
	assert.Empty(t, campgrounds.campgrounds)
}

func TestCampgroundHandler_Create_NegativePriceRejected(t *testing.T) {
	campgrounds := newFakeCampgrounds()
	e := newTestServer(t, campgrounds)

	rec := postForm(e, "/campgrounds", url.Values{
		"title":       {"Salmon Creek"},
		"price":       {"-1"},
		"description": {"Quiet site by the water"},
		"location":    {"Bodega Bay, California"},
		"image":       {"https://example.com/salmon-creek.jpg"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, campgrounds.campgrounds)
}

func TestCampgroundHandler_UpdateViaMethodOverride(t *testing.T) {
	campgrounds := newFakeCampgrounds()
	campground := seedCampground(campgrounds)
	e := newTestServer(t, campgrounds)

	rec := postForm(e, "/campgrounds/"+campground.ID.String(), url.Values{
		"_method":     {http.MethodPut},
		"title":       {"Salmon Creek North"},
		"description": {"Quiet site by the water"},
		"location":    {"Bodega Bay, California"},
		"image":       {"https://example.com/salmon-creek.jpg"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "Salmon Creek North", campgrounds.campgrounds[campground.ID].Title)
}

func TestCampgroundHandler_DeleteViaMethodOverride(t *testing.T) {
	campgrounds := newFakeCampgrounds()
	campground := seedCampground(campgrounds)
	e := newTestServer(t, campgrounds)

	rec := postForm(e, "/campgrounds/"+campground.ID.String(), url.Values{
		"_method": {http.MethodDelete},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/campgrounds", rec.Header().Get(echo.HeaderLocation))
	assert.Empty(t, campgrounds.campgrounds)
}
