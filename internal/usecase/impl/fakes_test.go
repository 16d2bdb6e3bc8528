package impl

import (
	"context"
	"strings"
	"time"

	"campsite/internal/domain/entity"
	"campsite/internal/domain/repository"
	"campsite/internal/domain/service"

	"github.com/google/uuid"
)

// In-memory repository fakes shared by the service tests. Each fake keeps
// its rows in a map and reproduces the sentinel errors of the real
// repositories; an optional forced error simulates storage failures.

type fakeCampgroundRepo struct {
	campgrounds map[uuid.UUID]*entity.Campground
	forcedErr   error
}

func newFakeCampgroundRepo() *fakeCampgroundRepo {
	return &fakeCampgroundRepo{campgrounds: make(map[uuid.UUID]*entity.Campground)}
}

func (r *fakeCampgroundRepo) Create(_ context.Context, campground *entity.Campground) error {
	if r.forcedErr != nil {
		return r.forcedErr
	}

	if campground.ID == uuid.Nil {
		campground.ID = uuid.New()
	}
	campground.CreatedAt = time.Now()
	r.campgrounds[campground.ID] = campground

	return nil
}

func (r *fakeCampgroundRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Campground, error) {
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}

	campground, ok := r.campgrounds[id]
	if !ok {
		return nil, repository.ErrCampgroundNotFound
	}

	return campground, nil
}

func (r *fakeCampgroundRepo) FindAll(_ context.Context) ([]*entity.Campground, error) {
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}

	all := make([]*entity.Campground, 0, len(r.campgrounds))
	for _, campground := range r.campgrounds {
		all = append(all, campground)
	}

	return all, nil
}

func (r *fakeCampgroundRepo) Update(_ context.Context, campground *entity.Campground) error {
	if r.forcedErr != nil {
		return r.forcedErr
	}

	if _, ok := r.campgrounds[campground.ID]; !ok {
		return repository.ErrCampgroundNotFound
	}
	r.campgrounds[campground.ID] = campground

	return nil
}

func (r *fakeCampgroundRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.forcedErr != nil {
		return r.forcedErr
	}

	if _, ok := r.campgrounds[id]; !ok {
		return repository.ErrCampgroundNotFound
	}
	delete(r.campgrounds, id)

	return nil
}

type fakeReviewRepo struct {
	reviews   map[uuid.UUID]*entity.Review
	forcedErr error

	cascadeDeletes []uuid.UUID
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uuid.UUID]*entity.Review)}
}

func (r *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	if r.forcedErr != nil {
		return r.forcedErr
	}

	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	review.CreatedAt = time.Now()
	r.reviews[review.ID] = review

	return nil
}

func (r *fakeReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}

	review, ok := r.reviews[id]
	if !ok {
		return nil, repository.ErrReviewNotFound
	}

	return review, nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.forcedErr != nil {
		return r.forcedErr
	}

	if _, ok := r.reviews[id]; !ok {
		return repository.ErrReviewNotFound
	}
	delete(r.reviews, id)

	return nil
}

func (r *fakeReviewRepo) DeleteByCampgroundID(_ context.Context, campgroundID uuid.UUID) error {
	if r.forcedErr != nil {
		return r.forcedErr
	}

	r.cascadeDeletes = append(r.cascadeDeletes, campgroundID)
	for id, review := range r.reviews {
		if review.CampgroundID == campgroundID {
			delete(r.reviews, id)
		}
	}

	return nil
}

type fakeUserRepo struct {
	users     map[uuid.UUID]*entity.User
	forcedErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}

	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.forcedErr != nil {
		return r.forcedErr
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = user

	return nil
}

type fakeSessionRepo struct {
	sessions  map[uuid.UUID]*entity.Session
	forcedErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	if r.forcedErr != nil {
		return r.forcedErr
	}

	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	session.CreatedAt = time.Now()
	r.sessions[session.ID] = session

	return nil
}

func (r *fakeSessionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}

	session, ok := r.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	if session.Expired(time.Now()) {
		return nil, repository.ErrSessionExpired
	}

	return session, nil
}

func (r *fakeSessionRepo) Update(_ context.Context, session *entity.Session) error {
	if r.forcedErr != nil {
		return r.forcedErr
	}

	if _, ok := r.sessions[session.ID]; !ok {
		return repository.ErrSessionNotFound
	}
	r.sessions[session.ID] = session

	return nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.forcedErr != nil {
		return r.forcedErr
	}

	if _, ok := r.sessions[id]; !ok {
		return repository.ErrSessionNotFound
	}
	delete(r.sessions, id)

	return nil
}

func (r *fakeSessionRepo) DeleteExpired(_ context.Context) error {
	if r.forcedErr != nil {
		return r.forcedErr
	}

	now := time.Now()
	for id, session := range r.sessions {
		if session.Expired(now) {
			delete(r.sessions, id)
		}
	}

	return nil
}

// fakeFactory hands out the same fakes inside and outside transactions.
type fakeFactory struct {
	campgroundRepo *fakeCampgroundRepo
	reviewRepo     *fakeReviewRepo
	userRepo       *fakeUserRepo
	sessionRepo    *fakeSessionRepo
}

func (f *fakeFactory) CampgroundRepo() repository.CampgroundRepository { return f.campgroundRepo }
func (f *fakeFactory) ReviewRepo() repository.ReviewRepository         { return f.reviewRepo }
func (f *fakeFactory) UserRepo() repository.UserRepository             { return f.userRepo }
func (f *fakeFactory) SessionRepo() repository.SessionRepository       { return f.sessionRepo }

// fakeTxManager runs the transactional function directly against the fakes.
type fakeTxManager struct {
	factory *fakeFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// fakeHasher is a transparent stand-in for bcrypt.
type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenService signs by prefixing, so tests can read tokens at a glance.
type fakeTokenService struct {
	issueErr error
}

func (s *fakeTokenService) Issue(sessionID uuid.UUID, _ time.Time) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}

	return "token:" + sessionID.String(), nil
}

func (s *fakeTokenService) Parse(token string) (uuid.UUID, error) {
	raw, ok := strings.CutPrefix(token, "token:")
	if !ok {
		return uuid.Nil, service.ErrInvalidSessionToken
	}

	sid, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, service.ErrInvalidSessionToken
	}

	return sid, nil
}
