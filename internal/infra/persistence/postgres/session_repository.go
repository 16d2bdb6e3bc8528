package postgres

import (
	"context"
	"time"

	"campsite/internal/domain/entity"
	domainerrors "campsite/internal/domain/errors"
	"campsite/internal/domain/repository"
	"campsite/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the domain.SessionRepository interface using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a new session record.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("session references unknown user")
		}

		return domainerrors.NewStorageError(err, "failed to create session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// FindByID retrieves a session record. An expired record reads as
// ErrSessionExpired so callers can treat it exactly like an absent one.
func (repo *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var sessionM model.SessionModel

	err := repo.db.WithContext(ctx).First(&sessionM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by id")
	}

	session := toSessionDomain(&sessionM)
	if session.Expired(time.Now()) {
		return nil, repository.ErrSessionExpired
	}

	return session, nil
}

// Update modifies an existing session record.
func (repo *sessionRepository) Update(ctx context.Context, session *entity.Session) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ?", session.ID).
		Updates(map[string]any{
			"user_id":   session.UserID,
			"return_to": session.ReturnTo,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrUserNotFound.WrapMessage("session references unknown user")
		}

		return domainerrors.NewStorageError(result.Error, "failed to update session")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// Delete removes a session record, ending the session outright.
func (repo *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.SessionModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// DeleteExpired removes all expired session records.
func (repo *sessionRepository) DeleteExpired(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Delete(&model.SessionModel{}, "expires_at < ?", time.Now()).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// --- Mapper Functions ---

// toSessionDomain converts a GORM SessionModel to a domain Session entity.
func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:        data.ID,
		UserID:    data.UserID,
		ReturnTo:  data.ReturnTo,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSessionDomain converts a domain Session entity to a GORM SessionModel.
func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ReturnTo:  data.ReturnTo,
		ExpiresAt: data.ExpiresAt,
	}
}
