package usecase

import (
	"context"

	"campsite/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries a validated registration payload.
type RegisterInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
}

// LoginInput carries submitted credentials. Not schema-validated beyond
// presence; verification is the credential verifier's job.
type LoginInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// UserUsecase defines identity operations backed by the credential verifier.
type UserUsecase interface {
	// Register creates a new identity with a hashed credential. A duplicate
	// username or email surfaces ErrDuplicateIdentity.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies submitted credentials. Failure is always
	// ErrInvalidCredentials, whether the username or the password was wrong.
	Login(ctx context.Context, input *LoginInput) (*entity.User, error)

	// GetUser loads an identity by ID, for exposing the current user to
	// downstream handlers.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
