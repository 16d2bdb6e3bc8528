// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"campsite/config"
	"campsite/internal/domain/service"
)

// sessionTokenService signs session cookie tokens with HS256. The token
// carries the session ID as its subject plus an absolute expiry; identity
// and credentials never leave the server.
type sessionTokenService struct {
	secret string
}

// NewSessionTokenService is the constructor for sessionTokenService.
func NewSessionTokenService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &sessionTokenService{secret: cfg.SecretKey.Session}, nil
}

// Issue creates a signed token for a session ID with the given expiry.
func (s *sessionTokenService) Issue(sessionID uuid.UUID, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID.String(),
		"iat": time.Now().Unix(),
		"exp": expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Parse verifies a token's signature and expiry and returns the session ID.
// Malformed, tampered and expired tokens all collapse to
// ErrInvalidSessionToken so callers can fail open to anonymous.
func (s *sessionTokenService) Parse(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, service.ErrInvalidSessionToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, service.ErrInvalidSessionToken
	}

	sidStr, ok := claims["sid"].(string)
	if !ok {
		return uuid.Nil, service.ErrInvalidSessionToken
	}

	sid, err := uuid.Parse(sidStr)
	if err != nil {
		return uuid.Nil, service.ErrInvalidSessionToken
	}

	return sid, nil
}
