// Package errors defines the closed set of application errors. The HTTP
// error responder matches exhaustively on this set, so every failure path
// in the system terminates in one of the variants below.
package errors

import (
	"net/http"

	"campsite/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation errors. Raised before any mutation is attempted, so a
	// validation failure never leaves a partial write behind.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"submitted data failed validation",
		"",
	)

	// Resource errors
	ErrCampgroundNotFound = NewBaseError(
		http.StatusNotFound,
		"CAMPGROUND_NOT_FOUND",
		"campground does not exist",
		"",
	)

	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"review does not exist",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user does not exist",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource does not exist",
		"",
	)

	// Authentication-domain errors. These redirect with a message and never
	// change the session state.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"username or password is incorrect",
		"",
	)

	ErrDuplicateIdentity = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_IDENTITY",
		"username or email is already registered",
		"",
	)

	ErrLoginRequired = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_REQUIRED",
		"you must be signed in first",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// StorageError represents an unexpected persistence failure, implementing
// the AppError interface. Full detail is logged server-side; the client only
// ever sees the generic message.
type StorageError struct {
	err     error
	details string
}

// NewStorageError wraps a database error for the responder.
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "storage operation failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return "STORAGE_ERROR"
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return "storage operation failed"
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}

// Unwrap exposes the underlying database error.
func (e *StorageError) Unwrap() error {
	return e.err
}
