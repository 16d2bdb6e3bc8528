// Package validator adapts go-playground/validator to echo's Validator
// interface. Payload constraints are declared on the usecase input structs;
// adding a constraint is a tag edit, not new handler code.
package validator

import (
	"fmt"
	"strings"

	domainerrors "campsite/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a single validator instance shared by all requests.
type CustomValidator struct {
	validate *validator.Validate
}

// New constructs the echo validator.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks a bound payload against its struct tags. On failure it
// returns ErrValidationFailed carrying one line per violated field, and the
// handler never runs, so no partial mutation is possible.
func (v *CustomValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	details := make([]string, 0, len(fieldErrors))
	for _, fieldErr := range fieldErrors {
		details = append(details, describeFieldError(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describeFieldError(fieldErr validator.FieldError) string {
	field := strings.ToLower(fieldErr.Field())

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fieldErr.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fieldErr.Tag())
	}
}
