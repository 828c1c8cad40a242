// Package validator plugs request validation into Echo.
package validator

import (
	"github.com/go-playground/validator/v10"

	domainerrors "getlife/internal/domain/errors"
)

// CustomValidator wraps go-playground/validator as an echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a CustomValidator.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate checks the bound request struct against its validate tags.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
