package command

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidForm wraps the field errors of a form that failed validation.
// Callers can unwrap validator.ValidationErrors from it.
var ErrInvalidForm = errors.New("invalid form")

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateForm(form any) error {
	if err := validate.Struct(form); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %w", ErrInvalidForm, fieldErrs)
		}
		return fmt.Errorf("validating form: %w", err)
	}
	return nil
}
