package service

import (
	"errors"
	"fmt"

	"go-grocer-tab/pkg/validator"
)

var (
	// ErrValidation means a required field was missing or invalid before any
	// request was issued. Nothing was sent to the backend.
	ErrValidation = errors.New("validation failed")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStoreUnavailable   = errors.New("unable to reach the store backend")
	ErrCustomerExists     = errors.New("customer already exists")
	ErrNothingDue         = errors.New("nothing due to settle")
)

// validationError maps the first validator failure to ErrValidation.
func validationError(errs []*validator.ErrorResponse) error {
	first := errs[0]
	return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
}
