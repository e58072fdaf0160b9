package content

import "github.com/pkg/errors"

var ErrNoContent = errors.New("no content")

// IsNoContent checks whether the error signifies missing content,
// regardless of any wrapping applied to it.
func IsNoContent(err error) bool {
	return errors.Cause(err) == ErrNoContent
}

type validationError struct {
	error
}

// NewValidationError tags an error as a data validation failure.
func NewValidationError(err error) error {
	return validationError{error: err}
}

// IsValidationError checks whether the error was caused by invalid data.
func IsValidationError(err error) bool {
	_, ok := errors.Cause(err).(validationError)
	return ok
}
