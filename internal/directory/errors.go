package directory

import (
	"errors"
	"fmt"
)

// ValidationError marks user-supplied input that fails a domain rule.
// Workflows recover from it locally; every other error from this package
// is a data-access failure and ends the session.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
