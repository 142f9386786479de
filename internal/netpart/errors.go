package netpart

import (
	"errors"
	"fmt"
)

// ValidationError reports partitioning input that can never produce a valid
// allocation. There is no retry policy: the caller must fix the input and
// recompute from scratch.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
