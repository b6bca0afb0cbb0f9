package chroma

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel wrapped by every input validation failure,
// so callers can match the whole class with errors.Is.
var ErrInvalidInput = errors.New("invalid chroma input")

// InputError reports which input constraint was violated: wrong
// dimensionality, or a negative or non-finite energy value.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid chroma input: %s", e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func inputErrorf(format string, args ...any) error {
	return &InputError{Reason: fmt.Sprintf(format, args...)}
}
