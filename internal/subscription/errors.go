package subscription

import "errors"

var (
	ErrNotFound   = errors.New("subscription not found")
	ErrValidation = errors.New("validation failed")
)

// ValidationError carries the per-field messages of a rejected form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return ErrValidation.Error() }

func (e *ValidationError) Unwrap() error { return ErrValidation }
