package models

import (
	"errors"
	"fmt"
)

var (
	ErrNilArgument = errors.New("argument is nil")
	ErrOutOfRange  = errors.New("argument out of range")
	ErrEmptyCart   = errors.New("cart is empty")
)

// ValidationError reports which argument failed validation. Err is one of
// ErrNilArgument or ErrOutOfRange.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("validation error: %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func nilArgument(field string) error {
	return &ValidationError{Field: field, Err: ErrNilArgument}
}

func outOfRange(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason, Err: ErrOutOfRange}
}
