// Package domain defines error types shared by the pattern demos.
package domain

import (
	"errors"
	"fmt"
)

// UnknownKindError is returned when a name does not map to any known
// implementation (platform, recipe, shape kind, demo).
type UnknownKindError struct {
	Category string
	Value    string
}

// Error implements the error interface for UnknownKindError
func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Category, e.Value)
}

// Is allows proper error type checking with errors.Is()
func (e *UnknownKindError) Is(target error) bool {
	_, ok := target.(*UnknownKindError)
	return ok
}

// InvalidOptionError is returned when a demo option has an unusable value
type InvalidOptionError struct {
	Field  string
	Reason string
	Value  interface{}
}

// Error implements the error interface for InvalidOptionError
func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid option: field=%s, reason=%s, value=%v", e.Field, e.Reason, e.Value)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidOptionError) Is(target error) bool {
	_, ok := target.(*InvalidOptionError)
	return ok
}

// NewUnknownKindError creates a new UnknownKindError
func NewUnknownKindError(category, value string) error {
	return &UnknownKindError{Category: category, Value: value}
}

// NewInvalidOptionError creates a new InvalidOptionError
func NewInvalidOptionError(field, reason string, value interface{}) error {
	return &InvalidOptionError{
		Field:  field,
		Reason: reason,
		Value:  value,
	}
}

// IsUnknownKindError checks if an error is an UnknownKindError
func IsUnknownKindError(err error) bool {
	var uke *UnknownKindError
	return errors.As(err, &uke)
}

// IsInvalidOptionError checks if an error is an InvalidOptionError
func IsInvalidOptionError(err error) bool {
	var ioe *InvalidOptionError
	return errors.As(err, &ioe)
}
