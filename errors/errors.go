// Package errors provides standardized error handling for the pack
// registry and detection subsystem. It includes error classification,
// standard error variables, and helper functions for consistent error
// wrapping across packages.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorInvalid represents errors due to invalid input or pack structure
	ErrorInvalid ErrorClass = iota
	// ErrorNotFound represents lookups of packs or entries that do not exist
	ErrorNotFound
	// ErrorConflict represents duplicate registrations or identifier collisions
	ErrorConflict
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorInvalid:
		return "invalid"
	case ErrorNotFound:
		return "not_found"
	case ErrorConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Registry lifecycle errors
	ErrDuplicatePack = errors.New("pack already registered")
	ErrPackNotFound  = errors.New("pack not found")

	// Pack structure errors
	ErrMissingField          = errors.New("missing required field")
	ErrDuplicateSemanticType = errors.New("duplicate semantic type")
	ErrDuplicateMetricID     = errors.New("duplicate metric id")
	ErrInvalidPack           = errors.New("invalid pack structure")

	// Transport errors
	ErrParseFailed      = errors.New("parsing failed")
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsInvalid checks if an error is due to invalid input or pack structure
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}

	return errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrDuplicateSemanticType) ||
		errors.Is(err, ErrDuplicateMetricID) ||
		errors.Is(err, ErrInvalidPack) ||
		errors.Is(err, ErrParseFailed)
}

// IsNotFound checks if an error is a missing-pack or missing-entry lookup
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorNotFound
	}

	return errors.Is(err, ErrPackNotFound)
}

// IsConflict checks if an error is a duplicate registration
func IsConflict(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorConflict
	}

	return errors.Is(err, ErrDuplicatePack)
}

// Classify returns the error class for an error
func Classify(err error) ErrorClass {
	if IsConflict(err) {
		return ErrorConflict
	}
	if IsNotFound(err) {
		return ErrorNotFound
	}

	// Default to invalid: every remaining failure in this subsystem is a
	// deterministic rejection of caller input, never a transient fault.
	return ErrorInvalid
}

// newClassified creates a new classified error.
// This is an internal helper - use WrapInvalid(), WrapNotFound(), or WrapConflict() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapInvalid wraps an error as invalid input with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorInvalid, wrappedErr, component, method, wrappedErr.Error())
}

// WrapNotFound wraps an error as a missing-entry lookup with context
func WrapNotFound(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorNotFound, wrappedErr, component, method, wrappedErr.Error())
}

// WrapConflict wraps an error as a duplicate registration with context
func WrapConflict(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorConflict, wrappedErr, component, method, wrappedErr.Error())
}
