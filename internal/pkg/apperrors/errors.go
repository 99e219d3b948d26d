package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Store errors
	ErrConnectionUnavailable = errors.New("database not available")
	ErrPersistence           = errors.New("persistence failure")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// MaxMessageLength bounds error text echoed back to API clients.
const MaxMessageLength = 200

// ValidationError reports a record that does not satisfy its schema.
// Outbound marks records read back from the store; a failure there is an
// internal inconsistency rather than a client mistake.
type ValidationError struct {
	Entity   string
	Field    string
	Reason   string
	Outbound bool
}

// Error implements error interface
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Entity, e.Reason)
	}
	return fmt.Sprintf("%s.%s: %s", e.Entity, e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a ValidationError for an inbound payload.
func NewValidationError(entity, field, reason string) *ValidationError {
	return &ValidationError{Entity: entity, Field: field, Reason: reason}
}

// PersistenceError wraps a failed insert or query against a reachable store.
type PersistenceError struct {
	Op         string
	Collection string
	Err        error
}

// Error implements error interface
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

// Unwrap exposes both the sentinel and the driver error.
func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistence, e.Err}
}

// NewPersistenceError wraps err unless it already is a store-level sentinel.
func NewPersistenceError(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrConnectionUnavailable) {
		return err
	}
	return &PersistenceError{Op: op, Collection: collection, Err: err}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) *CustomError {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// Truncate shortens s to at most n runes, appending an ellipsis when cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
