// Package services defines the business logic for content requests and
// clients. This file centralizes common service-level error values so that
// they can be consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the
// handler layer.
package services

import "errors"

var (
	// ErrRequestNotFound indicates that the requested content request does
	// not exist.
	ErrRequestNotFound = errors.New("content request not found")

	// ErrInvalidStatus is returned when a status update names a value outside
	// the allowed set (pending, in_progress, review, completed, delivered).
	ErrInvalidStatus = errors.New("invalid status value")

	// ErrDuplicateClient is returned when a client registration reuses an
	// email address that is already registered.
	ErrDuplicateClient = errors.New("client with this email already exists")

	// ErrInvalidPlan is returned when a client registration names a
	// subscription plan outside the allowed set.
	ErrInvalidPlan = errors.New("invalid subscription plan")
)

// ValidationError reports the first required input field found missing.
// Handlers surface the field name to the caller.
type ValidationError struct {
	Field string
}

// Error implements the error interface.
func (e *ValidationError) Error() string { return "missing required field: " + e.Field }

// MissingField constructs a ValidationError for the named field.
func MissingField(field string) error { return &ValidationError{Field: field} }
