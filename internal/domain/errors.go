// Package domain contains the contact book model and its errors.
// Domain errors describe what went wrong with a contact operation, NOT how it is shown.
// Adapters map them to user-facing replies.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested contact or phone does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a field failed its validation rule.
	ErrValidation = errors.New("validation failed")

	// ErrArity indicates a command was given too few arguments.
	ErrArity = errors.New("missing arguments")

	// ErrUnavailable indicates a required dependency (storage) is unavailable.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError provides context for lookup misses.
// A Private ID is kept out of Error(); loggers read it from the field.
type NotFoundError struct {
	Entity  string
	ID      string
	Private bool
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" && !e.Private {
		return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// NewPhoneNotFoundError reports a phone missing from a contact.
// The number stays out of the message.
func NewPhoneNotFoundError(number string) error {
	return &NotFoundError{Entity: "phone", ID: number, Private: true}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// ArityError reports a command invoked with too few arguments.
// Prompt, when set, is the reply asking the user for what is missing.
type ArityError struct {
	Command string
	Want    int
	Got     int
	Prompt  string
}

// Error implements the error interface.
func (e *ArityError) Error() string {
	return fmt.Sprintf("command %q needs %d argument(s), got %d", e.Command, e.Want, e.Got)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ArityError) Unwrap() error {
	return ErrArity
}

// NewArityError creates an arity error with the prompt shown to the user.
func NewArityError(command string, want, got int, prompt string) error {
	return &ArityError{Command: command, Want: want, Got: got, Prompt: prompt}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsArity checks if an error is an arity error.
func IsArity(err error) bool {
	return errors.Is(err, ErrArity)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
