// Package domain holds the quiz's entities, rules and errors.
// Errors here are transport-agnostic; adapters map them onto status codes.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

// AlreadyActedReason is the conflict reason when a device has used its
// daily action on a quote.
const AlreadyActedReason = "already submitted or skipped today"

// NotFoundError names the missing quote or submission.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}

	return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError reports that entity id does not exist.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError reports a state conflict. Day is set when the conflict is
// a daily lock.
type ConflictError struct {
	Entity string
	Reason string
	Day    string
}

func (e *ConflictError) Error() string {
	msg := e.Entity + " conflict: " + e.Reason
	if e.Day != "" {
		msg += " (" + e.Day + ")"
	}

	return msg
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// NewAlreadyActedError reports that the device already submitted or
// skipped the quote on day.
func NewAlreadyActedError(day string) error {
	return &ConflictError{Entity: "quote", Reason: AlreadyActedReason, Day: day}
}

// FieldIssue describes a single invalid input field.
type FieldIssue struct {
	Field   string
	Message string
}

// ValidationError lists every invalid field of a rejected input, in the
// order they were checked.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Field+": "+issue.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// FieldIssues returns the issues. Callers must not modify the slice.
func (e *ValidationError) FieldIssues() []FieldIssue {
	return e.Issues
}

// NewValidationError reports a single invalid field.
func NewValidationError(field, message string) error {
	return &ValidationError{Issues: []FieldIssue{{Field: field, Message: message}}}
}

// NewValidationErrors reports several invalid fields. Returns nil when
// issues is empty.
func NewValidationErrors(issues ...FieldIssue) error {
	if len(issues) == 0 {
		return nil
	}

	return &ValidationError{Issues: issues}
}

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err is or wraps ErrConflict.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

// IsValidation reports whether err is or wraps ErrValidation.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
