package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrDuplicateName = errors.New("duplicate name")
	ErrInvalidMove   = errors.New("invalid move")
	ErrInvalidFormat = errors.New("invalid format")
	ErrEmptyFile     = errors.New("empty file")
	ErrMediaIO       = errors.New("media i/o")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// DuplicateNameError reports a case-insensitive name collision among siblings.
// ParentID is nil when the collision is at the root level.
type DuplicateNameError struct {
	Entity   EntityType
	Name     string
	ParentID *uuid.UUID
}

func (e *DuplicateNameError) Error() string {
	where := "root"
	if e.ParentID != nil {
		where = "category " + e.ParentID.String()
	}
	return fmt.Sprintf("%s named %q already exists in %s", e.Entity, e.Name, where)
}

func (e *DuplicateNameError) Unwrap() error { return ErrDuplicateName }

// InvalidMoveError reports an attempt to move a category into itself or
// into one of its own descendants.
type InvalidMoveError struct {
	CategoryID uuid.UUID
	TargetID   uuid.UUID
}

func (e *InvalidMoveError) Error() string {
	if e.CategoryID == e.TargetID {
		return fmt.Sprintf("category %s cannot be moved into itself", e.CategoryID)
	}
	return fmt.Sprintf("category %s cannot be moved into its descendant %s", e.CategoryID, e.TargetID)
}

func (e *InvalidMoveError) Unwrap() error { return ErrInvalidMove }

// MediaError describes a failed media read, write or delete.
// It matches both ErrMediaIO and the underlying cause.
type MediaError struct {
	Op  string
	Ref string
	Err error
}

func (e *MediaError) Error() string {
	return fmt.Sprintf("media %s %s: %v", e.Op, e.Ref, e.Err)
}

func (e *MediaError) Unwrap() []error { return []error{ErrMediaIO, e.Err} }
