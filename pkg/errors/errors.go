package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "VALIDATION"
	ErrorTypeNotFound   ErrorType = "NOT_FOUND"
	ErrorTypeConflict   ErrorType = "CONFLICT"
	ErrorTypeStore      ErrorType = "STORE"
)

// AppError represents an application-specific error
type AppError struct {
	Type       ErrorType   `json:"type"`
	Message    string      `json:"message"`
	Violations []Violation `json:"violations,omitempty"`
	Cause      error       `json:"-"`
	HTTPStatus int         `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// Violation describes a single field-level validation failure.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Violations aggregates field-level validation failures. A payload is
// accepted only when the collection stays empty.
type Violations []Violation

// Add appends a violation for the given field.
func (v *Violations) Add(field, rule, message string) {
	*v = append(*v, Violation{Field: field, Rule: rule, Message: message})
}

// HasErrors reports whether any violation was recorded.
func (v Violations) HasErrors() bool {
	return len(v) > 0
}

func (v Violations) Error() string {
	if len(v) == 0 {
		return "no violations"
	}
	msg := v[0].String()
	for _, violation := range v[1:] {
		msg += "; " + violation.String()
	}
	return msg
}

// NewValidationError creates a validation error carrying itemized violations
func NewValidationError(message string, violations Violations) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		Violations: violations,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewConflictError creates a conflict error
func NewConflictError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

// NewStoreError creates a store error. The message stays generic so store
// internals never leak into responses; the cause is preserved for logs.
func NewStoreError(operation string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeStore,
		Message:    fmt.Sprintf("store operation '%s' failed", operation),
		Cause:      err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// GetAppError extracts AppError from an error chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// IsConflict checks if an error is a conflict error
func IsConflict(err error) bool {
	return IsType(err, ErrorTypeConflict)
}

// IsStore checks if an error is a store error
func IsStore(err error) bool {
	return IsType(err, ErrorTypeStore)
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	// If it's already an AppError, add context to the message
	if appErr := GetAppError(err); appErr != nil {
		appErr.Message = fmt.Sprintf("%s: %s", message, appErr.Message)
		return appErr
	}

	return NewStoreError(message, err)
}
