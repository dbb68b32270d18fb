// Package errors provides a lightweight structured error type (CleanError)
// for category-based classification of sanitizer failures in the CLI.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrorCategory represents the category of a sanitizer error for classification.
type ErrorCategory string

const (
	// User-facing input and configuration errors
	CategoryInput  ErrorCategory = "input"
	CategoryConfig ErrorCategory = "config"

	// Package structure errors
	CategoryArchive   ErrorCategory = "archive"
	CategoryStructure ErrorCategory = "structure"

	// Processing errors
	CategoryTransform  ErrorCategory = "transform"
	CategoryFileSystem ErrorCategory = "filesystem"

	CategoryInternal ErrorCategory = "internal"
)

// CleanError is a structured error with category and context.
// Every CleanError aborts the run; there is no retry or partial-success mode.
type CleanError struct {
	Category ErrorCategory `json:"category"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for CleanError.
type ContextFields map[string]any

// Error implements the error interface.
func (e *CleanError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling.
func (e *CleanError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error.
func (e *CleanError) WithContext(key string, value any) *CleanError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new CleanError.
func New(category ErrorCategory, message string) *CleanError {
	return &CleanError{
		Category: category,
		Message:  message,
	}
}

// Wrap creates a new CleanError that wraps an existing error.
func Wrap(err error, category ErrorCategory, message string) *CleanError {
	return &CleanError{
		Category: category,
		Message:  message,
		Cause:    err,
	}
}

// As extracts the first CleanError in err's chain.
func As(err error) (*CleanError, bool) {
	var ce *CleanError
	if stdErrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// IsCategory checks if an error (or anything it wraps) belongs to a specific category.
func IsCategory(err error, category ErrorCategory) bool {
	if ce, ok := As(err); ok {
		return ce.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a CleanError.
func GetCategory(err error) ErrorCategory {
	if ce, ok := As(err); ok {
		return ce.Category
	}
	return CategoryInternal
}
