// Package errors provides a lightweight structured error type (RusticError)
// for category-based classification in the build pipeline and CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a Rustic error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"
	CategoryMetadata   ErrorCategory = "metadata"

	// Build and processing errors
	CategoryPath       ErrorCategory = "path"
	CategoryTemplate   ErrorCategory = "template"
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryBuild      ErrorCategory = "build"

	// Infrastructure errors
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// RusticError is a structured error with category, severity, and context
type RusticError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for RusticError
type ContextFields map[string]any

// Error implements the error interface
func (e *RusticError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *RusticError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *RusticError) WithContext(key string, value any) *RusticError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new RusticError
func New(category ErrorCategory, severity ErrorSeverity, message string) *RusticError {
	return &RusticError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new RusticError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *RusticError {
	return &RusticError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if re, ok := err.(*RusticError); ok {
		return re.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a RusticError
func GetCategory(err error) ErrorCategory {
	if re, ok := err.(*RusticError); ok {
		return re.Category
	}
	return CategoryInternal
}
