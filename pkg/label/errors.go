package label

import (
	"fmt"
	"strings"
)

// ErrorType represents different categories of label operation errors
type ErrorType string

const (
	ErrorTypeGhMissing     ErrorType = "gh_missing"
	ErrorTypeGh            ErrorType = "gh"
	ErrorTypeAuth          ErrorType = "authentication"
	ErrorTypeNotFound      ErrorType = "not_found"
	ErrorTypeAlreadyExists ErrorType = "already_exists"
	ErrorTypeParse         ErrorType = "parse"
	ErrorTypeValidation    ErrorType = "validation"
	ErrorTypeUnknown       ErrorType = "unknown"
)

// Error represents a structured error from label operations
type Error struct {
	Type     ErrorType
	Message  string
	Cause    error
	Resource string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s error for %s: %s", e.Type, e.Resource, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the specified type and message
func NewError(errorType ErrorType, message string, cause error) *Error {
	return &Error{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// IsNotFound reports whether err is a label Error of type not_found.
func IsNotFound(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrorTypeNotFound
	}
	return false
}

// IsAlreadyExists reports whether err is a label Error of type already_exists.
func IsAlreadyExists(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrorTypeAlreadyExists
	}
	return false
}

// classifyGhError maps gh CLI stderr output to a structured error. The gh
// tool reports GitHub API failures on stderr with the HTTP status text, so
// classification is by message content.
func classifyGhError(stderr string, resource string) *Error {
	msg := strings.TrimSpace(stderr)
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "already_exists"):
		return &Error{Type: ErrorTypeAlreadyExists, Message: msg, Resource: resource}
	case strings.Contains(lower, "not found") || strings.Contains(msg, "404"):
		return &Error{Type: ErrorTypeNotFound, Message: msg, Resource: resource}
	case strings.Contains(lower, "not logged in") ||
		strings.Contains(lower, "gh auth login") ||
		strings.Contains(lower, "authentication"):
		return &Error{Type: ErrorTypeAuth, Message: msg, Resource: resource}
	default:
		return &Error{Type: ErrorTypeGh, Message: msg, Resource: resource}
	}
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("validation error for field '%s' (value: %s): %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	if len(e) == 1 {
		return e[0].Error()
	}

	var messages []string
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed with %d errors: %s", len(e), strings.Join(messages, "; "))
}

// Add adds a validation error to the collection
func (e *ValidationErrors) Add(field, value, message string) {
	*e = append(*e, ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}
