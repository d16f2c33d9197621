// Package errors provides the structured error types shared by the dataset
// builder and the HTTP fragment endpoints.
package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeSecurity   ErrorType = "security"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeBuild      ErrorType = "build"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// InternalMessage is the only message an internal failure ever exposes to a caller.
const InternalMessage = "Internal server error"

// ShowcaseError is a structured error type with context.
type ShowcaseError struct {
	Type     ErrorType
	Code     string
	Message  string
	Cause    error
	Context  map[string]interface{}
	FilePath string
	Line     int
}

// Error implements the error interface.
func (e *ShowcaseError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.FilePath != "" {
		location := e.FilePath
		if e.Line > 0 {
			location += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, location)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *ShowcaseError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *ShowcaseError) Is(target error) bool {
	var t *ShowcaseError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *ShowcaseError) WithContext(key string, value interface{}) *ShowcaseError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithLocation adds file location information.
func (e *ShowcaseError) WithLocation(filePath string, line int) *ShowcaseError {
	e.FilePath = filePath
	e.Line = line

	return e
}

// StatusCode maps the error category onto an HTTP status.
func (e *ShowcaseError) StatusCode() int {
	switch e.Type {
	case ErrorTypeValidation, ErrorTypeSecurity:
		return http.StatusBadRequest
	case ErrorTypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the message safe to hand back to a client.
func (e *ShowcaseError) PublicMessage() string {
	if e.StatusCode() >= http.StatusInternalServerError {
		return InternalMessage
	}

	return e.Message
}

// Error creation functions

// NewBadRequest creates an error for invalid caller input.
func NewBadRequest(message string) *ShowcaseError {
	return &ShowcaseError{
		Type:    ErrorTypeValidation,
		Code:    ErrCodeValidationFailed,
		Message: message,
	}
}

// NewNotFound creates an error for a missing resource or a refused capability.
func NewNotFound(message string) *ShowcaseError {
	return &ShowcaseError{
		Type:    ErrorTypeNotFound,
		Code:    ErrCodeNotFound,
		Message: message,
	}
}

// NewSecurityError creates a security error.
func NewSecurityError(code, message string) *ShowcaseError {
	return &ShowcaseError{
		Type:    ErrorTypeSecurity,
		Code:    code,
		Message: message,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *ShowcaseError {
	return &ShowcaseError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *ShowcaseError {
	return &ShowcaseError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *ShowcaseError {
	return &ShowcaseError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	var se *ShowcaseError
	if errors.As(err, &se) {
		return se.Type == ErrorTypeNotFound
	}

	return false
}

// IsSecurityError checks if an error is security-related.
func IsSecurityError(err error) bool {
	var se *ShowcaseError
	if errors.As(err, &se) {
		return se.Type == ErrorTypeSecurity
	}

	return false
}

// Logger interface for error logging.
type Logger interface {
	Error(ctx context.Context, err error, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
}

// Common error codes.
const (
	ErrCodeInvalidPath      = "ERR_INVALID_PATH"
	ErrCodePathTraversal    = "ERR_PATH_TRAVERSAL"
	ErrCodeNotFound         = "ERR_NOT_FOUND"
	ErrCodeBuildFailed      = "ERR_BUILD_FAILED"
	ErrCodeConfigInvalid    = "ERR_CONFIG_INVALID"
	ErrCodeDatasetCorrupt   = "ERR_DATASET_CORRUPT"
	ErrCodeRenderFailed     = "ERR_RENDER_FAILED"
	ErrCodeInternalError    = "ERR_INTERNAL"
	ErrCodeValidationFailed = "ERR_VALIDATION_FAILED"
)
