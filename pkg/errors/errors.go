package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors (fatal, abort before discovery)
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Discovery errors (warnings, degrade gracefully)
	ErrRootMissing  ErrorCode = "ROOT_MISSING"
	ErrIgnoreLoad   ErrorCode = "IGNORE_LOAD"
	ErrFileRead     ErrorCode = "FILE_READ"

	// Rendering errors (fatal, no partial-document recovery)
	ErrRender ErrorCode = "RENDER"

	// Summarization errors (silent fallback to the rule-based path)
	ErrSummarize ErrorCode = "SUMMARIZE"

	// Persistence errors (warnings, never roll back the artifact)
	ErrSidecarWrite ErrorCode = "SIDECAR_WRITE"
	ErrIgnoreWrite  ErrorCode = "IGNORE_WRITE"
)

// CodepdfError represents a structured error with code and details
type CodepdfError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CodepdfError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CodepdfError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CodepdfError) Is(target error) bool {
	var targetErr *CodepdfError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CodepdfError with the given code and message
func New(code ErrorCode, message string) *CodepdfError {
	return &CodepdfError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CodepdfError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CodepdfError {
	return &CodepdfError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CodepdfError
func Wrap(err error, code ErrorCode, message string) *CodepdfError {
	if err == nil {
		return nil
	}
	return &CodepdfError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CodepdfError {
	if err == nil {
		return nil
	}
	return &CodepdfError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CodepdfError) WithDetail(key string, value interface{}) *CodepdfError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cErr *CodepdfError
	if errors.As(err, &cErr) {
		return cErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if
// it is not a CodepdfError
func GetErrorCode(err error) ErrorCode {
	var cErr *CodepdfError
	if errors.As(err, &cErr) {
		return cErr.Code
	}
	return ErrUnknown
}
