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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Corpus errors
	ErrCorpusScan   ErrorCode = "CORPUS_SCAN"
	ErrCorpusAccess ErrorCode = "CORPUS_ACCESS"
	ErrExampleParse ErrorCode = "EXAMPLE_PARSE"

	// Manifest errors
	ErrManifestWrite ErrorCode = "MANIFEST_WRITE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCreate   ErrorCode = "FILE_CREATE"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// ShowcaseError represents a structured error with code and details
type ShowcaseError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ShowcaseError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ShowcaseError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ShowcaseError) Is(target error) bool {
	var targetErr *ShowcaseError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ShowcaseError with the given code and message
func New(code ErrorCode, message string) *ShowcaseError {
	return &ShowcaseError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ShowcaseError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ShowcaseError {
	return &ShowcaseError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ShowcaseError
func Wrap(err error, code ErrorCode, message string) *ShowcaseError {
	if err == nil {
		return nil
	}
	return &ShowcaseError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ShowcaseError {
	if err == nil {
		return nil
	}
	return &ShowcaseError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ShowcaseError) WithDetail(key string, value interface{}) *ShowcaseError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var showcaseErr *ShowcaseError
	if errors.As(err, &showcaseErr) {
		return showcaseErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ShowcaseError
func GetErrorCode(err error) ErrorCode {
	var showcaseErr *ShowcaseError
	if errors.As(err, &showcaseErr) {
		return showcaseErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ShowcaseError
func GetErrorDetails(err error) map[string]interface{} {
	var showcaseErr *ShowcaseError
	if errors.As(err, &showcaseErr) {
		return showcaseErr.Details
	}
	return nil
}
