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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Catalog errors
	ErrUnknownKind    ErrorCode = "UNKNOWN_KIND"
	ErrInvalidPattern ErrorCode = "INVALID_PATTERN"

	// Localization errors
	ErrLangNotFound ErrorCode = "LANG_NOT_FOUND"
	ErrLangParse    ErrorCode = "LANG_PARSE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrVarCheck   ErrorCode = "VAR_CHECK_FAILED"
)

// MapcatError represents a structured error with code and details
type MapcatError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MapcatError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MapcatError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MapcatError) Is(target error) bool {
	var targetErr *MapcatError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MapcatError with the given code and message
func New(code ErrorCode, message string) *MapcatError {
	return &MapcatError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MapcatError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MapcatError {
	return &MapcatError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MapcatError
func Wrap(err error, code ErrorCode, message string) *MapcatError {
	if err == nil {
		return nil
	}
	return &MapcatError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MapcatError {
	if err == nil {
		return nil
	}
	return &MapcatError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MapcatError) WithDetail(key string, value interface{}) *MapcatError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var mapcatErr *MapcatError
	if errors.As(err, &mapcatErr) {
		return mapcatErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MapcatError
func GetErrorCode(err error) ErrorCode {
	var mapcatErr *MapcatError
	if errors.As(err, &mapcatErr) {
		return mapcatErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MapcatError
func GetErrorDetails(err error) map[string]interface{} {
	var mapcatErr *MapcatError
	if errors.As(err, &mapcatErr) {
		return mapcatErr.Details
	}
	return nil
}
