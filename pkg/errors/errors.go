package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Precondition errors
	ErrWrongProjectType ErrorCode = "WRONG_PROJECT_TYPE"
	ErrExtNotFound      ErrorCode = "EXT_NOT_FOUND"

	// User input errors
	ErrInvalidIdentifier ErrorCode = "INVALID_IDENTIFIER"
	ErrUnknownTemplate   ErrorCode = "UNKNOWN_TEMPLATE"

	// Manifest errors
	ErrManifestLoad  ErrorCode = "MANIFEST_LOAD"
	ErrManifestParse ErrorCode = "MANIFEST_PARSE"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// Generation errors
	ErrFilesystem ErrorCode = "FILESYSTEM"
	ErrRender     ErrorCode = "RENDER"
)

// CivixError represents a structured error with code and details
type CivixError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CivixError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CivixError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CivixError) Is(target error) bool {
	var targetErr *CivixError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CivixError with the given code and message
func New(code ErrorCode, message string) *CivixError {
	return &CivixError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CivixError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CivixError {
	return &CivixError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CivixError
func Wrap(err error, code ErrorCode, message string) *CivixError {
	if err == nil {
		return nil
	}
	return &CivixError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CivixError {
	if err == nil {
		return nil
	}
	return &CivixError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CivixError) WithDetail(key string, value interface{}) *CivixError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *CivixError) WithDetails(details map[string]interface{}) *CivixError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var civixErr *CivixError
	if errors.As(err, &civixErr) {
		return civixErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CivixError
func GetErrorCode(err error) ErrorCode {
	var civixErr *CivixError
	if errors.As(err, &civixErr) {
		return civixErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CivixError
func GetErrorDetails(err error) map[string]interface{} {
	var civixErr *CivixError
	if errors.As(err, &civixErr) {
		return civixErr.Details
	}
	return nil
}

// Message returns the human readable message of a CivixError without the
// code prefix, or err.Error() for any other error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var civixErr *CivixError
	if errors.As(err, &civixErr) {
		return civixErr.Message
	}
	return err.Error()
}

// IsNotExist reports whether err says a file or directory does not exist
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
