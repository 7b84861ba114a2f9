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
	ErrPermission    ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Location resolution errors
	ErrUnresolvableLocation ErrorCode = "UNRESOLVABLE_LOCATION"
	ErrEnvExpansion         ErrorCode = "ENV_EXPANSION"
	ErrEnvUndefined         ErrorCode = "ENV_UNDEFINED"

	// Deployment errors
	ErrPlanning      ErrorCode = "PLANNING"
	ErrConflict      ErrorCode = "CONFLICT"
	ErrTrashFailure  ErrorCode = "TRASH_FAILURE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"

	// Repository errors
	ErrRepoUpdate ErrorCode = "REPO_UPDATE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
)

// RrcmError represents a structured error with code and details
type RrcmError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RrcmError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RrcmError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RrcmError) Is(target error) bool {
	var targetErr *RrcmError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RrcmError with the given code and message
func New(code ErrorCode, message string) *RrcmError {
	return &RrcmError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RrcmError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RrcmError {
	return &RrcmError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RrcmError
func Wrap(err error, code ErrorCode, message string) *RrcmError {
	if err == nil {
		return nil
	}
	return &RrcmError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RrcmError {
	if err == nil {
		return nil
	}
	return &RrcmError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RrcmError) WithDetail(key string, value interface{}) *RrcmError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var rrcmErr *RrcmError
	if errors.As(err, &rrcmErr) {
		return rrcmErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RrcmError
func GetErrorCode(err error) ErrorCode {
	var rrcmErr *RrcmError
	if errors.As(err, &rrcmErr) {
		return rrcmErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RrcmError
func GetErrorDetails(err error) map[string]interface{} {
	var rrcmErr *RrcmError
	if errors.As(err, &rrcmErr) {
		return rrcmErr.Details
	}
	return nil
}
