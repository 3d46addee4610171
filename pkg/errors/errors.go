package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the step that failed. Codes are stable and safe to
// assert on in tests.
type ErrorCode string

// Error codes. Every bootstrap failure is an "external operation failed"
// error; the code names which operation it was.
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Environment errors
	ErrHomeResolve     ErrorCode = "HOME_RESOLVE"
	ErrUsernameResolve ErrorCode = "USERNAME_RESOLVE"

	// External command errors
	ErrCommandFailed ErrorCode = "COMMAND_FAILED"
	ErrGitClone      ErrorCode = "GIT_CLONE"
	ErrSubmoduleSync ErrorCode = "SUBMODULE_SYNC"
	ErrRepoAccess    ErrorCode = "REPO_ACCESS"

	// FileSystem errors
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrLinkRemove    ErrorCode = "LINK_REMOVE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
)

// BootError represents a structured error with code and details
type BootError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BootError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BootError) Unwrap() error {
	return e.Wrapped
}

// Is matches any *BootError carrying the same code
func (e *BootError) Is(target error) bool {
	var targetErr *BootError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BootError with the given code and message
func New(code ErrorCode, message string) *BootError {
	return &BootError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BootError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BootError {
	return &BootError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BootError. It returns nil for a nil err.
func Wrap(err error, code ErrorCode, message string) *BootError {
	if err == nil {
		return nil
	}
	return &BootError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BootError {
	if err == nil {
		return nil
	}
	return &BootError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BootError) WithDetail(key string, value interface{}) *BootError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var bootErr *BootError
	if errors.As(err, &bootErr) {
		return bootErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BootError
func GetErrorCode(err error) ErrorCode {
	var bootErr *BootError
	if errors.As(err, &bootErr) {
		return bootErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BootError
func GetErrorDetails(err error) map[string]interface{} {
	var bootErr *BootError
	if errors.As(err, &bootErr) {
		return bootErr.Details
	}
	return nil
}
