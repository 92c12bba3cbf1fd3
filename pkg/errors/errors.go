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

	// Rule errors
	ErrRuleInvalid ErrorCode = "RULE_INVALID"

	// Scan errors
	ErrScanRoot   ErrorCode = "SCAN_ROOT"
	ErrScanAccess ErrorCode = "SCAN_ACCESS"

	// Documentation errors
	ErrTopicNotFound ErrorCode = "TOPIC_NOT_FOUND"

	// Check errors
	ErrNameExcluded ErrorCode = "NAME_EXCLUDED"
)

// DuscanError represents a structured error with code and details
type DuscanError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DuscanError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DuscanError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DuscanError) Is(target error) bool {
	var targetErr *DuscanError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DuscanError with the given code and message
func New(code ErrorCode, message string) *DuscanError {
	return &DuscanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DuscanError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DuscanError {
	return &DuscanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DuscanError
func Wrap(err error, code ErrorCode, message string) *DuscanError {
	if err == nil {
		return nil
	}
	return &DuscanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DuscanError {
	if err == nil {
		return nil
	}
	return &DuscanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DuscanError) WithDetail(key string, value interface{}) *DuscanError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var duscanErr *DuscanError
	if errors.As(err, &duscanErr) {
		return duscanErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DuscanError
func GetErrorCode(err error) ErrorCode {
	var duscanErr *DuscanError
	if errors.As(err, &duscanErr) {
		return duscanErr.Code
	}
	return ErrUnknown
}
