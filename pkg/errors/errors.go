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

	// Plugin errors
	ErrPluginBuild ErrorCode = "PLUGIN_BUILD"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Codec errors
	ErrCodecEncode ErrorCode = "CODEC_ENCODE"
	ErrCodecDecode ErrorCode = "CODEC_DECODE"

	// Topic errors
	ErrTopicNotFound ErrorCode = "TOPIC_NOT_FOUND"
)

// PlugregError represents a structured error with code and details
type PlugregError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PlugregError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PlugregError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PlugregError) Is(target error) bool {
	var targetErr *PlugregError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PlugregError with the given code and message
func New(code ErrorCode, message string) *PlugregError {
	return &PlugregError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PlugregError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PlugregError {
	return &PlugregError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PlugregError
func Wrap(err error, code ErrorCode, message string) *PlugregError {
	if err == nil {
		return nil
	}
	return &PlugregError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PlugregError {
	if err == nil {
		return nil
	}
	return &PlugregError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PlugregError) WithDetail(key string, value interface{}) *PlugregError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var plugErr *PlugregError
	if errors.As(err, &plugErr) {
		return plugErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PlugregError
func GetErrorCode(err error) ErrorCode {
	var plugErr *PlugregError
	if errors.As(err, &plugErr) {
		return plugErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PlugregError
func GetErrorDetails(err error) map[string]interface{} {
	var plugErr *PlugregError
	if errors.As(err, &plugErr) {
		return plugErr.Details
	}
	return nil
}
