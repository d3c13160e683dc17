package errors

import (
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode adds an error code to an existing error
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    code,
			Message: appErr.Message,
			Cause:   appErr.Cause,
		}
	}
	return &AppError{
		Code:    code,
		Message: err.Error(),
		Cause:   err,
	}
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeDataAccess    = "DATA_ACCESS_ERROR"
	CodeKVQuery       = "KV_QUERY_ERROR"
	CodeSummaryWrite  = "SUMMARY_WRITE_ERROR"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeInternalError = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// DataAccess marks a failed relational read. Fatal for the run.
func DataAccess(err error, message string) *AppError {
	return &AppError{
		Code:    CodeDataAccess,
		Message: message,
		Cause:   err,
	}
}

// KVQuery marks a failed key-value store lookup. Fatal for the run.
func KVQuery(err error, message string) *AppError {
	return &AppError{
		Code:    CodeKVQuery,
		Message: message,
		Cause:   err,
	}
}

// SummaryWrite marks a failed summary append. Recoverable under the soft
// write policy.
func SummaryWrite(err error, message string) *AppError {
	return &AppError{
		Code:    CodeSummaryWrite,
		Message: message,
		Cause:   err,
	}
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}
