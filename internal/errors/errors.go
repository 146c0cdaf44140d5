package errors

import (
	"context"
	"errors"
	"fmt"
)

// AppError is a structured application error carrying a stable code
// callers can branch on.
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

// New creates an AppError with the given code and message.
func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap adds context to an error, preserving the code of a wrapped
// AppError.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	code := CodeInternalError
	var appErr *AppError
	if errors.As(err, &appErr) {
		code = appErr.Code
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode extracts the code from an AppError anywhere in the chain,
// or "UNKNOWN" for foreign errors.
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// IsCancelled reports whether the error represents caller cancellation.
func IsCancelled(err error) bool {
	return GetCode(err) == CodeCancelled ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// Error codes.
const (
	CodeParseError        = "PARSE_ERROR"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeCancelled         = "CANCELLED"
	CodeInternalError     = "INTERNAL_ERROR"
)

// ParseError marks input that cannot yield a header plus zero or more
// rows. It is the only condition fatal to an analysis request.
func ParseError(message string) *AppError {
	return New(CodeParseError, message)
}

// InvalidInput marks a malformed request (bad delimiter, no file).
func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

// UnsupportedFormat marks a dataset format no reader handles.
func UnsupportedFormat(format string) *AppError {
	return New(CodeUnsupportedFormat, fmt.Sprintf("unsupported dataset format: %s", format))
}

// Cancelled marks an analysis abandoned by the caller. It wraps the
// context error so errors.Is(err, context.Canceled) still holds.
func Cancelled(cause error) *AppError {
	return &AppError{Code: CodeCancelled, Message: "analysis cancelled", Cause: cause}
}

// InternalError marks a bug or unexpected runtime failure.
func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
