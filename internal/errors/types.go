package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeCancelled  ErrorType = "cancelled"
	ErrorTypeCommand    ErrorType = "command"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeInternal   ErrorType = "internal"
)

// ScaffoldError is a structured error type with context.
type ScaffoldError struct {
	Type     ErrorType
	Code     string
	Message  string
	Cause    error
	Context  map[string]interface{}
	Path     string
	Command  string
	ExitCode int
}

// Error implements the error interface.
func (e *ScaffoldError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Command != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Command))
	}

	if e.Path != "" {
		parts = append(parts, e.Path)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *ScaffoldError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *ScaffoldError) Is(target error) bool {
	var t *ScaffoldError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *ScaffoldError) WithContext(key string, value interface{}) *ScaffoldError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithPath records the filesystem target the error refers to.
func (e *ScaffoldError) WithPath(path string) *ScaffoldError {
	e.Path = path

	return e
}

// Error creation functions

// NewCommandError creates an error for a subprocess that failed to start or
// exited non-zero. exitCode is -1 when the process never ran.
func NewCommandError(command string, exitCode int, cause error) *ScaffoldError {
	code := exitCode
	if code <= 0 {
		code = 1
	}

	return &ScaffoldError{
		Type:     ErrorTypeCommand,
		Code:     ErrCodeCommandFailed,
		Message:  "command failed",
		Cause:    cause,
		Command:  command,
		ExitCode: code,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *ScaffoldError {
	return &ScaffoldError{
		Type:     ErrorTypeIO,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: 1,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *ScaffoldError {
	return &ScaffoldError{
		Type:     ErrorTypeConfig,
		Code:     code,
		Message:  message,
		ExitCode: 1,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *ScaffoldError {
	return &ScaffoldError{
		Type:     ErrorTypeValidation,
		Code:     code,
		Message:  message,
		ExitCode: 1,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *ScaffoldError {
	return &ScaffoldError{
		Type:     ErrorTypeInternal,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: 1,
	}
}

// ErrCancelled is returned when the user declines to continue. It is not a
// failure; callers decide which exit code it maps to.
var ErrCancelled = &ScaffoldError{
	Type:    ErrorTypeCancelled,
	Code:    ErrCodeCancelled,
	Message: "operation cancelled by user",
}

// IsCancelled reports whether err is a user cancellation.
func IsCancelled(err error) bool {
	var se *ScaffoldError
	if errors.As(err, &se) {
		return se.Type == ErrorTypeCancelled
	}

	return false
}

// IsCommandError reports whether err came from a failed subprocess.
func IsCommandError(err error) bool {
	var se *ScaffoldError
	if errors.As(err, &se) {
		return se.Type == ErrorTypeCommand
	}

	return false
}

// ExitCodeOf maps an error to a process exit code. Cancellation maps to
// cancelCode; unknown errors map to 1.
func ExitCodeOf(err error, cancelCode int) int {
	if err == nil {
		return 0
	}

	var se *ScaffoldError
	if !errors.As(err, &se) {
		return 1
	}

	if se.Type == ErrorTypeCancelled {
		return cancelCode
	}

	if se.ExitCode <= 0 {
		return 1
	}

	return se.ExitCode
}

// ErrorHandler provides centralized error handling.
type ErrorHandler struct {
	logger Logger
}

// Logger interface for error logging.
type Logger interface {
	Error(ctx context.Context, err error, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle logs an error at a level appropriate to its type.
func (h *ErrorHandler) Handle(ctx context.Context, err error) {
	if err == nil || h.logger == nil {
		return
	}

	var se *ScaffoldError
	if !errors.As(err, &se) {
		h.logger.Error(ctx, err, "Unhandled error occurred")
		return
	}

	switch se.Type {
	case ErrorTypeCancelled:
		h.logger.Info(ctx, "Scaffolding cancelled", "code", se.Code)
	case ErrorTypeCommand:
		h.logger.Error(ctx, se.Cause, "Command failed",
			"command", se.Command,
			"exit_code", se.ExitCode)
	case ErrorTypeIO:
		h.logger.Error(ctx, se.Cause, "File operation failed",
			"code", se.Code,
			"path", se.Path)
	case ErrorTypeValidation, ErrorTypeConfig:
		h.logger.Warn(ctx, err, "Invalid input",
			"type", se.Type,
			"code", se.Code)
	default:
		h.logger.Error(ctx, err, "Error occurred",
			"type", se.Type,
			"code", se.Code)
	}
}

// Common error codes.
const (
	ErrCodeCancelled        = "ERR_CANCELLED"
	ErrCodeCommandFailed    = "ERR_COMMAND_FAILED"
	ErrCodeCommandRejected  = "ERR_COMMAND_REJECTED"
	ErrCodeWriteFailed      = "ERR_WRITE_FAILED"
	ErrCodeRemoveFailed     = "ERR_REMOVE_FAILED"
	ErrCodeStatFailed       = "ERR_STAT_FAILED"
	ErrCodePromptFailed     = "ERR_PROMPT_FAILED"
	ErrCodeConfigInvalid    = "ERR_CONFIG_INVALID"
	ErrCodeValidationFailed = "ERR_VALIDATION_FAILED"
	ErrCodeInternalError    = "ERR_INTERNAL"
)
