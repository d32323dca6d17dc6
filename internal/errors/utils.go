package errors

import (
	"errors"
)

// Wrap wraps an error with additional context, creating a ScaffoldError if
// the input is not already one.
func Wrap(err error, errType ErrorType, code, message string) *ScaffoldError {
	if err == nil {
		return nil
	}

	// Keep the exit code and location of an inner ScaffoldError
	var se *ScaffoldError
	if errors.As(err, &se) {
		return &ScaffoldError{
			Type:     errType,
			Code:     code,
			Message:  message,
			Cause:    se,
			Context:  se.Context,
			Path:     se.Path,
			Command:  se.Command,
			ExitCode: se.ExitCode,
		}
	}

	return &ScaffoldError{
		Type:     errType,
		Code:     code,
		Message:  message,
		Cause:    err,
		ExitCode: 1,
	}
}

// WrapIO wraps an error as an I/O error against path.
func WrapIO(err error, code, message, path string) *ScaffoldError {
	se := Wrap(err, ErrorTypeIO, code, message)
	if se != nil {
		se.Path = path
	}
	return se
}

// WrapConfig wraps an error as a configuration error.
func WrapConfig(err error, code, message string) *ScaffoldError {
	return Wrap(err, ErrorTypeConfig, code, message)
}

// WrapInternal wraps an error as an internal error.
func WrapInternal(err error, code, message string) *ScaffoldError {
	return Wrap(err, ErrorTypeInternal, code, message)
}

// GetErrorContext extracts context information from a ScaffoldError.
func GetErrorContext(err error) map[string]interface{} {
	var se *ScaffoldError
	if !errors.As(err, &se) {
		return nil
	}

	ctx := make(map[string]interface{}, len(se.Context)+4)
	for k, v := range se.Context {
		ctx[k] = v
	}
	ctx["type"] = string(se.Type)
	ctx["code"] = se.Code
	if se.Path != "" {
		ctx["path"] = se.Path
	}
	if se.Command != "" {
		ctx["command"] = se.Command
	}

	return ctx
}

// FirstError returns the first non-nil error.
func FirstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
