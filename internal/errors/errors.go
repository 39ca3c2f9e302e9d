// Package errors provides structured error types and exit codes for keplergrade.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess          = 0 // Success, including suites skipped as not implemented
	ExitRuntimeError     = 1 // Runtime error or failed grading
	ExitConfigError      = 2 // Configuration or suite file error
	ExitEnvironmentError = 3 // Environment error (file watching unavailable, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
	KindEnvironment
)

// GradeError is the base error type for keplergrade.
type GradeError struct {
	Kind    ErrorKind
	Message string
	Suite   string // Suite name if applicable
	Cause   error  // Underlying error
}

func (e *GradeError) Error() string {
	msg := e.Message
	if e.Suite != "" {
		msg = fmt.Sprintf("[%s] %s", e.Suite, msg)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *GradeError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *GradeError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation, KindNotFound:
		return ExitConfigError
	case KindEnvironment:
		return ExitEnvironmentError
	default:
		return ExitRuntimeError
	}
}

// Config creates a new configuration error.
func Config(message string) *GradeError {
	return &GradeError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *GradeError {
	return Config(fmt.Sprintf(format, args...))
}

// Environment creates a new environment error.
func Environment(message string) *GradeError {
	return &GradeError{
		Kind:    KindEnvironment,
		Message: message,
	}
}

// Environmentf creates a new environment error with formatting.
func Environmentf(format string, args ...interface{}) *GradeError {
	return Environment(fmt.Sprintf(format, args...))
}

// WrapConfig wraps an error as a configuration error.
func WrapConfig(err error, message string) *GradeError {
	return &GradeError{
		Kind:    KindConfig,
		Message: message,
		Cause:   err,
	}
}

// SuiteError creates a validation error for a specific suite definition.
func SuiteError(suite, message string) *GradeError {
	return &GradeError{
		Kind:    KindValidation,
		Suite:   suite,
		Message: message,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *GradeError {
	return &GradeError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ge *GradeError
	if errors.As(err, &ge) {
		return ge.ExitCode()
	}
	return ExitRuntimeError
}
