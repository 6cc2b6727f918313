package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorMismatch = 3   // Indicates the engines disagreed beyond tolerance.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect
// user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an invalid numeric input sequence: either the
// sequence was empty or one of its elements is not a usable number (NaN or
// ±Inf). It identifies the offending element when one exists.
//
// A ValidationError indicates caller misuse, not a transient condition; it is
// never retried and must propagate unchanged out of whichever engine detected
// it.
type ValidationError struct {
	// Index is the position of the offending element, or -1 when the failure
	// concerns the sequence as a whole (e.g., it is empty).
	Index int
	// Value is the offending element. Meaningless when Index is -1.
	Value float64
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error at index %d: %s (value %v)", e.Index, e.Message, e.Value)
}

// NewEmptyInputError creates the ValidationError used when a sequence holds no
// observations.
func NewEmptyInputError() error {
	return ValidationError{Index: -1, Message: "values must be a non-empty sequence"}
}

// NewBadValueError creates the ValidationError used when an element cannot be
// treated as a finite number.
func NewBadValueError(index int, value float64) error {
	return ValidationError{Index: index, Value: value, Message: "non-numeric value encountered"}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// ParseError represents a failure to turn a raw user-supplied token into a
// number. It belongs to the input-reading layer (menu, flags, HTTP) and is a
// deliberately distinct type from ValidationError: by the time the statistics
// core runs, its input is already numeric.
type ParseError struct {
	// Token is the piece of input that could not be converted.
	Token string
}

// Error returns a formatted message naming the offending token.
func (e ParseError) Error() string {
	return fmt.Sprintf("could not convert %q to a number", e.Token)
}

// IsParse reports whether err is (or wraps) a ParseError.
func IsParse(err error) bool {
	var pe ParseError
	return errors.As(err, &pe)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the process exit code it should produce.
// Validation and parse failures are caller misuse (generic failure), context
// cancellation maps to the conventional 130.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, &ConfigError{}):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
