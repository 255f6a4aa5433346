package errdefs

import (
	"errors"
	"fmt"
)

// ValidationError reports a caller-supplied argument rejected before any
// engine call was issued.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid argument: " + e.Reason
}

// NewValidation creates a ValidationError with a formatted reason.
func NewValidation(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// ConfigurationError reports an unusable engine endpoint locator. It is
// raised at construction and is fatal to that runtime instance.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return "configuration: " + e.Reason + ": " + e.Err.Error()
	}
	return "configuration: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// NewConfiguration creates a ConfigurationError wrapping err; err may be nil.
func NewConfiguration(err error, format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...), Err: err}
}

// IsConfiguration reports whether err is or wraps a ConfigurationError.
func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// EngineError wraps a non-success engine response or transport failure.
// No retry is attempted; retry policy belongs to the caller.
type EngineError struct {
	Op  string
	Err error
}

func (e *EngineError) Error() string {
	return "engine: " + e.Op + ": " + e.Err.Error()
}

func (e *EngineError) Unwrap() error { return e.Err }

// NewEngine wraps an engine failure for the named operation.
func NewEngine(op string, err error) error {
	return &EngineError{Op: op, Err: err}
}

// IsEngine reports whether err is or wraps an EngineError.
func IsEngine(err error) bool {
	var target *EngineError
	return errors.As(err, &target)
}

// SerializationError reports a failure encoding credentials, filters or
// create payloads. Treated as an input/programming error.
type SerializationError struct {
	What string
	Err  error
}

func (e *SerializationError) Error() string {
	return "serialize " + e.What + ": " + e.Err.Error()
}

func (e *SerializationError) Unwrap() error { return e.Err }

// NewSerialization wraps an encoding failure for the named payload.
func NewSerialization(err error, what string) error {
	return &SerializationError{What: what, Err: err}
}

// IsSerialization reports whether err is or wraps a SerializationError.
func IsSerialization(err error) bool {
	var target *SerializationError
	return errors.As(err, &target)
}
