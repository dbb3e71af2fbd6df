package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds. These are the only conditions the arithmetic and indexing
// packages report; every structured error below unwraps to one of them.
var (
	// ErrOverflow reports a result that does not fit in the operand width.
	ErrOverflow = errors.New("overflow")
	// ErrDivisionByZero reports a whole-value zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidArgument reports input that cannot be encoded or applied.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange reports a descriptor offset outside its mode's bounds.
	ErrOutOfRange = errors.New("out of range")
	// ErrUnsupportedVersion reports a descriptor with the version bit set.
	ErrUnsupportedVersion = errors.New("unsupported version")
)

// ArithmeticError describes a failed operation on a fixed-width integer.
type ArithmeticError struct {
	// Op is the operation name, e.g. "mul".
	Op string
	// Width is the operand width in bits.
	Width int
	// Kind is one of the sentinel error kinds.
	Kind error
}

// Error returns a message naming the operation, width and kind.
func (e ArithmeticError) Error() string {
	return fmt.Sprintf("%s on %d-bit integer: %v", e.Op, e.Width, e.Kind)
}

// Unwrap returns the error kind, so errors.Is matches the sentinel.
func (e ArithmeticError) Unwrap() error { return e.Kind }

// NewArithmeticError creates an ArithmeticError for op at the given width.
func NewArithmeticError(op string, width int, kind error) error {
	return ArithmeticError{Op: op, Width: width, Kind: kind}
}

// IndexError describes a descriptor that could not be encoded, validated
// or applied to a store.
type IndexError struct {
	// Op is the codec operation, e.g. "encode" or "read".
	Op string
	// Descriptor is the raw 32-bit descriptor, zero when encoding failed.
	Descriptor uint32
	// Mode is the granularity name.
	Mode string
	// Offset is the requested unit offset.
	Offset uint32
	// Limit is the exclusive bound the offset was checked against.
	Limit uint32
	// Kind is one of the sentinel error kinds.
	Kind error
}

// Error returns a message describing the rejected offset.
func (e IndexError) Error() string {
	if e.Mode == "" || errors.Is(e.Kind, ErrUnsupportedVersion) {
		return fmt.Sprintf("%s: descriptor 0x%08x: %v", e.Op, e.Descriptor, e.Kind)
	}
	return fmt.Sprintf("%s: offset %d for %s mode (limit %d): %v", e.Op, e.Offset, e.Mode, e.Limit, e.Kind)
}

// Unwrap returns the error kind.
func (e IndexError) Unwrap() error { return e.Kind }

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// Unwrap reports validation failures as invalid arguments.
func (e ValidationError) Unwrap() error { return ErrInvalidArgument }

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(field, format string, a ...any) error {
	return ValidationError{Field: field, Message: fmt.Sprintf(format, a...)}
}

// ConfigError represents an invalid configuration value, such as a
// malformed environment variable.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// KindName returns a short snake_case name for the error kind found in
// err's chain, suitable as a metric label. Unknown errors map to "other".
func KindName(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrOverflow):
		return "overflow"
	case errors.Is(err, ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, ErrUnsupportedVersion):
		return "unsupported_version"
	}
	var cfg ConfigError
	if errors.As(err, &cfg) {
		return "config"
	}
	return "other"
}
