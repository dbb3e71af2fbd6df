// Package apperrors provides tests for the wide-integer error types.
package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestArithmeticError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected string
		kind     error
	}{
		{
			name:     "overflow on mul",
			err:      NewArithmeticError("mul", 8192, ErrOverflow),
			expected: "mul on 8192-bit integer: overflow",
			kind:     ErrOverflow,
		},
		{
			name:     "division by zero",
			err:      NewArithmeticError("div", 128, ErrDivisionByZero),
			expected: "div on 128-bit integer: division by zero",
			kind:     ErrDivisionByZero,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("errors.Is should find %v in the chain", tt.kind)
			}
			var arithErr ArithmeticError
			if !errors.As(tt.err, &arithErr) {
				t.Error("expected error to be ArithmeticError type")
			}
		})
	}
}

func TestIndexError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      IndexError
		expected string
		kind     error
	}{
		{
			name:     "offset out of range",
			err:      IndexError{Op: "read", Mode: "bit", Offset: 8192, Limit: 8192, Kind: ErrOutOfRange},
			expected: "read: offset 8192 for bit mode (limit 8192): out of range",
			kind:     ErrOutOfRange,
		},
		{
			name:     "unsupported version",
			err:      IndexError{Op: "validate", Descriptor: 0x80000000, Mode: "bit", Kind: ErrUnsupportedVersion},
			expected: "validate: descriptor 0x80000000: unsupported version",
			kind:     ErrUnsupportedVersion,
		},
		{
			name:     "reserved bits",
			err:      IndexError{Op: "validate", Descriptor: 0x00080000, Kind: ErrInvalidArgument},
			expected: "validate: descriptor 0x00080000: invalid argument",
			kind:     ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("errors.Is should find %v in the chain", tt.kind)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := NewValidationError("width", "must be a multiple of %d", 64)
	if got, want := err.Error(), `validation error for "width": must be a multiple of 64`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Error("ValidationError should unwrap to ErrInvalidArgument")
	}
}

func TestConfigError(t *testing.T) {
	t.Parallel()
	err := NewConfigError("invalid value %q for %s", "abc", "WIDEMATH_MAX_PRECISION")
	if got, want := err.Error(), `invalid value "abc" for WIDEMATH_MAX_PRECISION`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	var configErr ConfigError
	if !errors.As(err, &configErr) {
		t.Error("expected error to be ConfigError type")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()
		if WrapError(nil, "context") != nil {
			t.Error("WrapError(nil) should return nil")
		}
	})

	t.Run("wraps with context", func(t *testing.T) {
		t.Parallel()
		err := WrapError(ErrOverflow, "scaling by 10^%d", 3)
		if got, want := err.Error(), "scaling by 10^3: overflow"; got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
		if !errors.Is(err, ErrOverflow) {
			t.Error("wrapped error should match ErrOverflow")
		}
	})
}

func TestKindName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		want string
	}{
		{nil, "none"},
		{NewArithmeticError("add", 64, ErrOverflow), "overflow"},
		{fmt.Errorf("outer: %w", NewArithmeticError("mod", 64, ErrDivisionByZero)), "division_by_zero"},
		{NewValidationError("offset", "too wide"), "invalid_argument"},
		{IndexError{Kind: ErrOutOfRange}, "out_of_range"},
		{IndexError{Kind: ErrUnsupportedVersion}, "unsupported_version"},
		{NewConfigError("bad"), "config"},
		{errors.New("something else"), "other"},
	}
	for _, tt := range tests {
		tt := tt
		if got := KindName(tt.err); got != tt.want {
			t.Errorf("KindName(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
