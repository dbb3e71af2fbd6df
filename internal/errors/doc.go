// Package apperrors defines the error kinds shared by the wide-integer
// packages and the structured error types that carry them, allowing a
// caller to tell an arithmetic overflow from a bad descriptor while still
// seeing which operation failed.
//
// Error Wrapping Guidelines:
// Every structured type unwraps to one of the sentinel kinds below, so
// errors.Is(err, ErrOverflow) works on anything this module returns.
// Context is added with WrapError, which uses fmt.Errorf with %w.
package apperrors
