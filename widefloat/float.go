// Package widefloat holds a sign-magnitude binary float over the wideint
// chunk store: a W-bit mantissa, a binary exponent and a sign.
//
// A nonzero Float is normalized so the mantissa's top bit is set. Its value
// is
//
//	(-1)^negative · mantissa · 2^(exponent − W)
//
// so the mantissa reads as a fraction in [0.5, 1). No rounding rules are
// defined; conversions truncate.
package widefloat

import (
	"math/big"

	apperrors "github.com/agbru/widemath/internal/errors"
	"github.com/agbru/widemath/wideint"
)

// Float is a binary float with a fixed-width mantissa.
type Float[T wideint.Chunk] struct {
	mantissa wideint.Uint[T]
	exponent int
	negative bool
}

// Float8192 has an 8192-bit mantissa of 64-bit chunks.
type Float8192 = Float[uint64]

// New returns a zero Float whose mantissa is width bits wide.
func New[T wideint.Chunk](width int) (Float[T], error) {
	m, err := wideint.New[T](width)
	if err != nil {
		return Float[T]{}, err
	}
	return Float[T]{mantissa: m}, nil
}

// Frexp normalizes u, shifting its leading one to the top bit. It returns
// the normalized mantissa and the exponent, which equals u's bit length.
// Zero yields (0, 0).
func Frexp[T wideint.Chunk](u wideint.Uint[T]) (wideint.Uint[T], int) {
	n := u.BitLen()
	if n == 0 {
		return u.Zero(), 0
	}
	m, err := u.Lsh(uint(u.Width() - n))
	if err != nil {
		// Shifting by Width - BitLen leaves every set bit in range.
		panic(err)
	}
	return m, n
}

// FromUint returns u as a positive Float with the same mantissa width.
func FromUint[T wideint.Chunk](u wideint.Uint[T]) Float[T] {
	m, e := Frexp(u)
	return Float[T]{mantissa: m, exponent: e}
}

// Mantissa returns a copy of the normalized mantissa.
func (f Float[T]) Mantissa() wideint.Uint[T] { return f.mantissa.Clone() }

// Exponent returns the binary exponent.
func (f Float[T]) Exponent() int { return f.exponent }

// Negative reports whether the sign is negative.
func (f Float[T]) Negative() bool { return f.negative }

// IsZero reports whether the mantissa is zero.
func (f Float[T]) IsZero() bool { return f.mantissa.IsZero() }

// Neg returns f with its sign flipped. The sign of zero is kept positive.
func (f Float[T]) Neg() Float[T] {
	if f.IsZero() {
		return f
	}
	f.negative = !f.negative
	return f
}

// Uint returns the integer part of |f|. Magnitudes of 2^W or more report
// ErrOverflow.
func (f Float[T]) Uint() (wideint.Uint[T], error) {
	w := f.mantissa.Width()
	switch {
	case f.IsZero() || f.exponent <= 0:
		return f.mantissa.Zero(), nil
	case f.exponent > w:
		return wideint.Uint[T]{}, apperrors.NewArithmeticError("float_to_uint", w, apperrors.ErrOverflow)
	}
	return f.mantissa.Rsh(uint(w - f.exponent)), nil
}

// Big returns f as an exact big.Float.
func (f Float[T]) Big() *big.Float {
	w := f.mantissa.Width()
	prec := uint(w)
	if prec == 0 {
		prec = 64
	}
	z := new(big.Float).SetPrec(prec).SetInt(f.mantissa.Big())
	z.SetMantExp(z, f.exponent-w)
	if f.negative {
		z.Neg(z)
	}
	return z
}

// String formats f in %g style with up to 20 significant digits.
func (f Float[T]) String() string {
	return f.Big().Text('g', 20)
}
