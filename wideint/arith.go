package wideint

import (
	"github.com/agbru/widemath/internal/arith"
)

// Add returns x + y. It reports ErrOverflow if the carry escapes the most
// significant chunk.
func (x Uint[T]) Add(y Uint[T]) (Uint[T], error) {
	x.mustMatch("add", y)
	z := x.Zero()
	if c := arith.AddVV(z.chunks, x.chunks, y.chunks); c != 0 {
		return Uint[T]{}, overflow("add", x.Width())
	}
	return z, nil
}

// AddAssign sets x to x + y. On error x is left unchanged.
func (x *Uint[T]) AddAssign(y Uint[T]) error {
	z, err := x.Add(y)
	if err != nil {
		return err
	}
	copy(x.chunks, z.chunks)
	return nil
}

// Sub returns x - y modulo 2^W. The borrow is carried through every chunk,
// so 0 - 1 yields the all-ones value.
func (x Uint[T]) Sub(y Uint[T]) Uint[T] {
	x.mustMatch("sub", y)
	z := x.Zero()
	arith.SubVV(z.chunks, x.chunks, y.chunks)
	return z
}

// SubAssign sets x to x - y modulo 2^W.
func (x *Uint[T]) SubAssign(y Uint[T]) {
	x.mustMatch("sub", y)
	arith.SubVV(x.chunks, x.chunks, y.chunks)
}

// CheckedSub returns x - y, or ErrOverflow if y > x.
func (x Uint[T]) CheckedSub(y Uint[T]) (Uint[T], error) {
	x.mustMatch("checked_sub", y)
	z := x.Zero()
	if b := arith.SubVV(z.chunks, x.chunks, y.chunks); b != 0 {
		return Uint[T]{}, overflow("checked_sub", x.Width())
	}
	return z, nil
}

// Mul returns x * y. The full double-width product is formed and any
// nonzero chunk above the width is reported as ErrOverflow.
func (x Uint[T]) Mul(y Uint[T]) (Uint[T], error) {
	x.mustMatch("mul", y)
	n := len(x.chunks)
	xn := arith.Normalized(x.chunks)
	yn := arith.Normalized(y.chunks)
	z := x.Zero()
	if xn == 0 || yn == 0 {
		return z, nil
	}
	if xn+yn-1 > n {
		return Uint[T]{}, overflow("mul", x.Width())
	}

	prod := make([]T, xn+yn)
	for i, d := range y.chunks[:yn] {
		if d != 0 {
			prod[i+xn] = arith.AddMulVVW(prod[i:i+xn], x.chunks[:xn], d)
		}
	}
	if arith.Normalized(prod) > n {
		return Uint[T]{}, overflow("mul", x.Width())
	}
	copy(z.chunks, prod)
	return z, nil
}

// MulAssign sets x to x * y. On error x is left unchanged.
func (x *Uint[T]) MulAssign(y Uint[T]) error {
	z, err := x.Mul(y)
	if err != nil {
		return err
	}
	copy(x.chunks, z.chunks)
	return nil
}

// MulUint64 returns x * v.
func (x Uint[T]) MulUint64(v uint64) (Uint[T], error) {
	y, err := FromUint64[T](x.Width(), v)
	if err != nil {
		return Uint[T]{}, err
	}
	return x.Mul(y)
}

// Exp returns x**e by left-to-right square-and-multiply. x**0 is 1.
// Intermediate values never exceed the final result, so the first overflow
// seen is the result's.
func (x Uint[T]) Exp(e uint64) (Uint[T], error) {
	z := x.One()
	if len(z.chunks) == 0 {
		return z, nil
	}
	for i := 63; i >= 0; i-- {
		var err error
		if z, err = z.Mul(z); err != nil {
			return Uint[T]{}, overflow("exp", x.Width())
		}
		if e>>uint(i)&1 == 1 {
			if z, err = z.Mul(x); err != nil {
				return Uint[T]{}, overflow("exp", x.Width())
			}
		}
	}
	return z, nil
}

// Pow10 returns 10**e at the given width.
func Pow10[T Chunk](width int, e uint64) (Uint[T], error) {
	ten, err := FromUint64[T](width, 10)
	if err != nil {
		return Uint[T]{}, err
	}
	return ten.Exp(e)
}
