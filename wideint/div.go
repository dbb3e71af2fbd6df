package wideint

import (
	"github.com/agbru/widemath/internal/arith"
	apperrors "github.com/agbru/widemath/internal/errors"
)

// DivMod returns the quotient and remainder of x / y, rounding toward
// zero. It reports ErrDivisionByZero if every chunk of y is zero.
func (x Uint[T]) DivMod(y Uint[T]) (q, r Uint[T], err error) {
	x.mustMatch("divmod", y)
	n := arith.Normalized(y.chunks)
	if n == 0 {
		err = apperrors.NewArithmeticError("divmod", x.Width(), apperrors.ErrDivisionByZero)
		return Uint[T]{}, Uint[T]{}, err
	}
	q, r = x.Zero(), x.Zero()

	m := arith.Normalized(x.chunks)
	if x.Cmp(y) == Less {
		copy(r.chunks, x.chunks)
		return q, r, nil
	}
	if n == 1 {
		r.chunks[0] = arith.DivWVW(q.chunks[:m], 0, x.chunks[:m], y.chunks[0])
		return q, r, nil
	}
	divLarge(q.chunks, r.chunks, x.chunks[:m], y.chunks[:n])
	return q, r, nil
}

// DivFloor returns x / y rounded toward zero.
func (x Uint[T]) DivFloor(y Uint[T]) (Uint[T], error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns x mod y.
func (x Uint[T]) Mod(y Uint[T]) (Uint[T], error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// DivAssign sets x to x / y. On error x is left unchanged.
func (x *Uint[T]) DivAssign(y Uint[T]) error {
	q, _, err := x.DivMod(y)
	if err != nil {
		return err
	}
	copy(x.chunks, q.chunks)
	return nil
}

// ModAssign sets x to x mod y. On error x is left unchanged.
func (x *Uint[T]) ModAssign(y Uint[T]) error {
	_, r, err := x.DivMod(y)
	if err != nil {
		return err
	}
	copy(x.chunks, r.chunks)
	return nil
}

// divLarge implements Knuth's algorithm D for a normalized dividend u of m
// words and divisor v of n >= 2 words, with m >= n. The quotient is
// written into q[:m-n+1] and the remainder into r[:n].
func divLarge[T Chunk](q, r, u, v []T) {
	n := len(v)
	m := len(u) - n

	// D1: normalize so the divisor's top bit is set.
	shift := arith.LeadingZeros(v[n-1])
	vn := make([]T, n)
	arith.ShlVU(vn, v, shift)
	un := make([]T, len(u)+1)
	un[len(u)] = arith.ShlVU(un[:len(u)], u, shift)

	qhatv := make([]T, n+1)
	vTop, vNext := vn[n-1], vn[n-2]
	for j := m; j >= 0; j-- {
		// D3: estimate qhat from the top two words, then refine it
		// against the next divisor word.
		qhat := ^T(0)
		if ujn := un[j+n]; ujn != vTop {
			var rhat T
			qhat, rhat = arith.DivWW(ujn, un[j+n-1], vTop)
			x1, x2 := arith.MulWW(qhat, vNext)
			for greaterThan(x1, x2, rhat, un[j+n-2]) {
				qhat--
				prev := rhat
				rhat += vTop
				if rhat < prev {
					break
				}
				x1, x2 = arith.MulWW(qhat, vNext)
			}
		}

		// D4: multiply and subtract.
		qhatv[n] = arith.MulAddVWW(qhatv[:n], vn, qhat, 0)
		if c := arith.SubVV(un[j:j+n+1], un[j:j+n+1], qhatv); c != 0 {
			// D6: qhat was one too large; add the divisor back.
			c := arith.AddVV(un[j:j+n], un[j:j+n], vn)
			un[j+n] += c
			qhat--
		}
		q[j] = qhat
	}

	// D8: unnormalize the remainder.
	arith.ShrVU(r[:n], un[:n], shift)
}

// greaterThan reports whether the double word (x1, x2) exceeds (y1, y2).
func greaterThan[T Chunk](x1, x2, y1, y2 T) bool {
	return x1 > y1 || x1 == y1 && x2 > y2
}
