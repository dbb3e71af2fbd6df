// Package arith provides the word-level carry, borrow, multiply and divide
// primitives that every multi-word operation in this module is built from.
//
// The primitives are generic over the chunk type so that 64-bit chunk
// integers (UInt8192) and 32-bit chunk integers (UInt8192H) share one
// implementation. 64-bit words map onto math/bits intrinsics; 32-bit words
// are widened to uint64.
package arith

import "math/bits"

// Word is the set of chunk types a fixed-width integer may be built from.
type Word interface {
	~uint32 | ~uint64
}

// Bits returns the width of W in bits.
func Bits[W Word]() uint {
	return uint(bits.Len64(uint64(^W(0))))
}

func wide[W Word]() bool {
	return Bits[W]() == 64
}

// AddWW returns x + y + c as a sum word and a carry out of 0 or 1.
// c must be 0 or 1.
func AddWW[W Word](x, y, c W) (sum, carry W) {
	if wide[W]() {
		s, co := bits.Add64(uint64(x), uint64(y), uint64(c))
		return W(s), W(co)
	}
	s := uint64(x) + uint64(y) + uint64(c)
	return W(s), W(s >> 32)
}

// SubWW returns x - y - b as a difference word and a borrow out of 0 or 1.
// b must be 0 or 1.
func SubWW[W Word](x, y, b W) (diff, borrow W) {
	if wide[W]() {
		d, bo := bits.Sub64(uint64(x), uint64(y), uint64(b))
		return W(d), W(bo)
	}
	d := uint64(x) - uint64(y) - uint64(b)
	return W(d), W(d>>32) & 1
}

// MulWW returns the double-word product x * y as (hi, lo).
func MulWW[W Word](x, y W) (hi, lo W) {
	if wide[W]() {
		h, l := bits.Mul64(uint64(x), uint64(y))
		return W(h), W(l)
	}
	p := uint64(x) * uint64(y)
	return W(p >> 32), W(p)
}

// MulAddWWW returns x*y + c as (hi, lo).
func MulAddWWW[W Word](x, y, c W) (hi, lo W) {
	hi, lo = MulWW(x, y)
	var cc W
	lo, cc = AddWW(lo, c, 0)
	return hi + cc, lo
}

// DivWW divides the double word (hi, lo) by y. The quotient must fit in a
// single word, i.e. hi < y; violating that panics like bits.Div64.
func DivWW[W Word](hi, lo, y W) (q, r W) {
	if wide[W]() {
		qq, rr := bits.Div64(uint64(hi), uint64(lo), uint64(y))
		return W(qq), W(rr)
	}
	if hi >= y {
		panic("arith: quotient overflow")
	}
	n := uint64(hi)<<32 | uint64(lo)
	return W(n / uint64(y)), W(n % uint64(y))
}

// LeadingZeros returns the number of leading zero bits in x.
func LeadingZeros[W Word](x W) uint {
	if wide[W]() {
		return uint(bits.LeadingZeros64(uint64(x)))
	}
	return uint(bits.LeadingZeros32(uint32(x)))
}

// TrailingZeros returns the number of trailing zero bits in x; Bits for 0.
func TrailingZeros[W Word](x W) uint {
	if wide[W]() {
		return uint(bits.TrailingZeros64(uint64(x)))
	}
	return uint(bits.TrailingZeros32(uint32(x)))
}

// Len returns the minimum number of bits needed to represent x.
func Len[W Word](x W) uint {
	return Bits[W]() - LeadingZeros(x)
}
