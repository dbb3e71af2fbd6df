package wideint

import "github.com/agbru/widemath/internal/arith"

// Lsh returns x << n. It reports ErrOverflow if any set bit would be
// shifted past the top of the width.
func (x Uint[T]) Lsh(n uint) (Uint[T], error) {
	z := x.Zero()
	if x.IsZero() {
		return z, nil
	}
	if n >= uint(x.Width()) || uint(x.BitLen())+n > uint(x.Width()) {
		return Uint[T]{}, overflow("lsh", x.Width())
	}
	c := uint(ChunkBits[T]())
	ws, bs := int(n/c), n%c
	arith.ShlVU(z.chunks[ws:], x.chunks[:len(x.chunks)-ws], bs)
	return z, nil
}

// Rsh returns x >> n. Shifting by the width or more yields zero.
func (x Uint[T]) Rsh(n uint) Uint[T] {
	z := x.Zero()
	if n >= uint(x.Width()) {
		return z
	}
	c := uint(ChunkBits[T]())
	ws, bs := int(n/c), n%c
	arith.ShrVU(z.chunks[:len(x.chunks)-ws], x.chunks[ws:], bs)
	return z
}

// And returns x & y.
func (x Uint[T]) And(y Uint[T]) Uint[T] {
	x.mustMatch("and", y)
	z := x.Zero()
	for i := range z.chunks {
		z.chunks[i] = x.chunks[i] & y.chunks[i]
	}
	return z
}

// Or returns x | y.
func (x Uint[T]) Or(y Uint[T]) Uint[T] {
	x.mustMatch("or", y)
	z := x.Zero()
	for i := range z.chunks {
		z.chunks[i] = x.chunks[i] | y.chunks[i]
	}
	return z
}

// Xor returns x ^ y.
func (x Uint[T]) Xor(y Uint[T]) Uint[T] {
	x.mustMatch("xor", y)
	z := x.Zero()
	for i := range z.chunks {
		z.chunks[i] = x.chunks[i] ^ y.chunks[i]
	}
	return z
}

// Not returns the bitwise complement of x within its width.
func (x Uint[T]) Not() Uint[T] {
	z := x.Zero()
	for i := range z.chunks {
		z.chunks[i] = ^x.chunks[i]
	}
	return z
}
