// Package wideint implements fixed-width unsigned integers stored as an
// array of machine-word chunks.
//
// A Uint[T] of width W holds exactly W / C chunks of C bits each (C is 32
// for uint32 chunks, 64 for uint64 chunks), least significant chunk first:
//
//	value = Σ chunk[i] · 2^(C·i)
//
// The flagship instantiation is UInt8192, an 8192-bit integer of 128
// 64-bit chunks. Other widths are created with New.
//
// Arithmetic never silently truncates. Add, Mul, Exp and Lsh report
// ErrOverflow when the result does not fit in W bits, division by a zero
// value reports ErrDivisionByZero. The one deliberate exception is Sub,
// which wraps modulo 2^W with the borrow carried through every chunk; use
// CheckedSub to reject a negative difference instead.
//
// Arithmetic that produces a new integer allocates fresh chunks. The
// *Assign forms mutate their receiver only on success. Assigning a Uint
// value shares its chunks; use Clone for an independent copy.
//
// Both operands of a binary operation must have the same width. Mixing
// widths is a programming error and panics, as does Chunk with an index
// outside [0, Len()).
package wideint
