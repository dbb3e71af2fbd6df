package wideint

import (
	"fmt"

	"github.com/agbru/widemath/internal/arith"
	apperrors "github.com/agbru/widemath/internal/errors"
)

// Chunk is the set of word types a Uint may be built from.
type Chunk interface {
	~uint32 | ~uint64
}

// Error kinds reported by this package.
var (
	ErrOverflow        = apperrors.ErrOverflow
	ErrDivisionByZero  = apperrors.ErrDivisionByZero
	ErrInvalidArgument = apperrors.ErrInvalidArgument
)

// Width8192 is the width of the flagship integer type.
const Width8192 = 8192

// UInt8192 is the 8192-bit integer over 64-bit chunks.
type UInt8192 = Uint[uint64]

// Uint is a fixed-width unsigned integer. The zero value has width 0 and
// is only useful as a placeholder; construct values with New or one of the
// From functions.
type Uint[T Chunk] struct {
	chunks []T
}

// ChunkBits returns C, the width of one chunk of T in bits.
func ChunkBits[T Chunk]() int {
	return int(arith.Bits[T]())
}

// New returns a zero Uint of the given width in bits. The width must be a
// positive multiple of ChunkBits[T].
func New[T Chunk](width int) (Uint[T], error) {
	c := ChunkBits[T]()
	if width <= 0 || width%c != 0 {
		return Uint[T]{}, apperrors.NewValidationError("width", "%d is not a positive multiple of %d", width, c)
	}
	return Uint[T]{chunks: make([]T, width/c)}, nil
}

// MustNew is like New but panics on an invalid width. It is intended for
// widths fixed at compile time.
func MustNew[T Chunk](width int) Uint[T] {
	u, err := New[T](width)
	if err != nil {
		panic(err)
	}
	return u
}

// NewUInt8192 returns a zero UInt8192.
func NewUInt8192() UInt8192 {
	return MustNew[uint64](Width8192)
}

// FromUint64 returns a Uint of the given width holding v.
func FromUint64[T Chunk](width int, v uint64) (Uint[T], error) {
	u, err := New[T](width)
	if err != nil {
		return u, err
	}
	c := ChunkBits[T]()
	for i := 0; i < len(u.chunks) && v != 0; i++ {
		u.chunks[i] = T(v)
		if c == 64 {
			v = 0
		} else {
			v >>= uint(c)
		}
	}
	if v != 0 {
		return Uint[T]{}, overflow("from_uint64", width)
	}
	return u, nil
}

// FromChunks returns a Uint holding a copy of chunks, least significant
// first. The width is len(chunks) * ChunkBits[T].
func FromChunks[T Chunk](chunks []T) (Uint[T], error) {
	u, err := New[T](len(chunks) * ChunkBits[T]())
	if err != nil {
		return u, err
	}
	copy(u.chunks, chunks)
	return u, nil
}

// Width returns the width in bits.
func (x Uint[T]) Width() int {
	return len(x.chunks) * ChunkBits[T]()
}

// Len returns the number of chunks.
func (x Uint[T]) Len() int {
	return len(x.chunks)
}

// Chunk returns chunk i, least significant first.
func (x Uint[T]) Chunk(i int) T {
	return x.chunks[i]
}

// SetChunk replaces chunk i.
func (x *Uint[T]) SetChunk(i int, v T) {
	x.chunks[i] = v
}

// Chunks returns a copy of the chunks, least significant first.
func (x Uint[T]) Chunks() []T {
	out := make([]T, len(x.chunks))
	copy(out, x.chunks)
	return out
}

// Clone returns an independent copy of x.
func (x Uint[T]) Clone() Uint[T] {
	return Uint[T]{chunks: x.Chunks()}
}

// Zero returns a zero Uint with the width of x.
func (x Uint[T]) Zero() Uint[T] {
	return Uint[T]{chunks: make([]T, len(x.chunks))}
}

// One returns the value 1 with the width of x.
func (x Uint[T]) One() Uint[T] {
	z := x.Zero()
	if len(z.chunks) > 0 {
		z.chunks[0] = 1
	}
	return z
}

// IsZero reports whether every chunk is zero.
func (x Uint[T]) IsZero() bool {
	return arith.Normalized(x.chunks) == 0
}

// BitLen returns the number of bits needed to represent x; 0 for zero.
func (x Uint[T]) BitLen() int {
	n := arith.Normalized(x.chunks)
	if n == 0 {
		return 0
	}
	return (n-1)*ChunkBits[T]() + int(arith.Len(x.chunks[n-1]))
}

// TrailingZeros returns the number of trailing zero bits; Width for zero.
func (x Uint[T]) TrailingZeros() int {
	c := ChunkBits[T]()
	for i, w := range x.chunks {
		if w != 0 {
			return i*c + int(arith.TrailingZeros(w))
		}
	}
	return x.Width()
}

// Bit returns bit i of x, which must be in [0, Width()).
func (x Uint[T]) Bit(i int) uint {
	c := ChunkBits[T]()
	return uint(x.chunks[i/c]>>uint(i%c)) & 1
}

// Uint64 returns the low 64 bits of x and whether x fits in a uint64.
func (x Uint[T]) Uint64() (uint64, bool) {
	c := ChunkBits[T]()
	per := 64 / c
	var v uint64
	for i := 0; i < per && i < len(x.chunks); i++ {
		v |= uint64(x.chunks[i]) << uint(i*c)
	}
	return v, arith.Normalized(x.chunks) <= per
}

// mustMatch panics if x and y differ in width.
func (x Uint[T]) mustMatch(op string, y Uint[T]) {
	if len(x.chunks) != len(y.chunks) {
		panic(fmt.Sprintf("wideint: %s: width mismatch (%d vs %d bits)", op, x.Width(), y.Width()))
	}
}

func overflow(op string, width int) error {
	return apperrors.NewArithmeticError(op, width, apperrors.ErrOverflow)
}
