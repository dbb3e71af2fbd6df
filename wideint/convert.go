package wideint

import (
	"encoding/binary"
	"math/big"

	apperrors "github.com/agbru/widemath/internal/errors"
)

// Endianness selects the byte order of a serialized integer.
type Endianness int

const (
	LittleEndian Endianness = iota
	BigEndian
)

func (e Endianness) String() string {
	if e == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// Bytes returns the W/8-byte image of x in the given order. The
// little-endian image is the chunks in index order, each chunk written
// little-endian; the big-endian image is its exact reverse.
func (x Uint[T]) Bytes(order Endianness) []byte {
	c := ChunkBits[T]() / 8
	buf := make([]byte, len(x.chunks)*c)
	for i, w := range x.chunks {
		if c == 8 {
			binary.LittleEndian.PutUint64(buf[i*c:], uint64(w))
		} else {
			binary.LittleEndian.PutUint32(buf[i*c:], uint32(w))
		}
	}
	if order == BigEndian {
		reverse(buf)
	}
	return buf
}

// FromBytes decodes a Uint of the given width from exactly width/8 bytes.
func FromBytes[T Chunk](width int, b []byte, order Endianness) (Uint[T], error) {
	u, err := New[T](width)
	if err != nil {
		return u, err
	}
	if len(b) != width/8 {
		return Uint[T]{}, apperrors.NewValidationError("bytes", "got %d bytes, want %d for a %d-bit integer", len(b), width/8, width)
	}
	buf := b
	if order == BigEndian {
		buf = make([]byte, len(b))
		copy(buf, b)
		reverse(buf)
	}
	c := ChunkBits[T]() / 8
	for i := range u.chunks {
		if c == 8 {
			u.chunks[i] = T(binary.LittleEndian.Uint64(buf[i*c:]))
		} else {
			u.chunks[i] = T(binary.LittleEndian.Uint32(buf[i*c:]))
		}
	}
	return u, nil
}

// Big returns x as a math/big integer.
func (x Uint[T]) Big() *big.Int {
	return new(big.Int).SetBytes(x.Bytes(BigEndian))
}

// FromBig converts a non-negative big.Int that fits in width bits.
func FromBig[T Chunk](width int, v *big.Int) (Uint[T], error) {
	if _, err := New[T](width); err != nil {
		return Uint[T]{}, err
	}
	if v.Sign() < 0 {
		return Uint[T]{}, apperrors.NewValidationError("value", "%v is negative", v)
	}
	if v.BitLen() > width {
		return Uint[T]{}, overflow("from_big", width)
	}
	return FromBytes[T](width, v.FillBytes(make([]byte, width/8)), BigEndian)
}

// Parse reads a non-negative integer literal. The base prefixes accepted by
// big.Int.SetString with base 0 (0x, 0o, 0b) are honored.
func Parse[T Chunk](width int, s string) (Uint[T], error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return Uint[T]{}, apperrors.NewValidationError("literal", "cannot parse %q", s)
	}
	return FromBig[T](width, v)
}

// String returns x in base 10.
func (x Uint[T]) String() string {
	return x.Big().String()
}

// Text returns x in the given base, 2 through 62.
func (x Uint[T]) Text(base int) string {
	return x.Big().Text(base)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
