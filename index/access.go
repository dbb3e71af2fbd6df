package index

import (
	"math/bits"

	apperrors "github.com/agbru/widemath/internal/errors"
	"github.com/agbru/widemath/wideint"
)

// Unit is the value read through a descriptor. Scalar modes (bit through
// qword) fill Value; sub-integer modes fill Sub with an independent copy.
type Unit[T wideint.Chunk] struct {
	Mode  Mode
	Value uint64
	Sub   wideint.Uint[T]
	// Negative echoes the descriptor's advisory sign flag.
	Negative bool
}

// locate validates d against a store of the given width and returns its
// fields together with the bit position of the addressed unit.
func locate(op string, d Descriptor, width int) (Fields, int, error) {
	if err := d.Validate(); err != nil {
		return Fields{}, 0, err
	}
	f := Decode(d)
	if !f.Mode.Supported() {
		return Fields{}, 0, apperrors.IndexError{Op: op, Descriptor: uint32(d), Kind: apperrors.ErrInvalidArgument}
	}
	limit := f.Mode.UnitCount(width)
	if int(f.Offset) >= limit {
		return Fields{}, 0, apperrors.IndexError{
			Op:         op,
			Descriptor: uint32(d),
			Mode:       f.Mode.String(),
			Offset:     f.Offset,
			Limit:      uint32(limit),
			Kind:       apperrors.ErrOutOfRange,
		}
	}
	return f, int(f.Offset) * f.Mode.UnitBits(), nil
}

func wrongKind(op string, d Descriptor) error {
	return apperrors.IndexError{Op: op, Descriptor: uint32(d), Mode: d.Mode().String(), Offset: d.Offset(), Kind: apperrors.ErrInvalidArgument}
}

// Read returns the unit d addresses in store.
func Read[T wideint.Chunk](store wideint.Uint[T], d Descriptor) (Unit[T], error) {
	f, pos, err := locate("read", d, store.Width())
	if err != nil {
		return Unit[T]{}, err
	}
	u := Unit[T]{Mode: f.Mode, Negative: f.Sign}
	if f.Mode.Scalar() {
		u.Value = readScalar(store, pos, f)
		return u, nil
	}
	u.Sub, err = readSub(store, pos, f)
	return u, err
}

// ReadScalar returns the bit, nybble, byte, word, dword or qword d
// addresses, shifted down to its own width.
func ReadScalar[T wideint.Chunk](store wideint.Uint[T], d Descriptor) (uint64, error) {
	f, pos, err := locate("read", d, store.Width())
	if err != nil {
		return 0, err
	}
	if !f.Mode.Scalar() {
		return 0, wrongKind("read", d)
	}
	return readScalar(store, pos, f), nil
}

// ReadUint returns an independent copy of the sub-integer d addresses.
func ReadUint[T wideint.Chunk](store wideint.Uint[T], d Descriptor) (wideint.Uint[T], error) {
	f, pos, err := locate("read", d, store.Width())
	if err != nil {
		return wideint.Uint[T]{}, err
	}
	if f.Mode.Scalar() {
		return wideint.Uint[T]{}, wrongKind("read", d)
	}
	return readSub(store, pos, f)
}

// Write stores v into the scalar unit d addresses. Values wider than the
// unit are rejected.
func Write[T wideint.Chunk](store *wideint.Uint[T], d Descriptor, v uint64) error {
	f, pos, err := locate("write", d, store.Width())
	if err != nil {
		return err
	}
	if !f.Mode.Scalar() {
		return wrongKind("write", d)
	}
	if v&^unitMask(f.Mode.UnitBits()) != 0 {
		return apperrors.NewValidationError("value", "%#x does not fit in a %s", v, f.Mode)
	}
	if f.Endianness == wideint.BigEndian {
		v = swapBytes(v, f.Mode.UnitBits())
	}

	c := wideint.ChunkBits[T]()
	n := f.Mode.UnitBits()
	if n <= c {
		i, s := pos/c, uint(pos%c)
		m := T(unitMask(n)) << s
		store.SetChunk(i, store.Chunk(i)&^m|T(v)<<s)
		return nil
	}
	for i := 0; i < n/c; i++ {
		store.SetChunk(pos/c+i, T(v>>uint(i*c)))
	}
	return nil
}

// WriteUint stores sub into the sub-integer unit d addresses. sub must be
// exactly as wide as the unit.
func WriteUint[T wideint.Chunk](store *wideint.Uint[T], d Descriptor, sub wideint.Uint[T]) error {
	f, pos, err := locate("write", d, store.Width())
	if err != nil {
		return err
	}
	if f.Mode.Scalar() {
		return wrongKind("write", d)
	}
	n := f.Mode.UnitBits()
	if sub.Width() != n {
		return apperrors.NewValidationError("value", "%d-bit integer written to a %s unit", sub.Width(), f.Mode)
	}
	if f.Endianness == wideint.BigEndian {
		if sub, err = wideint.FromBytes[T](n, sub.Bytes(wideint.BigEndian), wideint.LittleEndian); err != nil {
			return err
		}
	}
	first := pos / wideint.ChunkBits[T]()
	for i := 0; i < sub.Len(); i++ {
		store.SetChunk(first+i, sub.Chunk(i))
	}
	return nil
}

func readScalar[T wideint.Chunk](store wideint.Uint[T], pos int, f Fields) uint64 {
	c := wideint.ChunkBits[T]()
	n := f.Mode.UnitBits()
	var v uint64
	if n <= c {
		v = uint64(store.Chunk(pos/c)>>uint(pos%c)) & unitMask(n)
	} else {
		for i := 0; i < n/c; i++ {
			v |= uint64(store.Chunk(pos/c+i)) << uint(i*c)
		}
	}
	if f.Endianness == wideint.BigEndian {
		v = swapBytes(v, n)
	}
	return v
}

func readSub[T wideint.Chunk](store wideint.Uint[T], pos int, f Fields) (wideint.Uint[T], error) {
	c := wideint.ChunkBits[T]()
	n := f.Mode.UnitBits()
	chunks := make([]T, n/c)
	for i := range chunks {
		chunks[i] = store.Chunk(pos/c + i)
	}
	sub, err := wideint.FromChunks(chunks)
	if err != nil || f.Endianness == wideint.LittleEndian {
		return sub, err
	}
	return wideint.FromBytes[T](n, sub.Bytes(wideint.BigEndian), wideint.LittleEndian)
}

func unitMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(n) - 1
}

// swapBytes reverses the bytes of an n-bit unit. Units of a byte or less
// are returned unchanged.
func swapBytes(v uint64, n int) uint64 {
	switch n {
	case 16:
		return uint64(bits.ReverseBytes16(uint16(v)))
	case 32:
		return uint64(bits.ReverseBytes32(uint32(v)))
	case 64:
		return bits.ReverseBytes64(v)
	}
	return v
}
