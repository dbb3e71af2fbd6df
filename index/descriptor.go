package index

import (
	"fmt"

	apperrors "github.com/agbru/widemath/internal/errors"
	"github.com/agbru/widemath/wideint"
)

// Bit layout of a version 1 descriptor, MSB first.
const (
	versionBit     = 1 << 31
	modeShift      = 27
	modeField      = 0xF
	reservedField  = 0xFF << 19
	signBit        = 1 << 18
	chunkSelectBit = 1 << 17
	endianBit      = 1 << 16
	offsetBits     = 16
	offsetField    = 1<<offsetBits - 1
)

// Descriptor is a packed 32-bit locus of one unit inside an integer. Build
// descriptors with Encode; a hand-made value is only trusted after
// Validate.
type Descriptor uint32

// Fields is the unpacked content of a descriptor.
type Fields struct {
	Version     uint8
	Mode        Mode
	Sign        bool
	ChunkSelect bool
	Endianness  wideint.Endianness
	Offset      uint32
}

type encodeOptions struct {
	sign        bool
	chunkSelect bool
	bigEndian   bool
}

// Option configures Encode.
type Option func(*encodeOptions)

// WithSign sets the advisory sign flag.
func WithSign() Option {
	return func(o *encodeOptions) { o.sign = true }
}

// WithChunkSelect sets the advisory chunk-select flag.
func WithChunkSelect() Option {
	return func(o *encodeOptions) { o.chunkSelect = true }
}

// WithBigEndian clears the little-endian flag, so the addressed unit is
// byte-reversed on read and write.
func WithBigEndian() Option {
	return func(o *encodeOptions) { o.bigEndian = true }
}

// Encode packs a descriptor. The mode is clamped to its 4-bit field. An
// offset that does not fit under the mode's offset mask is rejected with
// ErrInvalidArgument rather than clipped.
func Encode(mode Mode, offset uint32, opts ...Option) (Descriptor, error) {
	var o encodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	mode &= modeField

	if offset > offsetField || offset&mode.offsetMask() != 0 {
		return 0, apperrors.IndexError{
			Op:     "encode",
			Mode:   mode.String(),
			Offset: offset,
			Limit:  mode.MaxOffset() + 1,
			Kind:   apperrors.ErrInvalidArgument,
		}
	}

	d := uint32(mode)<<modeShift | offset
	if o.sign {
		d |= signBit
	}
	if o.chunkSelect {
		d |= chunkSelectBit
	}
	if !o.bigEndian {
		d |= endianBit
	}
	return Descriptor(d), nil
}

// MustEncode is like Encode but panics on error.
func MustEncode(mode Mode, offset uint32, opts ...Option) Descriptor {
	d, err := Encode(mode, offset, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Decode extracts the fields of d without validating them.
func Decode(d Descriptor) Fields {
	f := Fields{
		Mode:        d.Mode(),
		Sign:        uint32(d)&signBit != 0,
		ChunkSelect: uint32(d)&chunkSelectBit != 0,
		Endianness:  wideint.BigEndian,
		Offset:      d.Offset(),
	}
	if uint32(d)&versionBit != 0 {
		f.Version = 1
	}
	if uint32(d)&endianBit != 0 {
		f.Endianness = wideint.LittleEndian
	}
	return f
}

// Mode returns the granularity field.
func (d Descriptor) Mode() Mode {
	return Mode(uint32(d) >> modeShift & modeField)
}

// Offset returns the raw offset field.
func (d Descriptor) Offset() uint32 {
	return uint32(d) & offsetField
}

// Validate checks the fields every version 1 reader relies on: the version
// bit, the reserved bits and the mode's offset mask.
func (d Descriptor) Validate() error {
	raw := uint32(d)
	switch {
	case raw&versionBit != 0:
		return apperrors.IndexError{Op: "validate", Descriptor: raw, Kind: apperrors.ErrUnsupportedVersion}
	case raw&reservedField != 0:
		return apperrors.IndexError{Op: "validate", Descriptor: raw, Kind: apperrors.ErrInvalidArgument}
	}
	m := d.Mode()
	if d.Offset()&m.offsetMask() != 0 {
		return apperrors.IndexError{
			Op:         "validate",
			Descriptor: raw,
			Mode:       m.String(),
			Offset:     d.Offset(),
			Limit:      m.MaxOffset() + 1,
			Kind:       apperrors.ErrOutOfRange,
		}
	}
	return nil
}

func (d Descriptor) String() string {
	f := Decode(d)
	s := fmt.Sprintf("%s[%d]", f.Mode, f.Offset)
	if f.Endianness == wideint.BigEndian {
		s += " be"
	}
	if f.Sign {
		s += " signed"
	}
	if f.ChunkSelect {
		s += " chunk-select"
	}
	if f.Version != 0 {
		s += fmt.Sprintf(" v%d", f.Version+1)
	}
	return s
}
