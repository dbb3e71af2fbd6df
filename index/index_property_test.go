package index

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/agbru/widemath/internal/config"
	"github.com/agbru/widemath/wideint"
)

func propertyParameters(t *testing.T) *gopter.TestParameters {
	t.Helper()
	s, err := config.Load()
	require.NoError(t, err)
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = s.PropertyTests
	return parameters
}

// TestDescriptor_PropertyBased checks the encode/decode round trip and the
// scalar write/read round trip over random modes, offsets and flags.
func TestDescriptor_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters(t))

	properties.Property("Decode(Encode(f)) == f for masked offsets", prop.ForAll(
		func(mode uint8, raw uint16, sign, chunk, bigEndian bool) bool {
			m := Mode(mode)
			offset := uint32(raw) & m.MaxOffset()

			var opts []Option
			if sign {
				opts = append(opts, WithSign())
			}
			if chunk {
				opts = append(opts, WithChunkSelect())
			}
			order := wideint.LittleEndian
			if bigEndian {
				opts = append(opts, WithBigEndian())
				order = wideint.BigEndian
			}

			d, err := Encode(m, offset, opts...)
			if err != nil || d.Validate() != nil {
				return false
			}
			return Decode(d) == Fields{Mode: m, Sign: sign, ChunkSelect: chunk, Endianness: order, Offset: offset}
		},
		gen.UInt8Range(0, uint8(MaxMode)), gen.UInt16(), gen.Bool(), gen.Bool(), gen.Bool(),
	))

	properties.Property("Encode rejects offsets outside the mask", prop.ForAll(
		func(mode uint8, raw uint16) bool {
			m := Mode(mode)
			_, err := Encode(m, uint32(raw))
			fits := uint32(raw) <= m.MaxOffset()
			return fits == (err == nil)
		},
		gen.UInt8Range(0, 15), gen.UInt16(),
	))

	properties.Property("scalar Write then Read returns the value", prop.ForAll(
		func(mode uint8, raw uint16, v uint64, bigEndian bool) bool {
			m := Mode(mode)
			offset := uint32(raw) % uint32(m.UnitCount(wideint.Width8192))
			v &= unitMask(m.UnitBits())

			var opts []Option
			if bigEndian {
				opts = append(opts, WithBigEndian())
			}
			d := MustEncode(m, offset, opts...)
			store := wideint.NewUInt8192()
			if err := Write(&store, d, v); err != nil {
				return false
			}
			got, err := ReadScalar(store, d)
			return err == nil && got == v
		},
		gen.UInt8Range(0, uint8(ModeQword)), gen.UInt16(), gen.UInt64(), gen.Bool(),
	))

	properties.TestingRun(t)
}
