package fixedpoint

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/agbru/widemath/internal/config"
	"github.com/agbru/widemath/internal/metrics"
	"github.com/agbru/widemath/wideint"
)

// TestRoundTrip_PropertyBased checks that an exact decimal expansion
// converts back to the same binary fraction, in lowest terms.
func TestRoundTrip_PropertyBased(t *testing.T) {
	s, err := config.Load()
	require.NoError(t, err)
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = s.PropertyTests
	properties := gopter.NewProperties(parameters)

	c, err := NewConverter[uint64](WithMaxPrecision(64), WithRecorder(metrics.NopRecorder{}))
	require.NoError(t, err)

	properties.Property("ToBinaryDigits inverts an exact ToDecimal", prop.ForAll(
		func(v uint64, bitCount int) bool {
			encoded, _ := wideint.FromUint64[uint64](1024, v)
			if encoded.BitLen() > bitCount {
				encoded = encoded.Rsh(uint(encoded.BitLen() - bitCount))
			}
			dec, err := c.ToDecimal(encoded, bitCount)
			if err != nil || !dec.Exact {
				return false
			}
			bin, err := c.ToBinaryDigits(dec.Value, dec.Count)
			if err != nil || !bin.Exact {
				return false
			}
			if encoded.IsZero() {
				return bin.Value.IsZero()
			}
			// The inverse finds the shortest fraction, so restore the
			// trailing zero bits before comparing.
			back, err := bin.Value.Lsh(uint(bitCount - bin.Count))
			return err == nil && back.Equal(encoded)
		},
		gen.UInt64(), gen.IntRange(1, 64),
	))

	properties.TestingRun(t)
}
