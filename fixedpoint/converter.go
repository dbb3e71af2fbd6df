// Package fixedpoint converts between binary fixed-point fractions and
// base-10 digit strings held in wideint integers.
//
// A binary fraction of b bits is an integer x standing for x / 2^b, so bit
// i counted from the most significant end weighs 2^-(i+1). Its decimal
// form is a digit integer v with a digit count d, standing for v / 10^d.
// The count is part of the result because it carries leading zeros: 0.05
// is (5, 2).
package fixedpoint

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/agbru/widemath/internal/config"
	apperrors "github.com/agbru/widemath/internal/errors"
	"github.com/agbru/widemath/internal/logging"
	"github.com/agbru/widemath/internal/metrics"
	"github.com/agbru/widemath/wideint"
)

// Result is the outcome of a conversion.
type Result[T wideint.Chunk] struct {
	// Value is the converted integer: decimal digits or a binary fraction.
	Value wideint.Uint[T]
	// Count is the number of decimal digits or fraction bits in Value. It
	// is authoritative for re-expansion even when Exact is false.
	Count int
	// Exact reports whether Value / base^Count equals the input exactly.
	// Otherwise Value is truncated at the maximum precision.
	Exact bool
}

type options struct {
	maxPrecision int
	logger       logging.Logger
	recorder     metrics.Recorder
	registerer   prometheus.Registerer
}

// Option configures a Converter.
type Option func(*options)

// WithMaxPrecision bounds the search to n digits or bits.
func WithMaxPrecision(n int) Option {
	return func(o *options) { o.maxPrecision = n }
}

// WithLogger sends conversion diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = logging.NewZerologAdapter(l) }
}

// WithRegisterer exports conversion metrics to reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// WithRecorder sends observations to r instead of Prometheus.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

// Converter performs fixed-point conversions on integers of chunk type T.
// A Converter holds no mutable state and may be shared between goroutines.
type Converter[T wideint.Chunk] struct {
	maxPrecision int
	logger       logging.Logger
	recorder     metrics.Recorder
}

// NewConverter returns a Converter configured from the WIDEMATH_
// environment and then opts.
func NewConverter[T wideint.Chunk](opts ...Option) (*Converter[T], error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	o := options{
		maxPrecision: settings.MaxPrecision,
		logger:       logging.NewDefaultLogger().WithLevel(settings.LogLevel),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return newConverter[T](o)
}

func newConverter[T wideint.Chunk](o options) (*Converter[T], error) {
	if o.maxPrecision < 1 || o.maxPrecision > config.MaxPrecisionLimit {
		return nil, apperrors.NewValidationError("max_precision", "%d is outside [1, %d]", o.maxPrecision, config.MaxPrecisionLimit)
	}
	if o.logger == nil {
		o.logger = logging.NewNopLogger()
	}
	if o.recorder == nil {
		o.recorder = metrics.NopRecorder{}
		if o.registerer != nil {
			rec, err := metrics.NewPrometheusRecorder(o.registerer)
			if err != nil {
				return nil, apperrors.WrapError(err, "registering fixedpoint metrics")
			}
			o.recorder = rec
		}
	}
	return &Converter[T]{maxPrecision: o.maxPrecision, logger: o.logger, recorder: o.recorder}, nil
}

// MaxPrecision returns the search limit.
func (c *Converter[T]) MaxPrecision() int {
	return c.maxPrecision
}

// ToDecimal converts the binary fraction encoded / 2^bitCount to decimal
// digits. It searches digit counts d = 1..MaxPrecision for the first d at
// which encoded·10^d is divisible by 2^bitCount. Zero converts to (0, 1).
func (c *Converter[T]) ToDecimal(encoded wideint.Uint[T], bitCount int) (Result[T], error) {
	res, err := c.toDecimal(encoded, bitCount)
	return res, c.finish(metrics.DirectionToDecimal, res, err)
}

func (c *Converter[T]) toDecimal(encoded wideint.Uint[T], bitCount int) (Result[T], error) {
	if bitCount < 1 || bitCount > encoded.Width() {
		return Result[T]{}, apperrors.NewValidationError("bit_count", "%d is outside [1, %d]", bitCount, encoded.Width())
	}
	if encoded.BitLen() > bitCount {
		return Result[T]{}, apperrors.NewValidationError("encoded", "%d-bit value does not fit a %d-bit fraction", encoded.BitLen(), bitCount)
	}
	if encoded.IsZero() {
		return Result[T]{Value: encoded.Zero(), Count: 1, Exact: true}, nil
	}

	ten, err := wideint.FromUint64[T](encoded.Width(), 10)
	if err != nil {
		return Result[T]{}, err
	}
	num := encoded
	for d := 1; d <= c.maxPrecision; d++ {
		if num, err = num.Mul(ten); err != nil {
			return Result[T]{}, err
		}
		if num.TrailingZeros() >= bitCount {
			return Result[T]{Value: num.Rsh(uint(bitCount)), Count: d, Exact: true}, nil
		}
	}
	return Result[T]{Value: num.Rsh(uint(bitCount)), Count: c.maxPrecision}, nil
}

// ToBinary converts decimal digits to a binary fraction, taking the digit
// count from the decimal length of digits.
func (c *Converter[T]) ToBinary(digits wideint.Uint[T]) (Result[T], error) {
	if digits.IsZero() {
		res := Result[T]{Value: digits.Zero(), Count: 1, Exact: true}
		return res, c.finish(metrics.DirectionToBinary, res, nil)
	}
	return c.ToBinaryDigits(digits, len(digits.String()))
}

// ToBinaryDigits converts the decimal fraction digits / 10^count to a
// binary fraction. It searches bit counts b = 1..MaxPrecision for the first
// b at which digits·2^b is divisible by 10^count. An explicit count keeps
// leading zeros: (5, 2) is 0.05.
func (c *Converter[T]) ToBinaryDigits(digits wideint.Uint[T], count int) (Result[T], error) {
	res, err := c.toBinary(digits, count)
	return res, c.finish(metrics.DirectionToBinary, res, err)
}

func (c *Converter[T]) toBinary(digits wideint.Uint[T], count int) (Result[T], error) {
	if count < 1 {
		return Result[T]{}, apperrors.NewValidationError("count", "digit count %d must be positive", count)
	}
	if digits.IsZero() {
		return Result[T]{Value: digits.Zero(), Count: 1, Exact: true}, nil
	}
	scale, err := wideint.Pow10[T](digits.Width(), uint64(count))
	if err != nil {
		return Result[T]{}, err
	}
	if !digits.Less(scale) {
		return Result[T]{}, apperrors.NewValidationError("digits", "%v has more than %d digits", digits, count)
	}

	var num wideint.Uint[T]
	for b := 1; b <= c.maxPrecision; b++ {
		if num, err = digits.Lsh(uint(b)); err != nil {
			return Result[T]{}, err
		}
		q, r, err := num.DivMod(scale)
		if err != nil {
			return Result[T]{}, err
		}
		if r.IsZero() {
			return Result[T]{Value: q, Count: b, Exact: true}, nil
		}
	}
	q, err := num.DivFloor(scale)
	if err != nil {
		return Result[T]{}, err
	}
	return Result[T]{Value: q, Count: c.maxPrecision}, nil
}

// finish records the outcome of one conversion and returns err unchanged.
func (c *Converter[T]) finish(direction string, res Result[T], err error) error {
	if err != nil {
		c.recorder.ObserveFailure(direction, apperrors.KindName(err))
		c.logger.Debug("fixed-point conversion failed",
			logging.String("direction", direction),
			logging.Err(err),
		)
		return err
	}
	c.recorder.ObserveConversion(direction, res.Exact, res.Count)
	if !res.Exact {
		c.logger.Debug("fixed-point conversion truncated",
			logging.String("direction", direction),
			logging.Int("precision", res.Count),
		)
	}
	return nil
}

// BinaryFractionToDecimal converts encoded, read as a fraction over its own
// bit length, to decimal digits and a digit count, searching up to
// maxPrecision digits.
func BinaryFractionToDecimal[T wideint.Chunk](encoded wideint.Uint[T], maxPrecision int) (wideint.Uint[T], int, error) {
	c, err := newConverter[T](options{maxPrecision: maxPrecision})
	if err != nil {
		return wideint.Uint[T]{}, 0, err
	}
	bitCount := encoded.BitLen()
	if bitCount == 0 {
		bitCount = 1
	}
	res, err := c.ToDecimal(encoded, bitCount)
	return res.Value, res.Count, err
}

// DecimalToBinaryFraction converts digits, scaled by 10 to the power of its
// decimal length, to a binary fraction and a bit count, searching up to
// maxPrecision bits.
func DecimalToBinaryFraction[T wideint.Chunk](digits wideint.Uint[T], maxPrecision int) (wideint.Uint[T], int, error) {
	c, err := newConverter[T](options{maxPrecision: maxPrecision})
	if err != nil {
		return wideint.Uint[T]{}, 0, err
	}
	res, err := c.ToBinary(digits)
	return res.Value, res.Count, err
}
