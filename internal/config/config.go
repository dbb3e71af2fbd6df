// Package config resolves runtime settings for the wide-integer packages.
//
// Resolution chain (highest priority first):
//  1. Options passed explicitly by the caller (e.g. fixedpoint.WithMaxPrecision)
//  2. Environment variables (WIDEMATH_MAX_PRECISION, etc.)
//  3. Static defaults (this file)
package config

import "github.com/rs/zerolog"

// EnvPrefix is prepended to every environment variable key.
const EnvPrefix = "WIDEMATH_"

const (
	// DefaultMaxPrecision is the number of decimal digits (or binary places)
	// the fixed-point converter searches before settling for an approximation.
	DefaultMaxPrecision = 16

	// MaxPrecisionLimit bounds configured precision. 10^2466 is the largest
	// power of ten that fits in 8192 bits, so a larger search can only overflow.
	MaxPrecisionLimit = 2466

	// DefaultPropertyTests is the number of successful cases each
	// property-based test requires.
	DefaultPropertyTests = 100
)

// Settings holds the resolved configuration.
type Settings struct {
	// MaxPrecision is the fixed-point converter search limit.
	MaxPrecision int
	// LogLevel filters converter log output.
	LogLevel zerolog.Level
	// PropertyTests is the gopter MinSuccessfulTests value used by the
	// property-based test suites.
	PropertyTests int
}

// Default returns the static defaults.
func Default() Settings {
	return Settings{
		MaxPrecision:  DefaultMaxPrecision,
		LogLevel:      zerolog.InfoLevel,
		PropertyTests: DefaultPropertyTests,
	}
}

// Load resolves settings from the process environment.
func Load() (Settings, error) {
	return LoadFrom(lookupEnv)
}

// LoadFrom resolves settings using lookup in place of the process
// environment. Keys passed to lookup include EnvPrefix.
func LoadFrom(lookup func(string) (string, bool)) (Settings, error) {
	s := Default()
	if err := applyEnvOverrides(&s, lookup); err != nil {
		return Settings{}, err
	}
	return s, nil
}
