// This file contains environment variable utilities for configuration override.

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	apperrors "github.com/agbru/widemath/internal/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// lookupEnv reads a variable from the process environment, treating an empty
// value as unset.
func lookupEnv(key string) (string, bool) {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return "", false
	}
	return val, true
}

// parsePositiveInt parses val as an int in [1, limit].
func parsePositiveInt(key, val string, limit int) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return 0, apperrors.NewConfigError("invalid value %q for %s%s: not an integer", val, EnvPrefix, key)
	}
	if parsed < 1 || parsed > limit {
		return 0, apperrors.NewConfigError("invalid value %d for %s%s: must be in [1, %d]", parsed, EnvPrefix, key, limit)
	}
	return parsed, nil
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the WIDEMATH_ prefix) to a function
// that validates and applies the env value.
type envOverride struct {
	envKey string
	apply  func(*Settings, string) error
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	{"MAX_PRECISION", func(s *Settings, v string) error {
		parsed, err := parsePositiveInt("MAX_PRECISION", v, MaxPrecisionLimit)
		if err != nil {
			return err
		}
		s.MaxPrecision = parsed
		return nil
	}},
	{"LOG_LEVEL", func(s *Settings, v string) error {
		level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(v)))
		if err != nil {
			return apperrors.NewConfigError("invalid value %q for %sLOG_LEVEL: %v", v, EnvPrefix, err)
		}
		s.LogLevel = level
		return nil
	}},
	{"PROPERTY_TESTS", func(s *Settings, v string) error {
		parsed, err := parsePositiveInt("PROPERTY_TESTS", v, 1_000_000)
		if err != nil {
			return err
		}
		s.PropertyTests = parsed
		return nil
	}},
}

// applyEnvOverrides applies environment variable values on top of the
// defaults already held in s.
//
// Supported environment variables (all prefixed with WIDEMATH_):
//   - MAX_PRECISION, LOG_LEVEL, PROPERTY_TESTS
func applyEnvOverrides(s *Settings, lookup func(string) (string, bool)) error {
	for _, o := range envOverrides {
		val, ok := lookup(EnvPrefix + o.envKey)
		if !ok {
			continue
		}
		if err := o.apply(s, val); err != nil {
			return err
		}
	}
	return nil
}
