package config

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	apperrors "github.com/agbru/widemath/internal/errors"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()
	s := Default()
	if s.MaxPrecision != DefaultMaxPrecision {
		t.Errorf("MaxPrecision = %d, want %d", s.MaxPrecision, DefaultMaxPrecision)
	}
	if s.LogLevel != zerolog.InfoLevel {
		t.Errorf("LogLevel = %v, want info", s.LogLevel)
	}
	if s.PropertyTests != DefaultPropertyTests {
		t.Errorf("PropertyTests = %d, want %d", s.PropertyTests, DefaultPropertyTests)
	}
}

func TestLoadFrom(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		env     map[string]string
		want    Settings
		wantErr bool
	}{
		{
			name: "no overrides",
			env:  map[string]string{},
			want: Default(),
		},
		{
			name: "all overrides",
			env: map[string]string{
				"WIDEMATH_MAX_PRECISION":  "32",
				"WIDEMATH_LOG_LEVEL":      "DEBUG",
				"WIDEMATH_PROPERTY_TESTS": "500",
			},
			want: Settings{MaxPrecision: 32, LogLevel: zerolog.DebugLevel, PropertyTests: 500},
		},
		{
			name:    "non-numeric precision",
			env:     map[string]string{"WIDEMATH_MAX_PRECISION": "many"},
			wantErr: true,
		},
		{
			name:    "precision beyond limit",
			env:     map[string]string{"WIDEMATH_MAX_PRECISION": "2467"},
			wantErr: true,
		},
		{
			name:    "zero property tests",
			env:     map[string]string{"WIDEMATH_PROPERTY_TESTS": "0"},
			wantErr: true,
		},
		{
			name:    "unknown log level",
			env:     map[string]string{"WIDEMATH_LOG_LEVEL": "loud"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := LoadFrom(mapLookup(tt.env))
			if tt.wantErr {
				var configErr apperrors.ConfigError
				if !errors.As(err, &configErr) {
					t.Fatalf("expected ConfigError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("LoadFrom() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("WIDEMATH_MAX_PRECISION", "8")
	t.Setenv("WIDEMATH_LOG_LEVEL", "")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.MaxPrecision != 8 {
		t.Errorf("MaxPrecision = %d, want 8", s.MaxPrecision)
	}
	if s.LogLevel != zerolog.InfoLevel {
		t.Errorf("empty LOG_LEVEL should keep the default, got %v", s.LogLevel)
	}
}
