package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestFieldHelpers tests the Field constructor functions.
func TestFieldHelpers(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"String", String("mode", "qword"), "mode", "qword"},
		{"Int", Int("digits", 16), "digits", 16},
		{"Uint64", Uint64("descriptor", 0x08010000), "descriptor", uint64(0x08010000)},
		{"Float64", Float64("ratio", 0.5), "ratio", 0.5},
		{"Bool", Bool("exact", true), "exact", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.key {
				t.Errorf("%s().Key = %q, want %q", tt.name, tt.field.Key, tt.key)
			}
			if tt.field.Value != tt.value {
				t.Errorf("%s().Value = %v, want %v", tt.name, tt.field.Value, tt.value)
			}
		})
	}

	t.Run("Err uses the error key", func(t *testing.T) {
		testErr := errors.New("overflow")
		f := Err(testErr)
		if f.Key != "error" {
			t.Errorf("Err().Key = %q, want %q", f.Key, "error")
		}
		if f.Value != testErr {
			t.Errorf("Err().Value = %v, want %v", f.Value, testErr)
		}
	})
}

// TestNewLogger tests the component-tagged logger constructor.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "fixedpoint")

	logger.Info("hello")
	output := buf.String()

	if !strings.Contains(output, `"component":"fixedpoint"`) {
		t.Errorf("NewLogger should include component field, got: %s", output)
	}
	if !strings.Contains(output, "hello") {
		t.Errorf("NewLogger should include message, got: %s", output)
	}
}

// TestNewDefaultLogger tests the default logger constructor.
func TestNewDefaultLogger(t *testing.T) {
	if NewDefaultLogger() == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

// TestZerologAdapter_Levels tests Info, Error and Debug output.
func TestZerologAdapter_Levels(t *testing.T) {
	tests := []struct {
		name     string
		log      func(Logger)
		contains []string
	}{
		{
			name:     "info with fields",
			log:      func(l Logger) { l.Info("decoded", String("mode", "byte"), Int("offset", 3)) },
			contains: []string{`"level":"info"`, "decoded", "byte", "3"},
		},
		{
			name:     "error with cause",
			log:      func(l Logger) { l.Error("read failed", errors.New("out of range"), Int("offset", 8192)) },
			contains: []string{`"level":"error"`, "read failed", "out of range", "8192"},
		},
		{
			name:     "error with nil cause",
			log:      func(l Logger) { l.Error("warning", nil) },
			contains: []string{"warning", "error"},
		},
		{
			name:     "debug",
			log:      func(l Logger) { l.Debug("approximated", Bool("exact", false)) },
			contains: []string{`"level":"debug"`, "approximated", "false"},
		},
		{
			name:     "printf",
			log:      func(l Logger) { l.Printf("%d chunks of %d bits", 128, 64) },
			contains: []string{"128 chunks of 64 bits"},
		},
		{
			name:     "println",
			log:      func(l Logger) { l.Println("uint128", "uint256") },
			contains: []string{"uint128 uint256"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel)))

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

// TestZerologAdapter_WithLevel tests that WithLevel filters lower levels.
func TestZerologAdapter_WithLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "wideint").WithLevel(zerolog.InfoLevel)

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug entry should be filtered at info level, got: %s", buf.String())
	}
	logger.Info("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("info entry should pass, got: %s", buf.String())
	}
}

// TestZerologAdapter_applyFields tests field application with all supported types.
func TestZerologAdapter_applyFields(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string", Field{Key: "mode", Value: "nybble"}, `"mode":"nybble"`},
		{"int", Field{Key: "precision", Value: 16}, `"precision":16`},
		{"int64", Field{Key: "exponent", Value: int64(-8192)}, `"exponent":-8192`},
		{"uint64", Field{Key: "chunk", Value: ^uint64(0)}, "18446744073709551615"},
		{"uint32", Field{Key: "descriptor", Value: uint32(0x10010003)}, `"descriptor":268500995`},
		{"float64", Field{Key: "ratio", Value: 0.625}, "0.625"},
		{"error", Field{Key: "cause", Value: errors.New("division by zero")}, `"cause":"division by zero"`},
		{"bool", Field{Key: "exact", Value: true}, `"exact":true`},
		{"fallback", Field{Key: "limits", Value: []int{8192, 2048}}, "[8192,2048]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "index")
			logger.Info("field", tt.field)

			if output := buf.String(); !strings.Contains(output, tt.contains) {
				t.Errorf("%s field: want %s in %s", tt.name, tt.contains, output)
			}
		})
	}
}

// TestNewNopLogger verifies the nop logger can be called safely.
func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Info("ignored", Int("n", 1))
	logger.Error("ignored", errors.New("x"))
	logger.Debug("ignored")
}

// TestStdLoggerAdapter tests the standard library adapter.
func TestStdLoggerAdapter(t *testing.T) {
	tests := []struct {
		name     string
		log      func(Logger)
		contains []string
	}{
		{
			name:     "info",
			log:      func(l Logger) { l.Info("encoded", String("mode", "word")) },
			contains: []string{"[INFO]", "encoded", "mode=word"},
		},
		{
			name:     "error",
			log:      func(l Logger) { l.Error("mul failed", errors.New("overflow"), Int("width", 8192)) },
			contains: []string{"[ERROR]", "mul failed", "overflow", "width=8192"},
		},
		{
			name:     "debug",
			log:      func(l Logger) { l.Debug("trace", Int("line", 42)) },
			contains: []string{"[DEBUG]", "trace", "line=42"},
		},
		{
			name:     "printf",
			log:      func(l Logger) { l.Printf("value is %d", 123) },
			contains: []string{"value is 123"},
		},
		{
			name:     "println",
			log:      func(l Logger) { l.Println("a", "b", "c") },
			contains: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewStdLoggerAdapter(log.New(&buf, "", 0)))

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

// TestLoggerInterface verifies both adapters implement the Logger interface.
func TestLoggerInterface(t *testing.T) {
	var buf bytes.Buffer
	var _ Logger = NewLogger(&buf, "numtypes")
	var _ Logger = NewStdLoggerAdapter(log.New(&buf, "", 0))
	var _ Logger = NewNopLogger()
}
