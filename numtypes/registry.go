// Package numtypes names the fixed-width integer and float types built on
// wideint and widefloat, and dispatches construction by name or by index
// granularity.
package numtypes

import (
	"fmt"
	"sort"
	"sync"

	apperrors "github.com/agbru/widemath/internal/errors"
	"github.com/agbru/widemath/index"
	"github.com/agbru/widemath/widefloat"
	"github.com/agbru/widemath/wideint"
)

// Kind distinguishes integer types from float types.
type Kind int

const (
	Unsigned Kind = iota
	Float
)

func (k Kind) String() string {
	if k == Float {
		return "float"
	}
	return "unsigned"
}

// TypeInfo describes one named type.
type TypeInfo struct {
	Name      string
	Bits      int
	ChunkBits int
	Kind      Kind
}

// Registry maps names to type descriptions. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]TypeInfo
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]TypeInfo)}
}

// Default returns a registry holding UInt128 through UInt8192 and Float128
// through Float8192 over 64-bit chunks, plus their H variants over 32-bit
// chunks (UInt8192H and so on).
func Default() *Registry {
	r := NewRegistry()
	for bits := 128; bits <= wideint.Width8192; bits *= 2 {
		for _, chunk := range []int{64, 32} {
			suffix := ""
			if chunk == 32 {
				suffix = "H"
			}
			r.mustRegister(TypeInfo{Name: fmt.Sprintf("UInt%d%s", bits, suffix), Bits: bits, ChunkBits: chunk, Kind: Unsigned})
			r.mustRegister(TypeInfo{Name: fmt.Sprintf("Float%d%s", bits, suffix), Bits: bits, ChunkBits: chunk, Kind: Float})
		}
	}
	return r
}

// Register adds info. Names are unique, and widths must be positive
// multiples of a 32- or 64-bit chunk.
func (r *Registry) Register(info TypeInfo) error {
	if info.Name == "" {
		return apperrors.NewValidationError("name", "type name is empty")
	}
	if info.ChunkBits != 32 && info.ChunkBits != 64 {
		return apperrors.NewValidationError("chunk_bits", "%d is not 32 or 64", info.ChunkBits)
	}
	if info.Bits <= 0 || info.Bits%info.ChunkBits != 0 {
		return apperrors.NewValidationError("bits", "%d is not a positive multiple of %d", info.Bits, info.ChunkBits)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.types[info.Name]; ok {
		return apperrors.NewValidationError("name", "type %q is already registered", info.Name)
	}
	r.types[info.Name] = info
	return nil
}

func (r *Registry) mustRegister(info TypeInfo) {
	if err := r.Register(info); err != nil {
		panic(err)
	}
}

// Get returns the type registered under name.
func (r *Registry) Get(name string) (TypeInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.types[name]
	if !ok {
		return TypeInfo{}, apperrors.NewValidationError("name", "unknown type %q", name)
	}
	return info, nil
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForMode returns the unsigned type a sub-integer mode reads as, over the
// given chunk width. Scalar modes have no registered type.
func (r *Registry) ForMode(mode index.Mode, chunkBits int) (TypeInfo, error) {
	if mode.Scalar() || !mode.Supported() {
		return TypeInfo{}, apperrors.NewValidationError("mode", "%s has no sub-integer type", mode)
	}
	want := TypeInfo{Bits: mode.UnitBits(), ChunkBits: chunkBits, Kind: Unsigned}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, info := range r.types {
		if info.Bits == want.Bits && info.ChunkBits == want.ChunkBits && info.Kind == want.Kind {
			return info, nil
		}
	}
	return TypeInfo{}, apperrors.NewValidationError("mode", "no %d-bit unsigned type over %d-bit chunks", want.Bits, chunkBits)
}

// checkChunk verifies that T matches the chunk width info declares.
func checkChunk[T wideint.Chunk](info TypeInfo) error {
	if c := wideint.ChunkBits[T](); c != info.ChunkBits {
		return apperrors.NewValidationError("chunk_bits", "%s uses %d-bit chunks, not %d", info.Name, info.ChunkBits, c)
	}
	return nil
}

// NewUnsigned returns a zero integer of the described type.
func NewUnsigned[T wideint.Chunk](info TypeInfo) (wideint.Uint[T], error) {
	if info.Kind != Unsigned {
		return wideint.Uint[T]{}, apperrors.NewValidationError("kind", "%s is a %s type", info.Name, info.Kind)
	}
	if err := checkChunk[T](info); err != nil {
		return wideint.Uint[T]{}, err
	}
	return wideint.New[T](info.Bits)
}

// NewFloat returns a zero float of the described type.
func NewFloat[T wideint.Chunk](info TypeInfo) (widefloat.Float[T], error) {
	if info.Kind != Float {
		return widefloat.Float[T]{}, apperrors.NewValidationError("kind", "%s is a %s type", info.Name, info.Kind)
	}
	if err := checkChunk[T](info); err != nil {
		return widefloat.Float[T]{}, err
	}
	return widefloat.New[T](info.Bits)
}
