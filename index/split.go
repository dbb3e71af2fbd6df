package index

import (
	apperrors "github.com/agbru/widemath/internal/errors"
	"github.com/agbru/widemath/wideint"
)

// Split decomposes store into all of its sub-integers of the given mode,
// least significant first. Each part is an independent copy read through a
// little-endian descriptor.
func Split[T wideint.Chunk](store wideint.Uint[T], mode Mode) ([]wideint.Uint[T], error) {
	if mode.Scalar() || !mode.Supported() {
		return nil, apperrors.NewValidationError("mode", "%s is not a sub-integer granularity", mode)
	}
	count := mode.UnitCount(store.Width())
	if count == 0 {
		return nil, apperrors.NewValidationError("mode", "%s units do not fit in a %d-bit integer", mode, store.Width())
	}
	parts := make([]wideint.Uint[T], count)
	for i := range parts {
		d, err := Encode(mode, uint32(i))
		if err != nil {
			return nil, err
		}
		if parts[i], err = ReadUint(store, d); err != nil {
			return nil, err
		}
	}
	return parts, nil
}

// Join reassembles parts, least significant first, into one integer whose
// width is the sum of theirs. Every part must have the same width.
func Join[T wideint.Chunk](parts []wideint.Uint[T]) (wideint.Uint[T], error) {
	if len(parts) == 0 {
		return wideint.Uint[T]{}, apperrors.NewValidationError("parts", "nothing to join")
	}
	width := parts[0].Width()
	chunks := make([]T, 0, len(parts)*parts[0].Len())
	for i, p := range parts {
		if p.Width() != width {
			return wideint.Uint[T]{}, apperrors.NewValidationError("parts", "part %d is %d bits, want %d", i, p.Width(), width)
		}
		chunks = append(chunks, p.Chunks()...)
	}
	return wideint.FromChunks(chunks)
}
