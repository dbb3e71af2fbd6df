package index

import (
	"fmt"
	"strings"

	apperrors "github.com/agbru/widemath/internal/errors"
)

// Mode selects the granularity of the unit a descriptor addresses. Mode 0
// addresses single bits; every mode m >= 1 addresses units of 2^(m+1) bits.
type Mode uint8

const (
	ModeBit Mode = iota
	ModeNybble
	ModeByte
	ModeWord
	ModeDword
	ModeQword
	ModeUint128
	ModeUint256
	ModeUint512
	ModeUint1024
	ModeUint2048
	ModeUint4096

	// MaxMode is the largest mode version 1 can read or write. Modes up to
	// 15 are encodable but unsupported.
	MaxMode = ModeUint4096
)

var modeNames = [...]string{
	ModeBit:      "bit",
	ModeNybble:   "nybble",
	ModeByte:     "byte",
	ModeWord:     "word",
	ModeDword:    "dword",
	ModeQword:    "qword",
	ModeUint128:  "uint128",
	ModeUint256:  "uint256",
	ModeUint512:  "uint512",
	ModeUint1024: "uint1024",
	ModeUint2048: "uint2048",
	ModeUint4096: "uint4096",
}

func (m Mode) String() string {
	if m.Supported() {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// Supported reports whether version 1 can read and write units of m.
func (m Mode) Supported() bool {
	return m <= MaxMode
}

// UnitBits returns the width of one unit in bits.
func (m Mode) UnitBits() int {
	if m == ModeBit {
		return 1
	}
	return 1 << (uint(m) + 1)
}

// Scalar reports whether units of m fit in a uint64. Larger units are
// sub-integers.
func (m Mode) Scalar() bool {
	return m <= ModeQword
}

// UnitCount returns how many units of m an integer of width bits holds.
func (m Mode) UnitCount(width int) int {
	return width / m.UnitBits()
}

// offsetMask returns the high bits of the 16-bit offset field that must be
// zero for m: the top m+3 bits, set one at a time from bit 15 down.
func (m Mode) offsetMask() uint32 {
	var mask uint32
	for i := 0; i < int(m)+3 && i < offsetBits; i++ {
		mask |= 1 << (offsetBits - 1 - i)
	}
	return mask
}

// MaxOffset returns the largest offset the descriptor encoding admits for
// m, independent of any store width.
func (m Mode) MaxOffset() uint32 {
	return ^m.offsetMask() & offsetField
}

// ParseMode returns the mode with the given name, case-insensitively.
func ParseMode(name string) (Mode, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for m, n := range modeNames {
		if n == lower {
			return Mode(m), nil
		}
	}
	return 0, apperrors.NewValidationError("mode", "unknown granularity %q", name)
}

// Modes returns every supported mode in ascending order.
func Modes() []Mode {
	out := make([]Mode, 0, len(modeNames))
	for m := range modeNames {
		out = append(out, Mode(m))
	}
	return out
}
