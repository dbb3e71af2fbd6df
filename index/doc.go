// Package index implements the structural addressing scheme for wideint
// integers: a packed 32-bit Descriptor selects a granularity (Mode) and a
// unit offset, and Read / Write apply it to a store.
//
// Descriptor layout, MSB first:
//
//	31     version (0 = v1)
//	30..27 mode 0..11
//	26..19 reserved, must be 0
//	18     sign (advisory)
//	17     chunk-select (advisory)
//	16     endianness, 1 = little-endian
//	15..0  offset; the top mode+3 bits must be 0
//
// Modes 0 through 5 address scalar units (bit, nybble, byte, word, dword,
// qword) that are returned as a uint64 shifted down to the unit's own
// width. Modes 6 through 11 address 128- to 4096-bit sub-integers, which
// are returned as independent wideint values. Because a sub-integer is a
// store of its own, descriptors apply recursively.
//
// Every read and write validates its descriptor and checks the offset
// against the number of units the store actually holds.
package index
