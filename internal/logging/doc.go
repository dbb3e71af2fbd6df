// Package logging provides a unified logging interface for the wide-integer
// packages. It abstracts the underlying logging implementation, allowing
// consistent structured logging while supporting a zerolog backend and a
// standard library fallback.
package logging
