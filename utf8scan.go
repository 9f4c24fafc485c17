package utf8scan

import (
	"unsafe"

	"github.com/kolkov/utf8scan/internal/scan"
)

// Version is the utf8scan version string.
const Version = "0.1.0"

// Valid reports whether p consists entirely of complete, well-formed
// UTF-8 sequences. Overlong encodings, encoded surrogate halves
// (U+D800-U+DFFF), code points beyond U+10FFFF, bare continuation
// bytes, and multi-byte sequences truncated at the end of p are all
// rejected.
//
// Valid never allocates and never mutates p. It is safe for concurrent
// use on shared read-only buffers.
//
// Example:
//
//	ok := utf8scan.Valid([]byte("héllo"))
//	// ok: true
func Valid(p []byte) bool {
	return scan.Valid(p, 0, len(p), scan.FastFlags())
}

// ValidString is like Valid but its input is a string. The string is
// inspected in place without copying.
func ValidString(s string) bool {
	return Valid(unsafeStringToBytes(s))
}

// ValidRange reports whether p[start:end] consists entirely of
// complete, well-formed UTF-8 sequences. Validity of the window is
// independent of bytes outside it; a multi-byte sequence still open at
// end makes the window invalid even if the missing continuation bytes
// follow in p.
//
// The window must satisfy 0 <= start <= end <= len(p). A window that
// does not is a caller error and is reported as a *RangeError rather
// than as a validation failure; ValidRange never panics and never
// clamps. An empty window is trivially valid.
func ValidRange(p []byte, start, end int) (bool, error) {
	return ValidRangeWithConfig(p, start, end, nil)
}

// ValidRangeWithConfig is like ValidRange with explicit control over
// the accelerator paths. A nil config enables every fast path.
//
// Disabling acceleration never changes the result, only throughput; the
// toggles exist for differential testing and for callers that want the
// smallest possible code path.
func ValidRangeWithConfig(p []byte, start, end int, config *Config) (bool, error) {
	if start < 0 || end < start || end > len(p) {
		return false, &RangeError{Start: start, End: end, Len: len(p)}
	}
	if config == nil {
		config = &Config{}
	}
	return scan.Valid(p, start, end, config.flags()), nil
}

// unsafeStringToBytes views a string as []byte without allocation.
// The scanner is read-only, so the no-mutation contract of string
// backing memory is preserved.
func unsafeStringToBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
