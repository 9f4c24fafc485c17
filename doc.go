// Package utf8scan validates UTF-8 byte sequences.
//
// utf8scan is a fast, allocation-free well-formedness check per
// RFC 3629, featuring:
//   - Rejection of overlong encodings, encoded surrogate halves, and
//     code points beyond U+10FFFF
//   - Word-at-a-time fast path for ASCII runs (SWAR)
//   - Repeated-sequence lookahead for long runs of one script
//   - Windowed validation over [start, end) sub-ranges
//
// # Quick Start
//
// For whole-buffer validation:
//
//	ok := utf8scan.Valid(data)
//
// For a sub-range of a larger buffer:
//
//	ok, err := utf8scan.ValidRange(data, start, end)
//	if err != nil {
//	    // the window itself was malformed (caller bug)
//	}
//
// # Semantics
//
// Validity is a whole-sequence property: the first invalid byte anywhere
// in the window makes the result false, and a multi-byte sequence
// truncated at the window end is invalid even if its continuation bytes
// exist beyond the window. The empty window is trivially valid.
//
// The result is a plain boolean. The package deliberately does not
// report error locations, decode code points, or substitute replacement
// characters; callers that need decoding should use unicode/utf8.
//
// # Configuration
//
// The [Config] type toggles the two accelerator paths independently.
// Acceleration never changes results, only throughput; every
// configuration accepts exactly the inputs the byte-by-byte reference
// loop accepts.
//
// # Error Handling
//
// Malformed data is reported as a false result. A malformed window
// (start/end out of bounds or inverted) is caller misuse and is
// reported loudly as a [RangeError] instead.
//
// # Thread Safety
//
// Validation is pure: it performs no I/O, allocates nothing, and never
// mutates its input. All functions are safe for unlimited concurrent
// use, including on shared buffers.
package utf8scan
