package scan

import "encoding/binary"

// highBits has the high bit of every byte lane set. A word AND-ed with
// it is zero exactly when all 8 bytes are ASCII (< 0x80).
const highBits = 0x8080808080808080

// asciiRun8 reports whether the 8 bytes at p[i:] are all ASCII, using a
// single word load and a high-bit mask (SWAR). The caller guarantees at
// least 8 bytes remain.
//
// Skipping 8 bytes per hit instead of classifying each byte is what
// makes validation of mostly-ASCII input memory-bandwidth bound.
func asciiRun8(p []byte, i int) bool {
	return binary.LittleEndian.Uint64(p[i:])&highBits == 0
}

// repeatMatch reports whether the bytes at p[i:] repeat a multi-byte
// sequence with the same first-byte classification x. Long runs of one
// script (Cyrillic, CJK) produce back-to-back sequences with identical
// structure, so re-testing the known shape is cheaper than a fresh
// dispatch through matchSequence.
//
// The test is the conjunction of exactly the per-byte range checks the
// reference path would apply: same classifier entry for the lead, the
// lead's accept range for the first continuation byte, and the plain
// continuation range for the rest. The caller guarantees that x is a
// multi-byte entry and that at least x&sizeMask bytes remain.
func repeatMatch(p []byte, i int, x uint8) bool {
	if first[p[i]] != x {
		return false
	}
	if ar := acceptRanges[x>>acceptShift]; p[i+1] < ar.lo || ar.hi < p[i+1] {
		return false
	}
	switch x & sizeMask {
	case 2:
		return true
	case 3:
		return locb <= p[i+2] && p[i+2] <= hicb
	default:
		return locb <= p[i+2] && p[i+2] <= hicb &&
			locb <= p[i+3] && p[i+3] <= hicb
	}
}
