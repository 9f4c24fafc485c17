// Package scan implements the UTF-8 validation core: byte classification,
// sequence matching, and the scan loop with its accelerated fast paths.
package scan

// Packed first-byte information. The low nibble is the sequence size in
// bytes, the high nibble indexes acceptRanges for the first continuation
// byte. The names are chosen to keep the table below aligned.
const (
	xx = 0xF1 // invalid lead: continuation as lead, 0xC0, 0xC1, 0xF5-0xFF
	as = 0xF0 // ASCII, size 1
	s1 = 0x02 // 0xC2-0xDF, size 2
	s2 = 0x13 // 0xE0, size 3, narrowed first continuation 0xA0-0xBF
	s3 = 0x03 // 0xE1-0xEC and 0xEE-0xEF, size 3
	s4 = 0x23 // 0xED, size 3, narrowed first continuation 0x80-0x9F
	s5 = 0x34 // 0xF0, size 4, narrowed first continuation 0x90-0xBF
	s6 = 0x04 // 0xF1-0xF3, size 4
	s7 = 0x44 // 0xF4, size 4, narrowed first continuation 0x80-0x8F
)

const (
	runeSelf = 0x80 // bytes below runeSelf are single-byte ASCII sequences

	locb = 0x80 // lowest valid continuation byte
	hicb = 0xBF // highest valid continuation byte

	sizeMask    = 7 // x & sizeMask yields the sequence size
	acceptShift = 4 // x >> acceptShift indexes acceptRanges
)

// first classifies every possible lead byte. 0xC0 and 0xC1 would only
// encode overlong two-byte sequences and 0xF5-0xFF would encode code
// points beyond U+10FFFF, so they are invalid as leads outright.
var first = [256]uint8{
	//   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x00-0x0F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x10-0x1F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x20-0x2F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x30-0x3F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x40-0x4F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x50-0x5F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x60-0x6F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x70-0x7F
	//   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0x80-0x8F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0x90-0x9F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xA0-0xAF
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xB0-0xBF
	xx, xx, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 0xC0-0xCF
	s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 0xD0-0xDF
	s2, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s4, s3, s3, // 0xE0-0xEF
	s5, s6, s6, s6, s7, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xF0-0xFF
}

// acceptRange bounds the valid values for the first continuation byte
// of a multi-byte sequence. The narrowed ranges exclude overlong
// encodings (E0, F0), surrogate halves (ED), and code points beyond
// U+10FFFF (F4).
type acceptRange struct {
	lo uint8
	hi uint8
}

// acceptRanges is indexed by first[lead]>>acceptShift.
var acceptRanges = [...]acceptRange{
	0: {locb, hicb},
	1: {0xA0, hicb},
	2: {locb, 0x9F},
	3: {0x90, hicb},
	4: {locb, 0x8F},
}

// outcome is the result of matching one sequence at a given position.
type outcome uint8

const (
	accept outcome = iota // complete, valid sequence
	reject                // some byte violates its required range
	short                 // the lead demands more bytes than remain
)

// matchSequence matches the UTF-8 sequence starting at p[i] against the
// window ending at end. It returns the sequence size demanded by the
// lead byte together with the match outcome. Continuation bytes are
// checked in order, so a range violation on a byte that is present is
// reported as reject even when the sequence is also truncated.
func matchSequence(p []byte, i, end int) (int, outcome) {
	c := p[i]
	if c < runeSelf {
		return 1, accept
	}
	x := first[c]
	if x == xx {
		return 1, reject
	}
	size := int(x & sizeMask)
	if i+1 >= end {
		return size, short
	}
	if ar := acceptRanges[x>>acceptShift]; p[i+1] < ar.lo || ar.hi < p[i+1] {
		return size, reject
	}
	if size == 2 {
		return 2, accept
	}
	if i+2 >= end {
		return size, short
	}
	if p[i+2] < locb || hicb < p[i+2] {
		return size, reject
	}
	if size == 3 {
		return 3, accept
	}
	if i+3 >= end {
		return size, short
	}
	if p[i+3] < locb || hicb < p[i+3] {
		return size, reject
	}
	return 4, accept
}

// Flags selects which accelerator paths the scan loop may take. The
// zero value disables every fast path and yields the reference
// byte-by-byte loop.
type Flags struct {
	ASCIIRuns       bool // word-at-a-time compression of all-ASCII runs
	RepeatLookahead bool // paired consumption of structurally identical sequences
}

// FastFlags enables every accelerator path.
func FastFlags() Flags {
	return Flags{ASCIIRuns: true, RepeatLookahead: true}
}

// Valid reports whether p[start:end] consists entirely of complete,
// well-formed UTF-8 sequences. The caller guarantees
// 0 <= start <= end <= len(p).
//
// The main loop keeps at least 3 bytes of headroom before end, so a
// sequence matched inside it can never be truncated; the final tail is
// validated by validTail, where truncation is a hard failure.
func Valid(p []byte, start, end int, f Flags) bool {
	i := start
	for i < end-3 {
		if f.ASCIIRuns {
			for end-i >= 8 && asciiRun8(p, i) {
				i += 8
			}
			if i >= end-3 {
				break
			}
		}
		c := p[i]
		if c < runeSelf {
			i++
			continue
		}
		size, o := matchSequence(p, i, end)
		if o != accept {
			return false
		}
		i += size
		if f.RepeatLookahead {
			for x := first[c]; end-i > 3 && repeatMatch(p, i, x); {
				i += size
			}
		}
	}
	return validTail(p, i, end)
}

// validTail validates the remaining bytes of the window. It applies the
// same matcher as the main loop, but a sequence still open at end can
// no longer be completed, so a short outcome fails the whole window.
func validTail(p []byte, i, end int) bool {
	for i < end {
		if p[i] < runeSelf {
			i++
			continue
		}
		size, o := matchSequence(p, i, end)
		if o != accept {
			return false
		}
		i += size
	}
	return true
}
