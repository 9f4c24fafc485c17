package utf8scan

import (
	"fmt"
)

// RangeError reports a validation window that violates the precondition
// 0 <= Start <= End <= Len. It indicates caller misuse, not malformed
// input data, and is therefore reported as an error rather than as a
// false validation result.
type RangeError struct {
	Start int // requested window start
	End   int // requested window end (exclusive)
	Len   int // length of the buffer the window was applied to
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid window [%d:%d) for buffer of length %d", e.Start, e.End, e.Len)
}

// IsRangeError reports whether err is a RangeError and returns it.
// Returns (err, true) if err is a *RangeError, or (nil, false) otherwise.
func IsRangeError(err error) (*RangeError, bool) {
	if e, ok := err.(*RangeError); ok {
		return e, true
	}
	return nil, false
}
