package utf8scan

import "github.com/kolkov/utf8scan/internal/scan"

// Config holds configuration options for validation.
//
// Both toggles are purely about throughput: any combination of settings
// accepts and rejects exactly the same inputs as the byte-by-byte
// reference loop.
type Config struct {
	// ASCIIRuns toggles the word-at-a-time ASCII fast path, which
	// skips 8 all-ASCII bytes per load instead of classifying them
	// one by one. nil means enabled (the default).
	ASCIIRuns *bool

	// RepeatLookahead toggles the repeated-sequence fast path, which
	// consumes back-to-back structurally identical multi-byte
	// sequences (long runs of one script) with a combined range
	// check. nil means enabled (the default).
	RepeatLookahead *bool
}

// flags converts the tri-state toggles into scanner flags,
// filling in defaults for unset fields.
func (c *Config) flags() scan.Flags {
	f := scan.FastFlags()
	if c.ASCIIRuns != nil {
		f.ASCIIRuns = *c.ASCIIRuns
	}
	if c.RepeatLookahead != nil {
		f.RepeatLookahead = *c.RepeatLookahead
	}
	return f
}
