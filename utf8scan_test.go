package utf8scan_test

import (
	"bytes"
	"testing"

	"github.com/kolkov/utf8scan"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  bool
	}{
		{"empty", []byte{}, true},
		{"single ascii", []byte{0x00}, true},
		{"ascii text", []byte("hello, world"), true},
		{"bare continuation", []byte{0x80}, false},
		{"minimal two byte", []byte{0xC2, 0x80}, true},
		{"overlong three byte", []byte{0xE0, 0x80, 0x80}, false},
		{"surrogate half", []byte{0xED, 0xA0, 0x80}, false},
		{"beyond max code point", []byte{0xF4, 0x90, 0x80, 0x80}, false},
		{"truncated four byte", []byte{0xF0, 0x90, 0x80}, false},
		{"mixed scripts", []byte("héllo мир 世界 🎉"), true},
	}

	for _, tt := range tests {
		if got := utf8scan.Valid(tt.input); got != tt.want {
			t.Errorf("%s: Valid(%q) = %v, want %v", tt.name, tt.input, got, tt.want)
		}
	}
}

func TestValidString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", true},
		{"ascii", "hello", true},
		{"multi byte", "привет 世界", true},
		{"bare continuation", "\x80", false},
		{"overlong", "\xC0\x80", false},
		{"truncated", "ok so far \xE2\x82", false},
	}

	for _, tt := range tests {
		if got := utf8scan.ValidString(tt.input); got != tt.want {
			t.Errorf("%s: ValidString(%q) = %v, want %v", tt.name, tt.input, got, tt.want)
		}
	}
}

func TestValidRange(t *testing.T) {
	b := []byte("ab\xE2\x82\xACcd") // "ab€cd"

	tests := []struct {
		name       string
		start, end int
		want       bool
	}{
		{"whole buffer", 0, len(b), true},
		{"empty window", 3, 3, true},
		{"ascii prefix", 0, 2, true},
		{"sequence exactly", 2, 5, true},
		{"cut mid sequence", 0, 4, false},
		{"start inside sequence", 3, len(b), false},
	}

	for _, tt := range tests {
		got, err := utf8scan.ValidRange(b, tt.start, tt.end)
		if err != nil {
			t.Errorf("%s: ValidRange(%q, %d, %d) error: %v", tt.name, b, tt.start, tt.end, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: ValidRange(%q, %d, %d) = %v, want %v", tt.name, b, tt.start, tt.end, got, tt.want)
		}
	}
}

func TestValidRangeErrors(t *testing.T) {
	b := []byte("abc")

	tests := []struct {
		name       string
		start, end int
	}{
		{"negative start", -1, 2},
		{"inverted window", 2, 1},
		{"end past buffer", 0, 4},
		{"both past buffer", 5, 9},
	}

	for _, tt := range tests {
		ok, err := utf8scan.ValidRange(b, tt.start, tt.end)
		if err == nil {
			t.Errorf("%s: ValidRange(%q, %d, %d) expected error, got %v", tt.name, b, tt.start, tt.end, ok)
			continue
		}
		re, isRange := utf8scan.IsRangeError(err)
		if !isRange {
			t.Errorf("%s: expected *RangeError, got %T: %v", tt.name, err, err)
			continue
		}
		if re.Start != tt.start || re.End != tt.end || re.Len != len(b) {
			t.Errorf("%s: RangeError = %+v, want {Start:%d End:%d Len:%d}", tt.name, re, tt.start, tt.end, len(b))
		}
	}

	// A validation failure is not a RangeError.
	ok, err := utf8scan.ValidRange([]byte{0xFF}, 0, 1)
	if err != nil || ok {
		t.Errorf("ValidRange([0xFF], 0, 1) = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestConfigToggles(t *testing.T) {
	off := false
	configs := []*utf8scan.Config{
		nil,
		{},
		{ASCIIRuns: &off},
		{RepeatLookahead: &off},
		{ASCIIRuns: &off, RepeatLookahead: &off},
	}

	inputs := [][]byte{
		[]byte("pure ascii input that is long enough for word-sized runs"),
		[]byte("привет мир привет мир привет мир"),
		[]byte("mixed мир 世界 🎉 mixed мир 世界 🎉"),
		{0xE0, 0xA0, 0x80, 0xE0, 0x9F, 0x80},   // valid then narrowed-range violation
		[]byte("aaaaaaaaaaaaaaaa\xF0\x90\x80"), // truncated after ASCII run
	}

	for _, input := range inputs {
		want := utf8scan.Valid(input)
		for i, config := range configs {
			got, err := utf8scan.ValidRangeWithConfig(input, 0, len(input), config)
			if err != nil {
				t.Fatalf("config %d: unexpected error: %v", i, err)
			}
			if got != want {
				t.Errorf("config %d: ValidRangeWithConfig(%q) = %v, want %v", i, input, got, want)
			}
		}
	}
}

func TestValidDoesNotMutateInput(t *testing.T) {
	input := []byte("ascii мир 世界 🎉 \xFF trailing")
	snapshot := append([]byte(nil), input...)

	utf8scan.Valid(input)
	utf8scan.ValidRange(input, 0, len(input))

	if !bytes.Equal(input, snapshot) {
		t.Errorf("input mutated: %q != %q", input, snapshot)
	}
}

func TestRepeatedCallsAgree(t *testing.T) {
	input := []byte("deterministic: мир 世界 🎉")
	first := utf8scan.Valid(input)
	for i := 0; i < 10; i++ {
		if got := utf8scan.Valid(input); got != first {
			t.Fatalf("call %d: Valid = %v, first call = %v", i, got, first)
		}
	}
}
