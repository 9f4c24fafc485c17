// utf8scan - UTF-8 well-formedness checker
//
// Validates that files (or stdin) contain only well-formed UTF-8.
// Uses manual argument parsing so combined flags like '-epattern'
// work the POSIX way.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coregx/coregex"
	"github.com/kolkov/utf8scan"
)

// version is set by GoReleaser at build time via -ldflags.
// For development builds, it will be "dev".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	shortUsage = "usage: utf8scan [-q] [-e pattern] [-no-fast] [file ...]"
	longUsage  = `Arguments:
  -e pattern        only check files whose name matches the regex pattern
  -q                quiet: no per-file output, exit status only

Performance options:
  -no-fast          disable the accelerated scan paths (reference loop)

Other:
  -h, --help        show this help message
  -version          show utf8scan version and exit

With no file arguments, or with "-" as a file, input is read from stdin.
Exit status is 0 if every checked input is well-formed UTF-8, 1 otherwise.
`
)

func main() {
	quiet := false
	noFast := false
	pattern := ""

	var i int
	for i = 1; i < len(os.Args); i++ {
		// Stop on explicit end of args or first arg not prefixed with "-"
		arg := os.Args[i]
		if arg == "--" {
			i++
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			break
		}

		switch arg {
		case "-e":
			if i+1 >= len(os.Args) {
				errorExitf("flag needs an argument: -e")
			}
			i++
			pattern = os.Args[i]
		case "-q":
			quiet = true
		case "-no-fast", "--no-fast":
			noFast = true
		case "-h", "--help":
			fmt.Printf("utf8scan %s - UTF-8 well-formedness checker\n\n%s\n\n%s", version, shortUsage, longUsage)
			os.Exit(0)
		case "-version", "--version":
			fmt.Printf("utf8scan version %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built:  %s\n", date)
			os.Exit(0)
		default:
			// Handle flags with no space: -epattern
			if strings.HasPrefix(arg, "-e") {
				pattern = arg[2:]
			} else {
				errorExitf("flag provided but not defined: %s", arg)
			}
		}
	}

	files := os.Args[i:]

	// Compile the file-name filter, if any
	var filter *coregex.Regexp
	if pattern != "" {
		re, err := coregex.Compile(pattern)
		if err != nil {
			errorExitf("invalid pattern %q: %v", pattern, err)
		}
		filter = re
	}

	var config *utf8scan.Config
	if noFast {
		off := false
		config = &utf8scan.Config{ASCIIRuns: &off, RepeatLookahead: &off}
	}

	if len(files) == 0 {
		files = []string{"-"}
	}

	allValid := true
	for _, f := range files {
		if filter != nil && f != "-" && !filter.MatchString(f) {
			continue
		}

		data, name, err := readInput(f)
		if err != nil {
			errorExitf("cannot read %s: %v", name, err)
		}

		// The full-buffer window is always well-formed, so a range
		// error here would be a bug in this program.
		ok, err := utf8scan.ValidRangeWithConfig(data, 0, len(data), config)
		if err != nil {
			errorExit(err)
		}

		if !ok {
			allValid = false
		}
		if !quiet {
			if ok {
				fmt.Printf("%s: ok\n", name)
			} else {
				fmt.Printf("%s: INVALID\n", name)
			}
		}
	}

	if !allValid {
		os.Exit(1)
	}
}

// readInput reads a file argument fully into memory, treating "-" as stdin.
func readInput(f string) (data []byte, name string, err error) {
	if f == "-" {
		data, err = io.ReadAll(os.Stdin)
		return data, "(stdin)", err
	}
	data, err = os.ReadFile(f)
	return data, f, err
}

// errorExitf prints formatted error message and exits with code 2
func errorExitf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "utf8scan: "+format+"\n", args...)
	os.Exit(2)
}

// errorExit prints error and exits with code 2
func errorExit(err error) {
	fmt.Fprintf(os.Stderr, "utf8scan: %v\n", err)
	os.Exit(2)
}
