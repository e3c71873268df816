// Package log provides the tagged stderr progress lines the CLI driver
// prints: a package-level Verbose bool gating "[verbose/tag] ..." detail
// lines alongside always-on "[tag] ..." phase lines.
package log

import (
	"fmt"
	"io"
	"os"
)

// Verbose controls whether [verbose/...] detail lines are printed.
var Verbose bool

// writer is swappable so tests can capture output instead of writing to
// stderr.
var writer io.Writer = os.Stderr

// SetOutput redirects log output; the package-level writer is the single
// indirection point for where progress lines go.
func SetOutput(w io.Writer) {
	writer = w
}

// Phase prints a tagged phase-transition line, e.g. "[init] loaded 412 students".
func Phase(tag, format string, args ...any) {
	fmt.Fprintf(writer, "[%s] %s\n", tag, fmt.Sprintf(format, args...))
}

// Verbosef prints a "[verbose/tag] ..." line only when Verbose is set.
func Verbosef(tag, format string, args ...any) {
	if !Verbose {
		return
	}
	fmt.Fprintf(writer, "[verbose/%s] %s\n", tag, fmt.Sprintf(format, args...))
}
