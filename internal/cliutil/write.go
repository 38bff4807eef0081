// Package cliutil holds the input and output helpers shared by the namecase
// subcommands.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Stderr receives diagnostics. Tests swap it for a buffer.
var Stderr io.Writer = os.Stderr

// Writef writes formatted text to w. A CLI has no other channel left for a
// failed write, so the failure is reported on Stderr and otherwise dropped.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(Stderr, "namecase: write failed: %v\n", err)
	}
}

// Warnf reports a per-name problem on Stderr as an "Error: " line without
// stopping the command.
func Warnf(format string, args ...any) {
	Writef(Stderr, "Error: "+format+"\n", args...)
}
