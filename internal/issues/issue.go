// Package issues provides the issue type used to report naming violations.
package issues

import (
	"fmt"

	"github.com/erraggy/namecase/internal/severity"
)

// Issue represents a single naming problem found while scanning source code.
type Issue struct {
	// Path is the qualified identifier (e.g., "Server.handleRequest")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Field is the kind of declaration that has the issue (e.g., "method")
	Field string
	// Value is the offending identifier
	Value string
	// Suggestion is a replacement name that satisfies the rule (optional)
	Suggestion string
	// Line is the 1-based line number in the source file (0 if unknown)
	Line int
	// Column is the 1-based column number in the source file (0 if unknown)
	Column int
	// File is the source file path (empty for in-memory source)
	File string
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	var result string
	if i.HasLocation() {
		result = fmt.Sprintf("%s %s %s: %s", symbol, i.Location(), i.Path, i.Message)
	} else {
		result = fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
	}

	if i.Suggestion != "" {
		result += fmt.Sprintf("\n    Suggestion: %s", i.Suggestion)
	}

	return result
}

// Location returns the source location in IDE-friendly format.
// Returns "file:line:column" if file is set, "line:column" if only line is set,
// or the identifier path if location is unknown.
func (i Issue) Location() string {
	if i.Line == 0 {
		return i.Path
	}
	if i.File != "" {
		return fmt.Sprintf("%s:%d:%d", i.File, i.Line, i.Column)
	}
	return fmt.Sprintf("%d:%d", i.Line, i.Column)
}

// HasLocation returns true if this issue has source location information.
func (i Issue) HasLocation() bool {
	return i.Line > 0
}

// Count returns the number of issues at or above the given severity.
func Count(list []Issue, atLeast severity.Severity) int {
	n := 0
	for _, i := range list {
		if i.Severity >= atLeast {
			n++
		}
	}
	return n
}
