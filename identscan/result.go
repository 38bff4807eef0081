package identscan

import (
	"github.com/erraggy/namecase/convention"
	"github.com/erraggy/namecase/internal/issues"
	"github.com/erraggy/namecase/internal/severity"
)

// Identifier is a declared name found in a source file.
type Identifier struct {
	// Name is the identifier as written
	Name string
	// Path qualifies Name with its enclosing type (e.g., "Server.Close")
	Path string
	// Kind is the kind of declaration
	Kind Kind
	// Exported reports whether the name starts with an uppercase letter
	Exported bool
	// Conventions are the conventions the name satisfies
	Conventions convention.Set
	// File is the source file path
	File string
	// Line is the 1-based line number
	Line int
	// Column is the 1-based column number
	Column int
}

// Result contains the outcome of a scan.
type Result struct {
	// Files are the scanned files in sorted order
	Files []string
	// Identifiers are the declared names in file then position order
	Identifiers []Identifier
	// Issues are the rule violations in the same order as Identifiers
	Issues []issues.Issue
}

// HasErrors reports whether any issue has error severity.
func (r *Result) HasErrors() bool {
	return issues.Count(r.Issues, severity.SeverityError) > 0
}

// ErrorCount returns the number of error-severity issues.
func (r *Result) ErrorCount() int {
	return issues.Count(r.Issues, severity.SeverityError)
}

// WarningCount returns the number of warning-severity issues.
func (r *Result) WarningCount() int {
	return issues.Count(r.Issues, severity.SeverityWarning) - r.ErrorCount()
}
