// Package identscan checks the identifiers declared in Go source files
// against naming rules.
//
// The scanner parses each file with go/parser, walks the declarations with
// an inspector and classifies every declared name with convention.Detect.
// Names whose conventions are not allowed for their kind are reported as
// issues, each with a suggested replacement where one can be derived.
//
// # Quick Start
//
//	result, err := identscan.ScanWithOptions(ctx,
//	    identscan.WithDir("./internal/server"),
//	    identscan.WithIncludeTests(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, issue := range result.Issues {
//	    fmt.Println(issue)
//	}
//
// # Rules
//
// The default rules allow PascalCase and CamelCase for every kind of
// declaration. Rules can be loaded from YAML with [LoadRules]:
//
//	severity: error
//	allow: [PascalCase, CamelCase]
//	kinds:
//	  const:
//	    allow: [PascalCase, CamelCase, UpperSnakeCase]
//	    severity: warning
//
// Top-level keys set the defaults for every kind; entries under kinds
// override them for a single kind.
//
// # Limits
//
// Scans are bounded by a maximum file count and a maximum file size. Both
// failures are reported as *nameerrors.ResourceLimitError. Files that do not
// parse are reported as *nameerrors.ParseError.
package identscan
