// Package namecase classifies identifiers by naming convention and converts
// them between conventions.
//
// # Overview
//
// Seven ASCII naming conventions are supported: UpperCase, LowerCase,
// CamelCase, PascalCase, LowerSnakeCase, UpperSnakeCase and PascalSnakeCase.
// The underline '_' is the only word separator.
//
// The module is organized into these packages:
//
//   - convention: detection (Detect, Is*) and conversion (Convert, To*)
//   - identscan: checks the identifiers declared in Go source against naming rules
//   - nameerrors: structured error types shared by the packages above
//
// The namecase command exposes the same operations on the command line and,
// through its mcp subcommand, as a Model Context Protocol server.
//
// # Quick Start
//
//	set := convention.Detect("userProfile") // [CamelCase]
//	out, err := convention.ToLowerSnakeCase("userProfile") // "user_profile"
//
// # Build Information
//
// Version, Commit and BuildTime report values injected at build time; Info
// bundles them for display.
package namecase
