// Package nameerrors provides the error categories shared by the namecase
// packages.
//
// Import path: github.com/erraggy/namecase/nameerrors
//
// Each category has a sentinel for use with [errors.Is] and, where callers
// need details, a struct type for use with [errors.As].
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrConversion]: Matches any failed name conversion. The detailed type,
//     convention.ConversionError, lives next to the converter so that it can
//     carry the typed target convention.
//
// # Usage Examples
//
//	out, err := convention.ToPascalCase(name)
//	if errors.Is(err, nameerrors.ErrConversion) {
//	    // name has no letter to anchor the conversion
//	}
//
//	var parseErr *nameerrors.ParseError
//	if errors.As(err, &parseErr) {
//	    fmt.Printf("%s: %s\n", parseErr.Location(), parseErr.Message)
//	}
package nameerrors
