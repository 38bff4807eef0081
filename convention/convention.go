package convention

import (
	"strings"

	"github.com/erraggy/namecase/nameerrors"
	"golang.org/x/text/cases"
)

// Convention identifies an identifier naming convention.
type Convention int

const (
	// UpperCase names contain no separator and no lowercase letters.
	// Example: "USERPROFILE"
	UpperCase Convention = iota + 1

	// LowerCase names contain no separator and no uppercase letters.
	// Example: "userprofile"
	LowerCase

	// CamelCase names start with a lowercase letter and contain no separator.
	// Example: "userProfile"
	CamelCase

	// PascalCase names start with an uppercase letter and contain no separator.
	// Example: "UserProfile"
	PascalCase

	// LowerSnakeCase names contain separators and no uppercase letters.
	// Example: "user_profile"
	LowerSnakeCase

	// UpperSnakeCase names contain separators and no lowercase letters.
	// Example: "USER_PROFILE"
	UpperSnakeCase

	// PascalSnakeCase names contain separators, every separator is followed by
	// an uppercase letter, and uppercase letters never directly follow
	// lowercase ones.
	// Example: "User_Profile"
	PascalSnakeCase
)

// all lists every convention in declaration order.
var all = [...]Convention{
	UpperCase,
	LowerCase,
	CamelCase,
	PascalCase,
	LowerSnakeCase,
	UpperSnakeCase,
	PascalSnakeCase,
}

// All returns every convention in declaration order.
func All() []Convention {
	out := make([]Convention, len(all))
	copy(out, all[:])
	return out
}

// String returns the name of the convention.
func (c Convention) String() string {
	switch c {
	case UpperCase:
		return "UpperCase"
	case LowerCase:
		return "LowerCase"
	case CamelCase:
		return "CamelCase"
	case PascalCase:
		return "PascalCase"
	case LowerSnakeCase:
		return "LowerSnakeCase"
	case UpperSnakeCase:
		return "UpperSnakeCase"
	case PascalSnakeCase:
		return "PascalSnakeCase"
	default:
		return "unknown"
	}
}

// IsValid reports whether c is one of the defined conventions.
func (c Convention) IsValid() bool {
	return c >= UpperCase && c <= PascalSnakeCase
}

// IsSnake reports whether names in convention c are separated by underlines.
func (c Convention) IsSnake() bool {
	return c == LowerSnakeCase || c == UpperSnakeCase || c == PascalSnakeCase
}

// startsLower reports whether the first letter of a converted name is lowercase.
func (c Convention) startsLower() bool {
	return c == LowerCase || c == CamelCase || c == LowerSnakeCase
}

// MarshalText implements encoding.TextMarshaler.
func (c Convention) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, &nameerrors.ConfigError{Option: "convention", Value: int(c), Message: "unknown naming convention"}
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseConvention.
func (c *Convention) UnmarshalText(text []byte) error {
	parsed, err := ParseConvention(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// aliases maps folded, separator-free spellings to conventions.
var aliases = map[string]Convention{
	"upper":           UpperCase,
	"uppercase":       UpperCase,
	"flatupper":       UpperCase,
	"lower":           LowerCase,
	"lowercase":       LowerCase,
	"flat":            LowerCase,
	"camel":           CamelCase,
	"camelcase":       CamelCase,
	"lowercamel":      CamelCase,
	"lowercamelcase":  CamelCase,
	"pascal":          PascalCase,
	"pascalcase":      PascalCase,
	"uppercamel":      PascalCase,
	"uppercamelcase":  PascalCase,
	"snake":           LowerSnakeCase,
	"snakecase":       LowerSnakeCase,
	"lowersnake":      LowerSnakeCase,
	"lowersnakecase":  LowerSnakeCase,
	"uppersnake":      UpperSnakeCase,
	"uppersnakecase":  UpperSnakeCase,
	"screamingsnake":  UpperSnakeCase,
	"constant":        UpperSnakeCase,
	"constantcase":    UpperSnakeCase,
	"pascalsnake":     PascalSnakeCase,
	"pascalsnakecase": PascalSnakeCase,
	"titlesnake":      PascalSnakeCase,
}

// ParseConvention parses a convention name. Matching ignores case and the
// characters '_', '-' and ' ', so "PascalSnakeCase", "pascal_snake" and
// "Pascal-Snake-Case" all parse to PascalSnakeCase. Common aliases such as
// "snake" and "constant" are accepted.
func ParseConvention(s string) (Convention, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ':
			return -1
		}
		return r
	}, cases.Fold().String(strings.TrimSpace(s)))

	if c, ok := aliases[key]; ok {
		return c, nil
	}
	return 0, &nameerrors.ConfigError{
		Option:  "convention",
		Value:   s,
		Message: "unknown naming convention; valid conventions: " + validNames(),
	}
}

func validNames() string {
	names := make([]string, 0, len(all))
	for _, c := range all {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
