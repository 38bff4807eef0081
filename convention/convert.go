package convention

import (
	"strings"

	"github.com/erraggy/namecase/internal/naming"
	"github.com/erraggy/namecase/nameerrors"
)

// MaxLeadingSeparators is the longest run of leading separators a converter
// accepts before it rejects the name with ErrNoLeadingLetter.
const MaxLeadingSeparators = 254

// ToUpperCase converts name to UpperCase.
// Separators are removed and every letter is uppercased.
// Example: "snake_case_name" -> "SNAKECASENAME"
func ToUpperCase(name string) (string, error) { return Convert(name, UpperCase) }

// ToLowerCase converts name to LowerCase.
// Separators are removed and every letter is lowercased.
// Example: "Snake_Case_Name" -> "snakecasename"
func ToLowerCase(name string) (string, error) { return Convert(name, LowerCase) }

// ToCamelCase converts name to CamelCase.
// The first letter is lowercased, separators are removed and the character
// following each separator is uppercased.
// Example: "Pascal_Case" -> "pascalCase"
func ToCamelCase(name string) (string, error) { return Convert(name, CamelCase) }

// ToPascalCase converts name to PascalCase.
// Like ToCamelCase but with the first letter uppercased.
// Example: "snake_case_name" -> "SnakeCaseName"
func ToPascalCase(name string) (string, error) { return Convert(name, PascalCase) }

// ToLowerSnakeCase converts name to LowerSnakeCase.
// A separator is inserted before every uppercase letter that does not already
// follow one, and every letter is lowercased.
// Example: "PascalCaseName" -> "pascal_case_name"
func ToLowerSnakeCase(name string) (string, error) { return Convert(name, LowerSnakeCase) }

// ToUpperSnakeCase converts name to UpperSnakeCase.
// A separator is inserted at every lower-to-upper case transition, and every
// letter is uppercased. Runs of capitals stay one word.
// Example: "PascalCaseName" -> "PASCAL_CASE_NAME"
func ToUpperSnakeCase(name string) (string, error) { return Convert(name, UpperSnakeCase) }

// ToPascalSnakeCase converts name to PascalSnakeCase.
// Letters following a separator are uppercased, and a separator is inserted
// before every other uppercase letter.
// Example: "lower_case_name" -> "Lower_Case_Name"
func ToPascalSnakeCase(name string) (string, error) { return Convert(name, PascalSnakeCase) }

// Convert converts name to the target convention.
//
// Leading separators are skipped and the first letter after them anchors the
// result. It returns a *ConversionError when name is empty or no letter
// follows the leading separators, and a *nameerrors.ConfigError when target is
// not a valid convention.
func Convert(name string, target Convention) (string, error) {
	if !target.IsValid() {
		return "", &nameerrors.ConfigError{Option: "convention", Value: int(target), Message: "unknown naming convention"}
	}

	cur, first, err := anchor(name, target)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(name) + len(name)/2)
	b.WriteByte(first)

	switch target {
	case UpperCase:
		joinWords(&b, cur, naming.ToUpper)
	case LowerCase:
		joinWords(&b, cur, naming.ToLower)
	case CamelCase, PascalCase:
		joinCapitalized(&b, cur)
	case LowerSnakeCase:
		splitWords(&b, cur, naming.ToLower, func(prev byte) bool { return prev != naming.Separator })
	case UpperSnakeCase:
		splitWords(&b, cur, naming.ToUpper, naming.IsLower)
	case PascalSnakeCase:
		splitCapitalized(&b, cur)
	}

	return b.String(), nil
}

// anchor skips the leading separators of name and recases the first letter
// for target. It returns a cursor positioned after that letter.
func anchor(name string, target Convention) (naming.Cursor, byte, error) {
	if name == "" {
		return naming.Cursor{}, 0, &ConversionError{Value: name, Convention: target, Reason: ErrEmptyInput}
	}

	cur, skipped := naming.NewCursor(name).SkipRun(naming.Separator)
	if skipped > MaxLeadingSeparators || cur.Done() || !naming.IsLetter(cur.Peek()) {
		offset := cur.Pos()
		if skipped > MaxLeadingSeparators {
			offset = MaxLeadingSeparators
		}
		return naming.Cursor{}, 0, &ConversionError{Value: name, Convention: target, Reason: ErrNoLeadingLetter, Offset: offset}
	}

	first := cur.Peek()
	if target.startsLower() {
		first = naming.ToLower(first)
	} else {
		first = naming.ToUpper(first)
	}
	return cur.Advance(), first, nil
}

// joinWords drops every separator and recases everything else.
func joinWords(b *strings.Builder, cur naming.Cursor, recase func(byte) byte) {
	for ; !cur.Done(); cur = cur.Advance() {
		if c := cur.Peek(); c != naming.Separator {
			b.WriteByte(recase(c))
		}
	}
}

// joinCapitalized drops every separator and uppercases the character that
// follows a separator run. Other characters keep their case.
func joinCapitalized(b *strings.Builder, cur naming.Cursor) {
	upperNext := false
	for ; !cur.Done(); cur = cur.Advance() {
		c := cur.Peek()
		if c == naming.Separator {
			upperNext = true
			continue
		}
		if upperNext {
			c = naming.ToUpper(c)
			upperNext = false
		}
		b.WriteByte(c)
	}
}

// splitWords keeps existing separators, inserts one before each uppercase
// letter whose preceding source character satisfies boundary, and recases
// every character.
func splitWords(b *strings.Builder, cur naming.Cursor, recase func(byte) byte, boundary func(prev byte) bool) {
	for ; !cur.Done(); cur = cur.Advance() {
		c := cur.Peek()
		if prev, _ := cur.Prev(); naming.IsUpper(c) && boundary(prev) {
			b.WriteByte(naming.Separator)
		}
		b.WriteByte(recase(c))
	}
}

// splitCapitalized keeps existing separators and uppercases the letter after
// each one; any other uppercase letter starts a new word with a separator.
func splitCapitalized(b *strings.Builder, cur naming.Cursor) {
	for ; !cur.Done(); cur = cur.Advance() {
		c := cur.Peek()
		prev, _ := cur.Prev()
		switch {
		case naming.IsLetter(c) && prev == naming.Separator:
			b.WriteByte(naming.ToUpper(c))
		case naming.IsUpper(c):
			b.WriteByte(naming.Separator)
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
}
