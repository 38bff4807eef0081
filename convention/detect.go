package convention

import "github.com/erraggy/namecase/internal/naming"

// features are the facts about a name that the detection rules consult.
type features struct {
	startsWithSeparator bool
	startsWithLower     bool
	startsWithUpper     bool

	containsSeparator bool
	containsLower     bool
	containsUpper     bool

	containsLowerAfterSeparator bool
	containsUpperAfterSeparator bool
	containsUpperAfterLower     bool
}

// scanFeatures computes the features of a non-empty name in a single pass.
func scanFeatures(name string) features {
	first := name[0]
	f := features{
		startsWithSeparator: first == naming.Separator,
		startsWithLower:     naming.IsLower(first),
		startsWithUpper:     naming.IsUpper(first),
	}

	var prev byte
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == naming.Separator:
			f.containsSeparator = true
		case naming.IsLower(c):
			f.containsLower = true
			if prev == naming.Separator {
				f.containsLowerAfterSeparator = true
			}
		case naming.IsUpper(c):
			f.containsUpper = true
			if prev == naming.Separator {
				f.containsUpperAfterSeparator = true
			}
			if naming.IsLower(prev) {
				f.containsUpperAfterLower = true
			}
		}
		prev = c
	}
	return f
}

// Detect returns every convention that name satisfies.
//
// The result is empty when name is empty, starts with a digit, or contains no
// letter. Otherwise a name without separators can be UpperCase, LowerCase,
// CamelCase or PascalCase, and a name with separators can be LowerSnakeCase,
// UpperSnakeCase or PascalSnakeCase.
func Detect(name string) Set {
	if name == "" || naming.IsDigit(name[0]) {
		return 0
	}

	f := scanFeatures(name)
	if !f.containsLower && !f.containsUpper {
		return 0
	}

	var s Set
	if !f.containsSeparator {
		if f.startsWithUpper {
			s = s.with(PascalCase)
			if !f.containsLower {
				s = s.with(UpperCase)
			}
		}
		if f.startsWithLower {
			s = s.with(CamelCase)
			if !f.containsUpper {
				s = s.with(LowerCase)
			}
		}
		return s
	}

	if (f.startsWithSeparator || f.startsWithLower) && !f.containsUpper {
		s = s.with(LowerSnakeCase)
	}
	if (f.startsWithSeparator || f.startsWithUpper) && !f.containsLower {
		s = s.with(UpperSnakeCase)
	}
	if (f.startsWithSeparator || f.startsWithUpper) &&
		f.containsUpperAfterSeparator &&
		!f.containsUpperAfterLower &&
		f.containsLower &&
		!f.containsLowerAfterSeparator {
		s = s.with(PascalSnakeCase)
	}
	return s
}

// Is reports whether name satisfies convention c.
func Is(name string, c Convention) bool {
	return Detect(name).Has(c)
}

// IsUpperCase reports whether name satisfies UpperCase.
func IsUpperCase(name string) bool { return Is(name, UpperCase) }

// IsLowerCase reports whether name satisfies LowerCase.
func IsLowerCase(name string) bool { return Is(name, LowerCase) }

// IsCamelCase reports whether name satisfies CamelCase.
func IsCamelCase(name string) bool { return Is(name, CamelCase) }

// IsPascalCase reports whether name satisfies PascalCase.
func IsPascalCase(name string) bool { return Is(name, PascalCase) }

// IsLowerSnakeCase reports whether name satisfies LowerSnakeCase.
func IsLowerSnakeCase(name string) bool { return Is(name, LowerSnakeCase) }

// IsUpperSnakeCase reports whether name satisfies UpperSnakeCase.
func IsUpperSnakeCase(name string) bool { return Is(name, UpperSnakeCase) }

// IsPascalSnakeCase reports whether name satisfies PascalSnakeCase.
func IsPascalSnakeCase(name string) bool { return Is(name, PascalSnakeCase) }
