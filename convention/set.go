package convention

import (
	"encoding/json"
	"strings"
)

// Set is an immutable set of conventions.
// The zero value is the empty set.
type Set uint8

// NewSet returns the set containing the given conventions.
// Invalid conventions are ignored.
func NewSet(conventions ...Convention) Set {
	var s Set
	for _, c := range conventions {
		s = s.with(c)
	}
	return s
}

func (s Set) with(c Convention) Set {
	if !c.IsValid() {
		return s
	}
	return s | 1<<uint(c)
}

// Has reports whether c is in the set.
func (s Set) Has(c Convention) bool {
	return c.IsValid() && s&(1<<uint(c)) != 0
}

// HasAny reports whether any of the given conventions is in the set.
func (s Set) HasAny(conventions ...Convention) bool {
	for _, c := range conventions {
		if s.Has(c) {
			return true
		}
	}
	return false
}

// Len returns the number of conventions in the set.
func (s Set) Len() int {
	n := 0
	for _, c := range all {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the set has no conventions.
func (s Set) IsEmpty() bool {
	return s == 0
}

// Conventions returns the members of the set in declaration order.
// It returns nil for the empty set.
func (s Set) Conventions() []Convention {
	if s.IsEmpty() {
		return nil
	}
	out := make([]Convention, 0, len(all))
	for _, c := range all {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the names of the members in declaration order. The empty set
// yields an empty, non-nil slice so that it serializes as [] rather than null.
func (s Set) Names() []string {
	names := make([]string, 0, s.Len())
	for _, c := range s.Conventions() {
		names = append(names, c.String())
	}
	return names
}

// String returns the members in declaration order, e.g. "[UpperCase PascalCase]".
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range s.Conventions() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteByte(']')
	return b.String()
}

// MarshalJSON encodes the set as an array of convention names.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}
