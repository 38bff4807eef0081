package identscan

import (
	"strings"

	"github.com/erraggy/namecase/nameerrors"
)

// Kind identifies the kind of declaration an identifier names.
type Kind int

const (
	// KindType is a type declaration.
	KindType Kind = iota
	// KindFunc is a function without a receiver.
	KindFunc
	// KindMethod is a method, either on a concrete type or in an interface.
	KindMethod
	// KindField is a struct field.
	KindField
	// KindConst is a package-level constant.
	KindConst
	// KindVar is a package-level variable.
	KindVar

	numKinds
)

var kindNames = [numKinds]string{"type", "func", "method", "field", "const", "var"}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds)
	for k := KindType; k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown"
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind parses a kind name such as "method" or "const".
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == key {
			return Kind(k), nil
		}
	}
	return 0, &nameerrors.ConfigError{
		Option:  "kind",
		Value:   s,
		Message: "must be one of " + strings.Join(kindNames[:], ", "),
	}
}
