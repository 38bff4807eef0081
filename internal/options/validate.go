// Package options validates the input selection shared by the scanner and
// the front ends that build scanner options.
package options

import (
	"strings"

	"github.com/erraggy/namecase/nameerrors"
)

// Input is one way of naming the source to scan, such as "dir" or "files".
type Input struct {
	Name string
	Set  bool
}

// RequireOneInput returns a *nameerrors.ConfigError unless exactly one of
// inputs is set. The error names every candidate when none is set, and the
// conflicting ones when several are.
func RequireOneInput(inputs ...Input) error {
	var names, set []string
	for _, in := range inputs {
		names = append(names, in.Name)
		if in.Set {
			set = append(set, in.Name)
		}
	}

	switch len(set) {
	case 1:
		return nil
	case 0:
		return &nameerrors.ConfigError{
			Option:  "input",
			Message: "must specify an input source: one of " + strings.Join(names, ", "),
		}
	default:
		return &nameerrors.ConfigError{
			Option:  "input",
			Value:   strings.Join(set, " and "),
			Message: "exactly one input source may be set",
		}
	}
}
