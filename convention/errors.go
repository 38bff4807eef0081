package convention

import (
	"errors"
	"fmt"

	"github.com/erraggy/namecase/nameerrors"
)

// Reasons a conversion can fail. Use errors.Is to check for them.
var (
	// ErrEmptyInput indicates a zero-length name was given to a converter.
	ErrEmptyInput = errors.New("name is empty")

	// ErrNoLeadingLetter indicates that no letter follows the leading
	// separators, including names made only of separators and names with an
	// implausibly long leading separator run.
	ErrNoLeadingLetter = errors.New("name does not start with a letter")
)

// ConversionError reports a name that could not be converted.
// It matches nameerrors.ErrConversion and unwraps to its Reason.
type ConversionError struct {
	// Value is the name that was given to the converter
	Value string
	// Convention is the requested target convention
	Convention Convention
	// Reason is ErrEmptyInput or ErrNoLeadingLetter
	Reason error
	// Offset is the byte offset of the offending character (0 for empty input)
	Offset int
}

// Error returns a human-readable error message.
func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("cannot convert %q to %s", e.Value, e.Convention)
	if e.Reason != nil {
		msg += ": " + e.Reason.Error()
	}
	if errors.Is(e.Reason, ErrNoLeadingLetter) && e.Offset < len(e.Value) {
		msg += fmt.Sprintf(" (found %q at offset %d)", e.Value[e.Offset], e.Offset)
	}
	return msg
}

// Unwrap returns the reason for error chaining.
func (e *ConversionError) Unwrap() error {
	return e.Reason
}

// Is reports whether target matches this error category.
func (e *ConversionError) Is(target error) bool {
	return target == nameerrors.ErrConversion
}
