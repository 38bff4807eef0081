package nameerrors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Categories, matched with errors.Is.
var (
	// ErrParse matches a *ParseError.
	ErrParse = errors.New("parse error")

	// ErrResourceLimit matches a *ResourceLimitError.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConversion matches any name that could not be converted.
	ErrConversion = errors.New("conversion error")

	// ErrConfig matches a *ConfigError.
	ErrConfig = errors.New("configuration error")
)

// ParseError reports Go source that does not parse. Line and Column locate
// the first syntax error; Count is how many the parser reported in total.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Count   int
	// Cause is set when the failure carries no position, such as an I/O error
	Cause error
}

// Location returns "path:line:column", dropping the parts that are unknown.
func (e *ParseError) Location() string {
	loc := e.Path
	if loc == "" {
		loc = "<source>"
	}
	if e.Line > 0 {
		loc += ":" + strconv.Itoa(e.Line)
		if e.Column > 0 {
			loc += ":" + strconv.Itoa(e.Column)
		}
	}
	return loc
}

func (e *ParseError) Error() string {
	msg := "cannot parse " + e.Location()
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Count > 1 {
		msg += fmt.Sprintf(" (and %d more errors)", e.Count-1)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ResourceLimitError reports a scan or batch that went over a configured
// limit. ResourceType is one of "file_count", "file_size" or "batch_size".
type ResourceLimitError struct {
	ResourceType string
	Limit        int64
	// Actual is 0 when the caller stopped counting at the limit
	Actual int64
	// Path is the file that broke a per-file limit
	Path    string
	Message string
}

func (e *ResourceLimitError) Error() string {
	resource := e.ResourceType
	if resource == "" {
		resource = "resource"
	}
	msg := resource + " limit exceeded"
	if e.Path != "" {
		msg += " by " + e.Path
	}
	switch {
	case e.Actual > 0:
		msg += fmt.Sprintf(": %d > %d", e.Actual, e.Limit)
	case e.Limit > 0:
		msg += fmt.Sprintf(": more than %d", e.Limit)
	}
	if e.Message != "" {
		msg += " (" + e.Message + ")"
	}
	return msg
}

// Is reports whether target is ErrResourceLimit.
func (e *ResourceLimitError) Is(target error) bool { return target == ErrResourceLimit }

// ConfigError reports an invalid setting: an unknown convention or severity
// name, a malformed rules document, or a bad scanner option.
type ConfigError struct {
	// Option names the setting, e.g. "convention" or "max_files"
	Option string
	// Value is the rejected value; nil when there is none to show
	Value   any
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("invalid ")
	if e.Option != "" {
		b.WriteString(e.Option)
	} else {
		b.WriteString("configuration")
	}
	switch v := e.Value.(type) {
	case nil:
	case string:
		fmt.Fprintf(&b, " %q", v)
	default:
		fmt.Fprintf(&b, " %v", v)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *ConfigError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }
