// Package severity provides severity level constants and utilities
// for naming issues reported by the identifier scanner.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error
package severity

import (
	"strings"

	"github.com/erraggy/namecase/nameerrors"
)

// Severity indicates the severity level of a naming issue.
type Severity int

const (
	// SeverityInfo indicates an informational notice that needs no action.
	SeverityInfo Severity = iota

	// SeverityWarning indicates a name that breaks a configured rule but should
	// not fail a check.
	SeverityWarning

	// SeverityError indicates a name that breaks a configured rule and fails a check.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Parse parses a severity name case-insensitively.
func Parse(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return SeverityInfo, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	default:
		return 0, &nameerrors.ConfigError{Option: "severity", Value: s, Message: "must be one of info, warning, error"}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if s < SeverityInfo || s > SeverityError {
		return nil, &nameerrors.ConfigError{Option: "severity", Value: int(s), Message: "unknown severity"}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
