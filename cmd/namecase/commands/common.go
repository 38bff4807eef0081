// Package commands provides CLI command handlers for namecase.
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/namecase/convention"
	"github.com/erraggy/namecase/internal/cliutil"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinArg is the special argument used to indicate reading from stdin.
const StdinArg = "-"

// MaxStdinNames is the most names accepted on stdin by a single command.
const MaxStdinNames = 100000

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(strings.TrimSuffix(string(bytes), "\n"))
	return nil
}

// ReadNames returns the names given as arguments. A single "-" argument
// reads names from stdin instead, one per line.
func ReadNames(args []string) ([]string, error) {
	if len(args) == 1 && args[0] == StdinArg {
		names, err := cliutil.ReadLines(os.Stdin, MaxStdinNames)
		if err != nil {
			return nil, fmt.Errorf("reading names from stdin: %w", err)
		}
		return names, nil
	}
	return args, nil
}

// conventionList formats the known conventions for usage text.
func conventionList() string {
	return strings.Join(convention.NewSet(convention.All()...).Names(), ", ")
}
