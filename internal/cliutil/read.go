package cliutil

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/erraggy/namecase/nameerrors"
)

// ReadLines reads the non-blank lines of r with surrounding whitespace
// trimmed. It fails with a *nameerrors.ResourceLimitError once more than
// limit lines have been read; a non-positive limit disables the check.
func ReadLines(r io.Reader, limit int) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if limit > 0 && len(lines) == limit {
			return nil, &nameerrors.ResourceLimitError{
				ResourceType: "batch_size",
				Limit:        int64(limit),
				Message:      "too many names on input",
			}
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}
