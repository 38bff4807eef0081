package cliutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWritef(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{"plain", "Usage: namecase detect [flags] <name...|->\n", nil, "Usage: namecase detect [flags] <name...|->\n"},
		{"verbs", "  %s\n", []any{"UpperCase, LowerCase"}, "  UpperCase, LowerCase\n"},
		{"mixed args", "%d of %d names are not %s", []any{2, 3, "CamelCase"}, "2 of 3 names are not CamelCase"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Writef(&buf, tt.format, tt.args...)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func withStderr(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := Stderr
	Stderr = &buf
	t.Cleanup(func() { Stderr = old })
	return &buf
}

func TestWritef_ReportsFailedWrite(t *testing.T) {
	stderr := withStderr(t)
	Writef(failingWriter{}, "userId\n")
	assert.Equal(t, "namecase: write failed: broken pipe\n", stderr.String())
}

func TestWarnf(t *testing.T) {
	stderr := withStderr(t)
	Warnf("cannot convert %q to %s", "_1a", "PascalCase")
	assert.Equal(t, "Error: cannot convert \"_1a\" to PascalCase\n", stderr.String())
}
