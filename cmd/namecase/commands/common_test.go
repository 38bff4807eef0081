package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestOutputStructured(t *testing.T) {
	data := []DetectResult{{Name: "userId", Conventions: []string{"CamelCase"}}}

	t.Run("json format", func(t *testing.T) {
		out := captureStdout(t, func() {
			require.NoError(t, OutputStructured(data, FormatJSON))
		})
		var got []DetectResult
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, data, got)
	})

	t.Run("yaml format", func(t *testing.T) {
		out := captureStdout(t, func() {
			require.NoError(t, OutputStructured(data, FormatYAML))
		})
		assert.Contains(t, out, "name: userId")
		assert.Contains(t, out, "- CamelCase")
	})

	t.Run("text is not structured", func(t *testing.T) {
		assert.Error(t, OutputStructured(data, FormatText))
	})
}

func TestReadNames(t *testing.T) {
	t.Run("arguments", func(t *testing.T) {
		names, err := ReadNames([]string{"a", "b"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, names)
	})

	t.Run("stdin", func(t *testing.T) {
		withStdin(t, "userId\n\n  HTTP_SERVER  \n")
		names, err := ReadNames([]string{StdinArg})
		require.NoError(t, err)
		assert.Equal(t, []string{"userId", "HTTP_SERVER"}, names)
	})

	t.Run("dash among other names is literal", func(t *testing.T) {
		names, err := ReadNames([]string{"a", StdinArg})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", StdinArg}, names)
	})
}
