package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/erraggy/namecase/internal/cliutil"
	"github.com/erraggy/namecase/nameerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleConvert(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"pascal", []string{"-c", "PascalCase", "user_id", "getHTTPResponse"}, "UserId\nGetHTTPResponse\n"},
		{"snake alias", []string{"--convention", "snake", "getHTTPResponse"}, "get_h_t_t_p_response\n"},
		{"constant alias", []string{"-c", "constant", "maxItems"}, "MAX_ITEMS\n"},
		{"leading separators dropped", []string{"-c", "camel", "__Item_Count"}, "itemCount\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureStdout(t, func() {
				require.NoError(t, HandleConvert(tt.args))
			})
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestHandleConvert_PartialFailure(t *testing.T) {
	var err error
	out := captureStdout(t, func() {
		err = HandleConvert([]string{"-q", "-c", "PascalCase", "user_id", "_1a"})
	})
	require.Error(t, err)
	assert.Equal(t, "1 of 2 names could not be converted to PascalCase", err.Error())
	assert.Equal(t, "UserId\n", out)
}

func TestHandleConvert_ReportsFailuresOnStderr(t *testing.T) {
	var stderr bytes.Buffer
	old := cliutil.Stderr
	cliutil.Stderr = &stderr
	t.Cleanup(func() { cliutil.Stderr = old })

	var err error
	out := captureStdout(t, func() {
		err = HandleConvert([]string{"-c", "PascalCase", "_1a", "user_id"})
	})
	require.Error(t, err)
	assert.Equal(t, "UserId\n", out)
	assert.True(t, strings.HasPrefix(stderr.String(), `Error: cannot convert "_1a" to PascalCase`), stderr.String())
}

func TestHandleConvert_JSON(t *testing.T) {
	var err error
	out := captureStdout(t, func() {
		err = HandleConvert([]string{"-f", "json", "-c", "lower_snake", "ItemCount", ""})
	})
	require.Error(t, err)

	var got []ConvertResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, ConvertResult{Name: "ItemCount", Converted: "item_count"}, got[0])
	assert.Empty(t, got[1].Converted)
	assert.NotEmpty(t, got[1].Error)
}

func TestHandleConvert_Stdin(t *testing.T) {
	withStdin(t, "item_count\nitemCount\n")
	out := captureStdout(t, func() {
		require.NoError(t, HandleConvert([]string{"-c", "PascalSnakeCase", "-"}))
	})
	assert.Equal(t, "Item_Count\nItem_Count\n", out)
}

func TestHandleConvert_Errors(t *testing.T) {
	t.Run("missing convention", func(t *testing.T) {
		err := HandleConvert([]string{"userId"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "target convention is required")
	})

	t.Run("unknown convention", func(t *testing.T) {
		err := HandleConvert([]string{"-c", "kebab", "userId"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, nameerrors.ErrConfig))
	})

	t.Run("no names", func(t *testing.T) {
		err := HandleConvert([]string{"-c", "camel"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one name")
	})

	t.Run("help", func(t *testing.T) {
		assert.NoError(t, HandleConvert([]string{"-h"}))
	})
}
