package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_Empty(t *testing.T) {
	c := NewCursor("")

	assert.True(t, c.Done())
	assert.Equal(t, byte(0), c.Peek())
	assert.Equal(t, "", c.Rest())
	assert.Equal(t, c, c.Advance(), "advancing a done cursor is a no-op")

	_, ok := c.Prev()
	assert.False(t, ok)
}

func TestCursor_AdvanceIsValueSemantics(t *testing.T) {
	start := NewCursor("ab")
	next := start.Advance()

	assert.Equal(t, 0, start.Pos(), "receiver must not move")
	assert.Equal(t, byte('a'), start.Peek())
	assert.Equal(t, 1, next.Pos())
	assert.Equal(t, byte('b'), next.Peek())
	assert.Equal(t, "b", next.Rest())

	prev, ok := next.Prev()
	require.True(t, ok)
	assert.Equal(t, byte('a'), prev)

	end := next.Advance()
	assert.True(t, end.Done())
	prev, ok = end.Prev()
	require.True(t, ok)
	assert.Equal(t, byte('b'), prev)
}

func TestCursor_SkipRun(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantSkip int
		wantRest string
	}{
		{name: "empty", input: "", wantSkip: 0, wantRest: ""},
		{name: "no run", input: "abc", wantSkip: 0, wantRest: "abc"},
		{name: "single separator", input: "_abc", wantSkip: 1, wantRest: "abc"},
		{name: "long run", input: "____a_b", wantSkip: 4, wantRest: "a_b"},
		{name: "only separators", input: "___", wantSkip: 3, wantRest: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := NewCursor(tt.input)
			got, n := start.SkipRun(Separator)
			assert.Equal(t, tt.wantSkip, n)
			assert.Equal(t, tt.wantRest, got.Rest())
			assert.Equal(t, tt.wantSkip, got.Pos())
			assert.Equal(t, 0, start.Pos(), "receiver must not move")
		})
	}
}
