package mcpserver

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/erraggy/namecase/nameerrors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfig swaps the package configuration for the duration of a test.
func withConfig(t *testing.T, mutate func(c *serverConfig)) {
	t.Helper()
	saved := cfg
	c := *saved
	mutate(&c)
	cfg = &c
	t.Cleanup(func() { cfg = saved })
}

func TestPaginate(t *testing.T) {
	withConfig(t, func(c *serverConfig) {
		c.IssueLimit = 100
		c.MaxLimit = 1000
	})
	items := []int{0, 1, 2, 3, 4}

	tests := []struct {
		name   string
		items  []int
		offset int
		limit  int
		want   []int
	}{
		{"default limit returns all when under 100", items, 0, 0, []int{0, 1, 2, 3, 4}},
		{"explicit limit", items, 0, 2, []int{0, 1}},
		{"offset only", items, 2, 0, []int{2, 3, 4}},
		{"offset and limit", items, 1, 2, []int{1, 2}},
		{"offset at end", items, 4, 2, []int{4}},
		{"offset beyond end", items, 5, 2, nil},
		{"negative offset", items, -1, 2, nil},
		{"limit exceeds remaining", items, 3, 10, []int{3, 4}},
		{"nil slice", nil, 0, 2, nil},
		{"negative limit treated as default", items, 0, -1, []int{0, 1, 2, 3, 4}},
		{"overflow limit", items, 1, math.MaxInt, []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paginate(tt.items, tt.offset, tt.limit))
		})
	}
}

func TestPaginate_DefaultAndMaxLimit(t *testing.T) {
	withConfig(t, func(c *serverConfig) {
		c.IssueLimit = 10
		c.MaxLimit = 20
	})
	items := make([]int, 50)
	for i := range items {
		items[i] = i
	}

	assert.Len(t, paginate(items, 0, 0), 10)
	assert.Len(t, paginate(items, 0, 45), 20)
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[string](0))

	s := makeSlice[string](3)
	assert.NotNil(t, s)
	assert.Empty(t, s)
	assert.Equal(t, 3, cap(s))
}

func TestSanitizeError(t *testing.T) {
	assert.Empty(t, sanitizeError(nil))
	assert.Equal(t,
		"open <path>: no such file or directory",
		sanitizeError(errors.New("open /home/alice/src/app/main.go: no such file or directory")))
	assert.Equal(t, "plain message", sanitizeError(errors.New("plain message")))
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("read /tmp/x.go failed"))
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "read <path> failed", text.Text)
}

func TestCheckBatch(t *testing.T) {
	withConfig(t, func(c *serverConfig) { c.MaxBatch = 2 })

	assert.ErrorContains(t, checkBatch(nil), "names is required")
	assert.NoError(t, checkBatch([]string{"a", "b"}))

	err := checkBatch([]string{"a", "b", "c"})
	assert.ErrorIs(t, err, nameerrors.ErrResourceLimit)
	assert.True(t, strings.Contains(err.Error(), "batch_size"))
}
