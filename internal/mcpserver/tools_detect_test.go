package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectTool(t *testing.T) {
	input := detectInput{Names: []string{"A", "userProfile", "SNAKE_CASE", "1abc"}}
	result, output, err := handleDetect(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.Equal(t, []detectResult{
		{Name: "A", Conventions: []string{"UpperCase", "PascalCase"}},
		{Name: "userProfile", Conventions: []string{"CamelCase"}},
		{Name: "SNAKE_CASE", Conventions: []string{"UpperSnakeCase"}},
		{Name: "1abc", Conventions: []string{}},
	}, output.Results)
}

func TestDetectTool_NoNames(t *testing.T) {
	result, _, err := handleDetect(context.Background(), &mcp.CallToolRequest{}, detectInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestDetectTool_BatchLimit(t *testing.T) {
	withConfig(t, func(c *serverConfig) { c.MaxBatch = 1 })

	result, _, err := handleDetect(context.Background(), &mcp.CallToolRequest{}, detectInput{Names: []string{"a", "b"}})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
