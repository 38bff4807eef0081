package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTool(t *testing.T) {
	input := checkInput{
		Names:      []string{"user_id", "UserID", "_1"},
		Convention: "lower_snake_case",
	}
	result, output, err := handleCheck(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.Equal(t, "LowerSnakeCase", output.Convention)
	assert.False(t, output.AllMatch)
	assert.Equal(t, 2, output.MismatchCount)
	assert.Equal(t, []checkResult{
		{Name: "user_id", Matches: true, Conventions: []string{"LowerSnakeCase"}},
		{Name: "UserID", Matches: false, Conventions: []string{"PascalCase"}, Suggestion: "user_i_d"},
		{Name: "_1", Matches: false, Conventions: []string{}},
	}, output.Results)
}

func TestCheckTool_NoSuggestionOutsideConvention(t *testing.T) {
	input := checkInput{Names: []string{"ab", "a_b", "user_name"}, Convention: "PascalSnakeCase"}
	_, output, err := handleCheck(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 3, output.MismatchCount)
	assert.Equal(t, []checkResult{
		{Name: "ab", Matches: false, Conventions: []string{"LowerCase", "CamelCase"}},
		{Name: "a_b", Matches: false, Conventions: []string{"LowerSnakeCase"}},
		{Name: "user_name", Matches: false, Conventions: []string{"LowerSnakeCase"}, Suggestion: "User_Name"},
	}, output.Results)
}

func TestCheckTool_AllMatch(t *testing.T) {
	input := checkInput{Names: []string{"Lower_Case_Name", "Http_Server"}, Convention: "PascalSnakeCase"}
	_, output, err := handleCheck(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.True(t, output.AllMatch)
	assert.Zero(t, output.MismatchCount)
}

func TestCheckTool_Errors(t *testing.T) {
	result, _, err := handleCheck(context.Background(), &mcp.CallToolRequest{}, checkInput{Names: []string{"a"}})
	require.NoError(t, err)
	assert.True(t, result.IsError)

	result, _, err = handleCheck(context.Background(), &mcp.CallToolRequest{}, checkInput{Names: []string{"a"}, Convention: "dotted"})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
