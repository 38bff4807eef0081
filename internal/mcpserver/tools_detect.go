package mcpserver

import (
	"context"

	"github.com/erraggy/namecase/convention"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type detectInput struct {
	Names []string `json:"names" jsonschema:"Names to classify"`
}

type detectResult struct {
	Name        string   `json:"name"`
	Conventions []string `json:"conventions"`
}

type detectOutput struct {
	Results []detectResult `json:"results"`
}

func handleDetect(_ context.Context, _ *mcp.CallToolRequest, input detectInput) (*mcp.CallToolResult, detectOutput, error) {
	if err := checkBatch(input.Names); err != nil {
		return errResult(err), detectOutput{}, nil
	}

	output := detectOutput{Results: make([]detectResult, 0, len(input.Names))}
	for _, name := range input.Names {
		output.Results = append(output.Results, detectResult{
			Name:        name,
			Conventions: convention.Detect(name).Names(),
		})
	}
	return nil, output, nil
}
