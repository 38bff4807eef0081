package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/namecase/convention"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Names      []string `json:"names"      jsonschema:"Names to convert"`
	Convention string   `json:"convention" jsonschema:"Target convention (e.g. PascalCase\\, lower_snake\\, constant)"`
}

type convertResult struct {
	Name      string `json:"name"`
	Converted string `json:"converted,omitempty"`
	Error     string `json:"error,omitempty"`
}

type convertOutput struct {
	Convention   string          `json:"convention"`
	Results      []convertResult `json:"results"`
	FailureCount int             `json:"failure_count"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	if input.Convention == "" {
		return errResult(fmt.Errorf("convention is required")), convertOutput{}, nil
	}
	target, err := convention.ParseConvention(input.Convention)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	if err := checkBatch(input.Names); err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		Convention: target.String(),
		Results:    make([]convertResult, 0, len(input.Names)),
	}
	for _, name := range input.Names {
		converted, err := convention.Convert(name, target)
		if err != nil {
			output.FailureCount++
			output.Results = append(output.Results, convertResult{Name: name, Error: err.Error()})
			continue
		}
		output.Results = append(output.Results, convertResult{Name: name, Converted: converted})
	}
	return nil, output, nil
}
