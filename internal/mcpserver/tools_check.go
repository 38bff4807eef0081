package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/namecase/convention"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type checkInput struct {
	Names      []string `json:"names"      jsonschema:"Names to check"`
	Convention string   `json:"convention" jsonschema:"Convention the names must satisfy"`
}

type checkResult struct {
	Name        string   `json:"name"`
	Matches     bool     `json:"matches"`
	Conventions []string `json:"conventions"`
	Suggestion  string   `json:"suggestion,omitempty"`
}

type checkOutput struct {
	Convention    string        `json:"convention"`
	AllMatch      bool          `json:"all_match"`
	MismatchCount int           `json:"mismatch_count"`
	Results       []checkResult `json:"results"`
}

func handleCheck(_ context.Context, _ *mcp.CallToolRequest, input checkInput) (*mcp.CallToolResult, checkOutput, error) {
	if input.Convention == "" {
		return errResult(fmt.Errorf("convention is required")), checkOutput{}, nil
	}
	want, err := convention.ParseConvention(input.Convention)
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}
	if err := checkBatch(input.Names); err != nil {
		return errResult(err), checkOutput{}, nil
	}

	output := checkOutput{
		Convention: want.String(),
		Results:    make([]checkResult, 0, len(input.Names)),
	}
	for _, name := range input.Names {
		detected := convention.Detect(name)
		r := checkResult{
			Name:        name,
			Matches:     detected.Has(want),
			Conventions: detected.Names(),
		}
		if !r.Matches {
			output.MismatchCount++
			// A conversion that still does not classify as want is no help.
			if converted, err := convention.Convert(name, want); err == nil && convention.Is(converted, want) {
				r.Suggestion = converted
			}
		}
		output.Results = append(output.Results, r)
	}
	output.AllMatch = output.MismatchCount == 0
	return nil, output, nil
}
