package mcpserver

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/erraggy/namecase/identscan"
	"github.com/erraggy/namecase/internal/options"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type scanInput struct {
	Dir          string   `json:"dir,omitempty"           jsonschema:"Directory of Go files to scan"`
	Files        []string `json:"files,omitempty"         jsonschema:"Go files to scan"`
	Content      string   `json:"content,omitempty"       jsonschema:"Inline Go source to scan"`
	FileName     string   `json:"file_name,omitempty"     jsonschema:"Name reported for inline content (default: source.go)"`
	Recursive    bool     `json:"recursive,omitempty"     jsonschema:"Descend into subdirectories of dir"`
	IncludeTests *bool    `json:"include_tests,omitempty" jsonschema:"Scan _test.go files (default from NAMECASE_SCAN_INCLUDE_TESTS)"`
	Rules        string   `json:"rules,omitempty"         jsonschema:"YAML naming rules merged over the defaults"`
	Offset       int      `json:"offset,omitempty"        jsonschema:"Skip the first N issues"`
	Limit        int      `json:"limit,omitempty"         jsonschema:"Maximum issues to return (default from NAMECASE_ISSUE_LIMIT)"`
}

type scanIssue struct {
	Severity   string `json:"severity"`
	Kind       string `json:"kind"`
	Path       string `json:"path"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

type scanOutput struct {
	FileCount       int         `json:"file_count"`
	IdentifierCount int         `json:"identifier_count"`
	ErrorCount      int         `json:"error_count"`
	WarningCount    int         `json:"warning_count"`
	IssueCount      int         `json:"issue_count"`
	Returned        int         `json:"returned"`
	Issues          []scanIssue `json:"issues,omitempty"`
}

func handleScan(ctx context.Context, _ *mcp.CallToolRequest, input scanInput) (*mcp.CallToolResult, scanOutput, error) {
	opts, err := buildScanOptions(input)
	if err != nil {
		return errResult(err), scanOutput{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.ScanTimeout)
	defer cancel()

	result, err := identscan.ScanWithOptions(ctx, opts...)
	if err != nil {
		return errResult(err), scanOutput{}, nil
	}

	page := paginate(result.Issues, input.Offset, input.Limit)
	output := scanOutput{
		FileCount:       len(result.Files),
		IdentifierCount: len(result.Identifiers),
		ErrorCount:      result.ErrorCount(),
		WarningCount:    result.WarningCount(),
		IssueCount:      len(result.Issues),
		Returned:        len(page),
		Issues:          makeSlice[scanIssue](len(page)),
	}
	for _, issue := range page {
		output.Issues = append(output.Issues, scanIssue{
			Severity:   issue.Severity.String(),
			Kind:       issue.Field,
			Path:       issue.Path,
			Name:       issue.Value,
			Location:   issue.Location(),
			Message:    issue.Message,
			Suggestion: issue.Suggestion,
		})
	}
	return nil, output, nil
}

func buildScanOptions(input scanInput) ([]identscan.Option, error) {
	if err := options.RequireOneInput(
		options.Input{Name: "dir", Set: input.Dir != ""},
		options.Input{Name: "files", Set: len(input.Files) > 0},
		options.Input{Name: "content", Set: input.Content != ""},
	); err != nil {
		return nil, err
	}

	includeTests := cfg.ScanIncludeTests
	if input.IncludeTests != nil {
		includeTests = *input.IncludeTests
	}

	opts := []identscan.Option{
		identscan.WithMaxFiles(cfg.ScanMaxFiles),
		identscan.WithMaxFileSize(cfg.ScanMaxFileSize),
		identscan.WithWorkers(cfg.ScanWorkers),
		identscan.WithIncludeTests(includeTests),
		identscan.WithRecursive(input.Recursive),
	}

	switch {
	case input.Dir != "":
		opts = append(opts, identscan.WithDir(filepath.Clean(input.Dir)))
	case len(input.Files) > 0:
		opts = append(opts, identscan.WithFiles(input.Files...))
	case input.Content != "":
		name := input.FileName
		if name == "" {
			name = "source.go"
		}
		opts = append(opts, identscan.WithSource(name, []byte(input.Content)))
	}

	if input.Rules != "" {
		rules, err := identscan.LoadRules(strings.NewReader(input.Rules))
		if err != nil {
			return nil, err
		}
		opts = append(opts, identscan.WithRules(rules))
	}
	return opts, nil
}
