// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes namecase capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"regexp"

	"github.com/erraggy/namecase"
	"github.com/erraggy/namecase/nameerrors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `namecase MCP server: detects, converts and checks identifier naming conventions, and scans Go source for naming violations.

Conventions: UpperCase, LowerCase, CamelCase, PascalCase, LowerSnakeCase, UpperSnakeCase, PascalSnakeCase. Names are also accepted in aliases such as "snake", "constant" or "pascal_snake". The underline is the only word separator; matching is ASCII-only.

Configuration: All defaults are configurable via NAMECASE_* environment variables set in your MCP client config.

Key settings:
- NAMECASE_MAX_BATCH (default: 1000): most names per detect/convert/check call
- NAMECASE_SCAN_MAX_FILES (default: 10000): most files per scan
- NAMECASE_SCAN_MAX_FILE_SIZE (default: 10MiB): largest file a scan reads
- NAMECASE_SCAN_WORKERS (default: GOMAXPROCS): files parsed concurrently
- NAMECASE_SCAN_INCLUDE_TESTS (default: false): scan _test.go files by default
- NAMECASE_SCAN_TIMEOUT (default: 60s): scan deadline
- NAMECASE_ISSUE_LIMIT (default: 100): default page size for scan issues
- NAMECASE_MAX_LIMIT (default: 1000): largest page size a scan call may request`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := newServer()
	return server.Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "namecase", Version: namecase.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect",
		Description: "Detect the naming conventions each name satisfies. A name can satisfy several conventions (\"A\" is both UpperCase and PascalCase) or none (\"1abc\", \"A_a\"). Returns one result per input name, in input order.",
	}, handleDetect)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert names to a target naming convention. Leading underlines are dropped and the first letter anchors the result. Names that cannot be converted (empty, or no letter after the leading underlines) are reported per name in the error field; the other names still convert.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check",
		Description: "Check whether names satisfy a naming convention. Returns per-name results with the detected conventions and, for failing names, a suggested conversion. all_match is true only when every name satisfies the convention.",
	}, handleCheck)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scan",
		Description: "Scan Go source for declared identifiers (types, funcs, methods, fields, package-level consts and vars) that break naming rules. Provide exactly one of dir, files, or content. Default rules allow PascalCase and CamelCase; pass rules as YAML to override per kind. Use offset/limit to paginate through issues.",
	}, handleScan)
}

// checkBatch rejects empty batches and batches above cfg.MaxBatch.
func checkBatch(names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("names is required")
	}
	if len(names) > cfg.MaxBatch {
		return &nameerrors.ResourceLimitError{
			ResourceType: "batch_size",
			Limit:        int64(cfg.MaxBatch),
			Actual:       int64(len(names)),
		}
	}
	return nil
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.IssueLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.IssueLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
