package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/namecase/internal/cliutil"
	"github.com/erraggy/namecase/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: namecase mcp\n\n")
		cliutil.Writef(fs.Output(), "Serve the detect, convert, check and scan tools over MCP on stdio.\n\n")
		cliutil.Writef(fs.Output(), "Environment:\n")
		cliutil.Writef(fs.Output(), "  NAMECASE_MAX_BATCH, NAMECASE_SCAN_MAX_FILES, NAMECASE_SCAN_MAX_FILE_SIZE,\n")
		cliutil.Writef(fs.Output(), "  NAMECASE_SCAN_WORKERS, NAMECASE_SCAN_INCLUDE_TESTS, NAMECASE_SCAN_TIMEOUT,\n")
		cliutil.Writef(fs.Output(), "  NAMECASE_ISSUE_LIMIT, NAMECASE_MAX_LIMIT\n")
		cliutil.Writef(fs.Output(), "\nExample client config:\n")
		cliutil.Writef(fs.Output(), "  {\"mcpServers\": {\"namecase\": {\"command\": \"namecase\", \"args\": [\"mcp\"]}}}\n")
	}

	return fs
}

// HandleMCP executes the mcp command. It blocks until the client
// disconnects or the process is interrupted.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
