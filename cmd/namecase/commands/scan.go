package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/erraggy/namecase/identscan"
	"github.com/erraggy/namecase/internal/cliutil"
	"github.com/erraggy/namecase/nameerrors"
)

// stdinSourceName is the file name reported for source read from stdin.
const stdinSourceName = "stdin.go"

// ScanFlags contains flags for the scan command
type ScanFlags struct {
	Rules        string
	Recursive    bool
	IncludeTests bool
	MaxFiles     int
	MaxFileSize  int64
	Workers      int
	Timeout      time.Duration
	Format       string
	Quiet        bool
	Verbose      bool
}

// ScanIssue is the structured output for one naming issue.
type ScanIssue struct {
	Severity   string `json:"severity" yaml:"severity"`
	Kind       string `json:"kind" yaml:"kind"`
	Path       string `json:"path" yaml:"path"`
	Name       string `json:"name" yaml:"name"`
	Location   string `json:"location" yaml:"location"`
	Message    string `json:"message" yaml:"message"`
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// ScanOutput is the structured output of the scan command.
type ScanOutput struct {
	FileCount       int         `json:"file_count" yaml:"file_count"`
	IdentifierCount int         `json:"identifier_count" yaml:"identifier_count"`
	ErrorCount      int         `json:"error_count" yaml:"error_count"`
	WarningCount    int         `json:"warning_count" yaml:"warning_count"`
	Issues          []ScanIssue `json:"issues" yaml:"issues"`
}

// SetupScanFlags creates and configures a FlagSet for the scan command.
// Returns the FlagSet and a ScanFlags struct with bound flag variables.
func SetupScanFlags() (*flag.FlagSet, *ScanFlags) {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	flags := &ScanFlags{}

	fs.StringVar(&flags.Rules, "rules", "", "YAML file with naming rules (default: PascalCase or CamelCase everywhere)")
	fs.BoolVar(&flags.Recursive, "r", false, "descend into subdirectories")
	fs.BoolVar(&flags.Recursive, "recursive", false, "descend into subdirectories")
	fs.BoolVar(&flags.IncludeTests, "tests", false, "include _test.go files")
	fs.IntVar(&flags.MaxFiles, "max-files", identscan.DefaultMaxFiles, "most files to scan")
	fs.Int64Var(&flags.MaxFileSize, "max-file-size", identscan.DefaultMaxFileSize, "largest file to scan, in bytes")
	fs.IntVar(&flags.Workers, "workers", runtime.GOMAXPROCS(0), "files parsed concurrently")
	fs.DurationVar(&flags.Timeout, "timeout", 0, "abort the scan after this long (default: no limit)")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only print the summary")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only print the summary")
	fs.BoolVar(&flags.Verbose, "v", false, "log scan progress to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log scan progress to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: namecase scan [flags] [dir|file.go...|-]\n\n")
		cliutil.Writef(fs.Output(), "Scan Go source for declared names that break the naming rules.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nRules file:\n")
		cliutil.Writef(fs.Output(), "  allow: [PascalCase, CamelCase]\n")
		cliutil.Writef(fs.Output(), "  severity: error\n")
		cliutil.Writef(fs.Output(), "  kinds:\n")
		cliutil.Writef(fs.Output(), "    const: {allow: [PascalCase, CamelCase, UpperSnakeCase], severity: warning}\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  namecase scan\n")
		cliutil.Writef(fs.Output(), "  namecase scan -r --rules naming.yaml ./internal\n")
		cliutil.Writef(fs.Output(), "  namecase scan -f json main.go util.go\n")
		cliutil.Writef(fs.Output(), "  cat main.go | namecase scan -\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    No error-severity issues\n")
		cliutil.Writef(fs.Output(), "  1    Error-severity issues found or the scan failed\n")
	}

	return fs, flags
}

// HandleScan executes the scan command
func HandleScan(args []string) error {
	fs, flags := SetupScanFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	opts, err := buildScanOptions(flags, fs.Args())
	if err != nil {
		return err
	}

	ctx := context.Background()
	if flags.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flags.Timeout)
		defer cancel()
	}

	result, err := identscan.ScanWithOptions(ctx, opts...)
	if err != nil {
		return err
	}

	if flags.Format != FormatText {
		if err := OutputStructured(newScanOutput(result), flags.Format); err != nil {
			return err
		}
	} else {
		if !flags.Quiet {
			for _, issue := range result.Issues {
				fmt.Println(issue.String())
			}
		}
		fmt.Printf("%d files, %d identifiers, %d errors, %d warnings\n",
			len(result.Files), len(result.Identifiers), result.ErrorCount(), result.WarningCount())
	}

	if result.HasErrors() {
		return fmt.Errorf("found %d naming errors", result.ErrorCount())
	}
	return nil
}

func buildScanOptions(flags *ScanFlags, args []string) ([]identscan.Option, error) {
	opts := []identscan.Option{
		identscan.WithRecursive(flags.Recursive),
		identscan.WithIncludeTests(flags.IncludeTests),
		identscan.WithMaxFiles(flags.MaxFiles),
		identscan.WithMaxFileSize(flags.MaxFileSize),
		identscan.WithWorkers(flags.Workers),
	}

	if flags.Verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, identscan.WithLogger(identscan.NewSlogAdapter(slog.New(handler))))
	}

	if flags.Rules != "" {
		rules, err := identscan.LoadRulesFile(flags.Rules)
		if err != nil {
			return nil, err
		}
		opts = append(opts, identscan.WithRules(rules))
	}

	switch {
	case len(args) == 0:
		opts = append(opts, identscan.WithDir("."))
	case len(args) == 1 && args[0] == StdinArg:
		src, err := readStdinSource(flags.MaxFileSize)
		if err != nil {
			return nil, err
		}
		opts = append(opts, identscan.WithSource(stdinSourceName, src))
	case len(args) == 1 && isDir(args[0]):
		opts = append(opts, identscan.WithDir(args[0]))
	default:
		opts = append(opts, identscan.WithFiles(args...))
	}
	return opts, nil
}

func readStdinSource(limit int64) ([]byte, error) {
	src, err := io.ReadAll(io.LimitReader(os.Stdin, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading source from stdin: %w", err)
	}
	if int64(len(src)) > limit {
		return nil, &nameerrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        limit,
			Path:         stdinSourceName,
		}
	}
	return src, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func newScanOutput(result *identscan.Result) ScanOutput {
	output := ScanOutput{
		FileCount:       len(result.Files),
		IdentifierCount: len(result.Identifiers),
		ErrorCount:      result.ErrorCount(),
		WarningCount:    result.WarningCount(),
		Issues:          make([]ScanIssue, 0, len(result.Issues)),
	}
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, ScanIssue{
			Severity:   issue.Severity.String(),
			Kind:       issue.Field,
			Path:       issue.Path,
			Name:       issue.Value,
			Location:   issue.Location(),
			Message:    issue.Message,
			Suggestion: issue.Suggestion,
		})
	}
	return output
}
