package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/namecase/convention"
	"github.com/erraggy/namecase/internal/cliutil"
)

// CheckFlags contains flags for the check command
type CheckFlags struct {
	Convention string
	Format     string
	Quiet      bool
}

// CheckResult is the structured output for one name.
type CheckResult struct {
	Name        string   `json:"name" yaml:"name"`
	Matches     bool     `json:"matches" yaml:"matches"`
	Conventions []string `json:"conventions" yaml:"conventions"`
	Suggestion  string   `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// SetupCheckFlags creates and configures a FlagSet for the check command.
// Returns the FlagSet and a CheckFlags struct with bound flag variables.
func SetupCheckFlags() (*flag.FlagSet, *CheckFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &CheckFlags{}

	fs.StringVar(&flags.Convention, "c", "", "required convention (required)")
	fs.StringVar(&flags.Convention, "convention", "", "required convention (required)")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: report through the exit code only")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: report through the exit code only")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: namecase check -c <convention> [flags] <name...|->\n\n")
		cliutil.Writef(fs.Output(), "Check that every name satisfies a naming convention.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nConventions:\n")
		cliutil.Writef(fs.Output(), "  %s\n", conventionList())
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  namecase check -c CamelCase userId itemCount\n")
		cliutil.Writef(fs.Output(), "  git diff --name-only | xargs -n1 basename | namecase check -q -c snake -\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Every name satisfies the convention\n")
		cliutil.Writef(fs.Output(), "  1    At least one name does not\n")
	}

	return fs, flags
}

// HandleCheck executes the check command
func HandleCheck(args []string) error {
	fs, flags := SetupCheckFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if flags.Convention == "" {
		fs.Usage()
		return fmt.Errorf("convention is required (use -c or --convention)")
	}
	want, err := convention.ParseConvention(flags.Convention)
	if err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("check command requires at least one name or '-' for stdin")
	}

	names, err := ReadNames(fs.Args())
	if err != nil {
		return err
	}

	results := make([]CheckResult, 0, len(names))
	mismatches := 0
	for _, name := range names {
		detected := convention.Detect(name)
		r := CheckResult{
			Name:        name,
			Matches:     detected.Has(want),
			Conventions: detected.Names(),
		}
		if !r.Matches {
			mismatches++
			// A conversion that still does not classify as want is no help.
			if converted, err := convention.Convert(name, want); err == nil && convention.Is(converted, want) {
				r.Suggestion = converted
			}
		}
		results = append(results, r)
	}

	switch {
	case flags.Quiet:
	case flags.Format != FormatText:
		if err := OutputStructured(results, flags.Format); err != nil {
			return err
		}
	default:
		for _, r := range results {
			printCheckResult(r, want)
		}
	}

	if mismatches > 0 {
		return fmt.Errorf("%d of %d names are not %s", mismatches, len(names), want)
	}
	return nil
}

func printCheckResult(r CheckResult, want convention.Convention) {
	if r.Matches {
		fmt.Printf("✓ %s\n", r.Name)
		return
	}
	is := "no convention"
	if len(r.Conventions) > 0 {
		is = strings.Join(r.Conventions, " or ")
	}
	line := fmt.Sprintf("✗ %s: is %s; want %s", r.Name, is, want)
	if r.Suggestion != "" {
		line += fmt.Sprintf(" (suggestion: %s)", r.Suggestion)
	}
	fmt.Println(line)
}
