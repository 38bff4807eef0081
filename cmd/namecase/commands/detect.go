package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/namecase/convention"
	"github.com/erraggy/namecase/internal/cliutil"
)

// DetectFlags contains flags for the detect command
type DetectFlags struct {
	Format string
}

// DetectResult is the structured output for one name.
type DetectResult struct {
	Name        string   `json:"name" yaml:"name"`
	Conventions []string `json:"conventions" yaml:"conventions"`
}

// SetupDetectFlags creates and configures a FlagSet for the detect command.
// Returns the FlagSet and a DetectFlags struct with bound flag variables.
func SetupDetectFlags() (*flag.FlagSet, *DetectFlags) {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	flags := &DetectFlags{}

	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: namecase detect [flags] <name...|->\n\n")
		cliutil.Writef(fs.Output(), "Report the naming conventions each name satisfies.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nConventions:\n")
		cliutil.Writef(fs.Output(), "  %s\n", conventionList())
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  namecase detect userId HTTP_SERVER\n")
		cliutil.Writef(fs.Output(), "  namecase detect -f json A\n")
		cliutil.Writef(fs.Output(), "  cat names.txt | namecase detect -\n")
	}

	return fs, flags
}

// HandleDetect executes the detect command
func HandleDetect(args []string) error {
	fs, flags := SetupDetectFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("detect command requires at least one name or '-' for stdin")
	}

	names, err := ReadNames(fs.Args())
	if err != nil {
		return err
	}

	results := make([]DetectResult, 0, len(names))
	for _, name := range names {
		results = append(results, DetectResult{
			Name:        name,
			Conventions: convention.Detect(name).Names(),
		})
	}

	if flags.Format != FormatText {
		return OutputStructured(results, flags.Format)
	}
	for _, r := range results {
		if len(r.Conventions) == 0 {
			fmt.Printf("%s: (none)\n", r.Name)
			continue
		}
		fmt.Printf("%s: %s\n", r.Name, strings.Join(r.Conventions, ", "))
	}
	return nil
}
