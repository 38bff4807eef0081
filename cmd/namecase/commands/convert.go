package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/namecase/convention"
	"github.com/erraggy/namecase/internal/cliutil"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Convention string
	Format     string
	Quiet      bool
}

// ConvertResult is the structured output for one name.
type ConvertResult struct {
	Name      string `json:"name" yaml:"name"`
	Converted string `json:"converted,omitempty" yaml:"converted,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Convention, "c", "", "target convention (required)")
	fs.StringVar(&flags.Convention, "convention", "", "target convention (required)")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: do not report names that cannot be converted")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: do not report names that cannot be converted")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: namecase convert -c <convention> [flags] <name...|->\n\n")
		cliutil.Writef(fs.Output(), "Convert names to a naming convention.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nConventions:\n")
		cliutil.Writef(fs.Output(), "  %s\n", conventionList())
		cliutil.Writef(fs.Output(), "  Aliases such as snake, constant, camel and pascal_snake are accepted.\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  namecase convert -c PascalCase user_id\n")
		cliutil.Writef(fs.Output(), "  namecase convert -c snake getHTTPResponse\n")
		cliutil.Writef(fs.Output(), "  cat names.txt | namecase convert -q -c constant - > constants.txt\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    All names converted\n")
		cliutil.Writef(fs.Output(), "  1    At least one name could not be converted\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

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
		return fmt.Errorf("target convention is required (use -c or --convention)")
	}
	target, err := convention.ParseConvention(flags.Convention)
	if err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("convert command requires at least one name or '-' for stdin")
	}

	names, err := ReadNames(fs.Args())
	if err != nil {
		return err
	}

	results := make([]ConvertResult, 0, len(names))
	failed := 0
	for _, name := range names {
		converted, err := convention.Convert(name, target)
		if err != nil {
			failed++
			results = append(results, ConvertResult{Name: name, Error: err.Error()})
			continue
		}
		results = append(results, ConvertResult{Name: name, Converted: converted})
	}

	if flags.Format != FormatText {
		if err := OutputStructured(results, flags.Format); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Error != "" {
				if !flags.Quiet {
					cliutil.Warnf("%s", r.Error)
				}
				continue
			}
			fmt.Println(r.Converted)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d names could not be converted to %s", failed, len(names), target)
	}
	return nil
}
