package main

import (
	"fmt"
	"os"

	"github.com/erraggy/namecase"
	"github.com/erraggy/namecase/cmd/namecase/commands"
)

// commandNames lists the subcommands in the order suggestions prefer them.
var commandNames = []string{"detect", "convert", "check", "scan", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		printVersion()
	case "help", "-h", "--help":
		printUsage()
	case "detect":
		err = commands.HandleDetect(args)
	case "convert":
		err = commands.HandleConvert(args)
	case "check":
		err = commands.HandleCheck(args)
	case "scan":
		err = commands.HandleScan(args)
	case "mcp":
		err = commands.HandleMCP(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Println(namecase.Info())
}

func printUsage() {
	fmt.Println(`namecase - identifier naming convention toolkit

Usage:
  namecase <command> [flags] [args]

Commands:
  detect    Report the naming conventions each name satisfies
  convert   Convert names to a naming convention
  check     Check that names satisfy a naming convention
  scan      Scan Go source for names that break the naming rules
  mcp       Serve the tools over the Model Context Protocol on stdio
  version   Show version information
  help      Show this help message

Run 'namecase <command> --help' for more information on a command.`)
}

// suggestCommand returns the known command closest to input, or "" when
// none is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
