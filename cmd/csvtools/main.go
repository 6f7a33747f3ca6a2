package main

import (
	"fmt"
	"os"

	"github.com/agnivade/levenshtein"
	"github.com/erraggy/csvtools"
	"github.com/erraggy/csvtools/cmd/csvtools/commands"
	"github.com/erraggy/csvtools/internal/cliutil"
)

// commandNames lists every top-level command, for typo suggestions.
var commandNames = []string{"align", "fixwidth", "mcp", "version", "help"}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches args to a command and returns the process exit status.
func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return 1
	}

	command := args[0]
	var err error

	switch command {
	case "version", "-v", "--version":
		fmt.Println(csvtools.VersionString())
		if len(args) > 1 && (args[1] == "-a" || args[1] == "--all") {
			fmt.Println(csvtools.BuildInfo())
		}
	case "help", "-h", "--help":
		printUsage()
	case "align":
		err = commands.HandleAlign(args[1:])
	case "fixwidth":
		err = commands.HandleFixwidth(args[1:])
	case "mcp":
		err = commands.HandleMCP(args[1:])
	default:
		cliutil.Writef(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			cliutil.Writef(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		cliutil.Writef(os.Stderr, "\n")
		printUsage()
		return 1
	}

	if err != nil {
		cliutil.PrintError(os.Stderr, err)
		return 1
	}
	return 0
}

func printUsage() {
	cliutil.Writef(os.Stdout, `csvtools - Delimited Text Tools

Usage:
  csvtools <command> [options]

Commands:
  align       Concatenate delimited files, aligning their columns by name
  fixwidth    Pad a delimited file so its columns line up as plain text
  mcp         Start the MCP server over stdio
  version     Show version information (-a for build details)
  help        Show this help message

Examples:
  csvtools align -o merged.csv jan.csv feb.csv mar.csv
  csvtools align --at-least 0 -o union.csv a.csv b.csv.gz
  csvtools fixwidth report.csv
  csvtools fixwidth -d tab -o pretty.tsv report.tsv
  cat report.csv | csvtools fixwidth -

Run 'csvtools <command> --help' for more information on a command.
`)
}

// suggestCommand returns the known command closest to input, or "" when none
// is within an edit distance of 2.
func suggestCommand(input string) string {
	const maxDistance = 2
	best, bestDistance := "", maxDistance+1
	for _, name := range commandNames {
		if d := levenshtein.ComputeDistance(input, name); d < bestDistance {
			best, bestDistance = name, d
		}
	}
	return best
}
