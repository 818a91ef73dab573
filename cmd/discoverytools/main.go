package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/discoverytools"
	"github.com/erraggy/discoverytools/cmd/discoverytools/commands"
	"github.com/erraggy/discoverytools/discoveryerrors"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("discoverytools %s (commit %s, %s)\n", discoverytools.Version(), discoverytools.Commit(), discoverytools.GoVersion())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "schemas":
		err = commands.HandleSchemas(os.Args[2:])
	case "validate":
		err = commands.HandleValidate(os.Args[2:])
	case "apis":
		err = commands.HandleAPIs(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		// The validate command has already reported a non-conforming object.
		if !errors.Is(err, discoveryerrors.ErrValidation) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `discoverytools - Google API Discovery schema tools

Usage:
  discoverytools <command> [flags] [arguments]

Commands:
  schemas    List the normalized schema names of an API version
  validate   Validate a JSON or YAML object against an API schema
  apis       List the APIs in the discovery directory
  mcp        Run an MCP server over stdio
  version    Show version information
  help       Show this help message

Run 'discoverytools <command> --help' for more information on a command.
`)
}

var commandNames = []string{"schemas", "validate", "apis", "mcp", "version", "help"}

// suggestCommand returns the command closest to input within an edit
// distance of 2, or "" if there is none.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
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
