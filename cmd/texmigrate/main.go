package main

import (
	"fmt"
	"os"

	texmigrate "github.com/erraggy/texmigrate"
	"github.com/erraggy/texmigrate/cmd/texmigrate/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("texmigrate v%s\n", texmigrate.Version())
	case "help", "-h", "--help":
		printUsage()
	case "migrate":
		if err := commands.HandleMigrate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "parse":
		if err := commands.HandleParse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "create-config":
		if err := commands.HandleCreateConfig(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

var knownCommands = []string{"migrate", "parse", "create-config", "mcp", "version", "help"}

// suggestCommand returns the known command closest to input, or "" when no
// command is within edit distance 2.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
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

func printUsage() {
	fmt.Println(`texmigrate - LaTeX Template Migration Tools

Usage:
  texmigrate <command> [options]

Commands:
  migrate        Migrate section content from an old template into a new one
  parse          Parse a template and display its section hierarchy
  create-config  Write a starter migration config file
  mcp            Run an MCP server over stdio
  version        Show version information
  help           Show this help message

Examples:
  texmigrate create-config -o migration.json
  texmigrate migrate -c migration.json --old thesis-2019.tex --new thesis-2024.tex -o merged.tex
  texmigrate parse -f json thesis-2024.tex
  texmigrate mcp

Run 'texmigrate <command> --help' for more information on a command.`)
}
