// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes texmigrate capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	texmigrate "github.com/erraggy/texmigrate"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `texmigrate MCP server — parses LaTeX templates and migrates section content between them.

Tools:
- parse: inspect a template's section hierarchy before writing a migration config
- validate_config: check a migration config without running a migration
- migrate: merge content from an old template into a new one

Configuration: defaults are configurable via TEXMIGRATE_* environment variables set in your MCP client config.

Key settings:
- TEXMIGRATE_MAX_INLINE_SIZE (default: 4194304) — maximum inline document size in bytes

Typical flow: parse both templates, draft a config mapping old section titles to new ones, validate_config, then migrate. Missing or ambiguous sections never abort a migration; they are reported per-section in the outcomes.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "texmigrate", Version: texmigrate.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse a LaTeX template and return its section hierarchy: levels, titles, nesting, and body sizes. Use this on both templates before writing a migration config. Use full=true to also return the serialized document.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_config",
		Description: "Validate a migration config (JSON or YAML) without running a migration. Returns the parsed mode and entry counts, or the validation error.",
	}, handleValidateConfig)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "migrate",
		Description: "Migrate section content from an old LaTeX template into a new one using a migration config. Returns per-section outcomes (matched, created, not_found, ambiguous) and warnings. Provide output to write the merged document to a file; otherwise the merged document is returned inline.",
	}, handleMigrate)
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
