// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes csvtools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"
	"strconv"

	"github.com/erraggy/csvtools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `csvtools MCP server: aligns delimited files that share some column names into one file, and pads delimited files so every column lines up.

Inputs: every tool accepts files on disk (plain, .gz, .zst, .xz, or .xlsx) or inline content. Results are returned inline unless output names a file to write.

Configuration: All defaults are configurable via CSVTOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- CSVTOOLS_DELIMITER (default: comma): default field delimiter; a character or tab, semicolon, pipe, space
- CSVTOOLS_ENCODING (default: UTF-8): default input character set
- CSVTOOLS_ALIGN_AT_LEAST (default: 1): keep columns found in more than this many headers
- CSVTOOLS_MAX_ALIGN_FILES (default: 50): maximum number of sources per align call
- CSVTOOLS_MAX_INLINE_SIZE (default: 10485760): maximum bytes of inline content and inline results`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: csvtools.Name, Version: csvtools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "align",
		Description: "Concatenate delimited files whose headers differ into a single file. Columns are matched by name; the output header holds every column found in more than at_least headers (default 1, so columns present in only one file are dropped; use 0 for the union), sorted by name. Rows missing a column get an empty field. Returns the kept columns, row count and a per-column report. Use output to write to a file instead of returning inline. When no column qualifies nothing is written and written=false.",
	}, handleAlign)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "fixwidth",
		Description: "Pad every field of a delimited file with spaces so that each column starts at the same offset on every line, making the file readable as a table while staying parseable. Fields are trimmed of surrounding whitespace first. Returns the measured column widths and the row count. Use output to write to a file instead of returning inline.",
	}, handleFixwidth)
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

func formatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
