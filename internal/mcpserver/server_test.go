package mcpserver

import (
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "no path", err: errors.New("bad delimiter"), want: "bad delimiter"},
		{name: "tmp path", err: errors.New("open /tmp/data/in.csv: no such file"), want: "open <path>: no such file"},
		{name: "home path", err: errors.New("csvtools: /home/user/a.csv:3: parse error"), want: "csvtools: <path>:3: parse error"},
		{name: "relative path kept", err: errors.New("open data/in.csv: denied"), want: "open data/in.csv: denied"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("failed reading /var/lib/x.csv"))
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "failed reading <path>", text.Text)
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0 rows", formatCount(0, "row"))
	assert.Equal(t, "1 row", formatCount(1, "row"))
	assert.Equal(t, "12 columns", formatCount(12, "column"))
}

// resultText returns the text of a single-content tool result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}
