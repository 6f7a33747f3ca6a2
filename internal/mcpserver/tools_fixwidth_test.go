package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixwidthTool_Inline(t *testing.T) {
	input := fixwidthInput{Source: sourceInput{Content: "a,bb\nccc,d\n"}}

	result, output, err := handleFixwidth(context.Background(), nil, input)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 2, output.RowCount)
	assert.Equal(t, 2, output.ColumnCount)
	assert.Equal(t, []int{3, 2}, output.Widths)
	assert.Equal(t, "a,     bb\nccc, d\n", output.Content)
	assert.Empty(t, output.WrittenTo)
	assert.Equal(t, "Padded 2 rows across 2 columns.", output.Summary)
}

func TestFixwidthTool_EmptyInput(t *testing.T) {
	_, output, err := handleFixwidth(context.Background(), nil, fixwidthInput{Source: sourceInput{Content: "\n"}})
	require.NoError(t, err)
	assert.Equal(t, 0, output.RowCount)
	assert.Equal(t, []int{}, output.Widths)
	assert.Empty(t, output.Content)
}

func TestFixwidthTool_WritesFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.tsv")
	require.NoError(t, os.WriteFile(in, []byte("x\ty\nlonger\tz\n"), 0o600))
	out := filepath.Join(dir, "out.tsv")

	result, output, err := handleFixwidth(context.Background(), nil, fixwidthInput{
		Source:    sourceInput{File: in},
		Delimiter: "tab",
		Output:    out,
	})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, out, output.WrittenTo)
	assert.Empty(t, output.Content)
	assert.Equal(t, []int{6, 1}, output.Widths)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "x\t       y\nlonger\t  z\n", string(data))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFixwidthTool_Errors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(in, []byte("a,b\n"), 0o600))

	tests := []struct {
		name  string
		input fixwidthInput
		want  string
	}{
		{name: "no source", input: fixwidthInput{}, want: "exactly one of file or content"},
		{name: "bad encoding", input: fixwidthInput{Source: sourceInput{Content: "a\n"}, Encoding: "klingon"}, want: "encoding"},
		{name: "overwrite input", input: fixwidthInput{Source: sourceInput{File: in}, Output: in}, want: "would overwrite input file"},
		{name: "malformed", input: fixwidthInput{Source: sourceInput{Content: "a,\"b\n", Name: "broken"}}, want: "broken"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleFixwidth(context.Background(), nil, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			assert.Contains(t, resultText(t, result), tt.want)
		})
	}
}
