package mcpserver

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erraggy/csvtools/delim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, src delim.Source) [][]string {
	t.Helper()
	records, err := src.Records(delim.DefaultDialect())
	require.NoError(t, err)
	defer func() { _ = records.Close() }()
	var out [][]string
	for {
		record, err := records.Read()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, append([]string(nil), record...))
	}
}

func TestSourceInput_Content(t *testing.T) {
	src, err := sourceInput{Content: "a,b\n1,2\n"}.resolve(3)
	require.NoError(t, err)
	assert.Equal(t, "content[3]", src.Name())
	assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}}, readAll(t, src))

	named, err := sourceInput{Content: "a\n", Name: "people"}.resolve(0)
	require.NoError(t, err)
	assert.Equal(t, "people", named.Name())
}

func TestSourceInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("x\n1\n"), 0o600))

	src, err := sourceInput{File: path}.resolve(0)
	require.NoError(t, err)
	assert.Equal(t, path, src.Name())
	assert.Equal(t, [][]string{{"x"}, {"1"}}, readAll(t, src))
}

func TestSourceInput_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name  string
		input sourceInput
		want  string
	}{
		{name: "neither", input: sourceInput{}, want: "exactly one of file or content"},
		{name: "both", input: sourceInput{File: "a.csv", Content: "a"}, want: "(got 2)"},
		{name: "missing file", input: sourceInput{File: filepath.Join(dir, "nope.csv")}, want: "no such file"},
		{name: "directory", input: sourceInput{File: dir}, want: "is a directory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.input.resolve(0)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSourceInput_ContentTooLarge(t *testing.T) {
	withConfig(t, func(c *serverConfig) { c.MaxInlineSize = 8 })

	_, err := sourceInput{Content: strings.Repeat("a", 9)}.resolve(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum 8 bytes")
	assert.Contains(t, err.Error(), "CSVTOOLS_MAX_INLINE_SIZE")
}

func TestFilePaths(t *testing.T) {
	paths := filePaths([]sourceInput{{File: "a/../b.csv"}, {Content: "x"}, {File: "c.csv"}})
	assert.Equal(t, []string{"b.csv", "c.csv"}, paths)
	assert.Nil(t, filePaths([]sourceInput{{Content: "x"}}))
}

func TestResolveDialect(t *testing.T) {
	withConfig(t, func(c *serverConfig) {
		c.Delimiter = ';'
		c.Encoding = ""
	})

	d, err := resolveDialect("", "")
	require.NoError(t, err)
	assert.Equal(t, ';', d.Comma)

	d, err = resolveDialect("tab", "latin1")
	require.NoError(t, err)
	assert.Equal(t, '\t', d.Comma)
	assert.Equal(t, "latin1", d.Encoding)

	_, err = resolveDialect("ab", "")
	require.Error(t, err)

	_, err = resolveDialect("", "no-such-charset")
	require.Error(t, err)
}

func TestCappedBuffer(t *testing.T) {
	b := &cappedBuffer{limit: 4}
	n, err := b.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = b.Write([]byte("de"))
	require.ErrorIs(t, err, errInlineTooLarge)
	assert.Equal(t, "abc", b.String())

	assert.Contains(t, inlineError(err).Error(), "set output to write a file")
}
