package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/csvtools/csverrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeInput writes content to name inside dir and returns the path.
func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSetupAlignFlags(t *testing.T) {
	fs, flags := SetupAlignFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Empty(t, flags.Output)
		assert.Equal(t, 1, flags.AtLeast)
		assert.Empty(t, flags.Delimiter)
		assert.Empty(t, flags.Report)
		assert.False(t, flags.Verbose)
		assert.False(t, flags.Quiet)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-o", "merged.csv", "--at-least", "2", "-d", "tab", "--encoding", "latin1", "--report", "yaml", "-v", "-q", "a.csv", "b.csv"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "merged.csv", flags.Output)
		assert.Equal(t, 2, flags.AtLeast)
		assert.Equal(t, "tab", flags.Delimiter)
		assert.Equal(t, "latin1", flags.Encoding)
		assert.Equal(t, "yaml", flags.Report)
		assert.True(t, flags.Verbose)
		assert.True(t, flags.Quiet)
		assert.Equal(t, []string{"a.csv", "b.csv"}, fs.Args())
	})
}

func TestHandleAlign_Help(t *testing.T) {
	assert.NoError(t, HandleAlign([]string{"--help"}))
}

func TestHandleAlign_InvalidInvocations(t *testing.T) {
	dir := t.TempDir()
	a := writeInput(t, dir, "a.csv", "id\n1\n")
	out := filepath.Join(dir, "out.csv")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "no inputs", args: []string{"-o", out}, wantErr: "at least 1 input file"},
		{name: "no output", args: []string{a}, wantErr: "requires an output file"},
		{name: "negative threshold", args: []string{"-o", out, "--at-least", "-1", a}, wantErr: "must not be negative"},
		{name: "bad report format", args: []string{"-o", out, "--report", "xml", a}, wantErr: "invalid format"},
		{name: "bad delimiter", args: []string{"-o", out, "-d", "ab", a}, wantErr: "delimiter"},
		{name: "output is input", args: []string{"-o", a, a}, wantErr: "would overwrite input file"},
		{name: "unknown flag", args: []string{"--bogus", a}, wantErr: "flag provided but not defined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HandleAlign(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestHandleAlign_WritesOutput(t *testing.T) {
	dir := t.TempDir()
	a := writeInput(t, dir, "a.csv", "id,name\n1,Alice\n")
	b := writeInput(t, dir, "b.csv", "id,age\n2,30\n")
	out := filepath.Join(dir, "out.csv")

	require.NoError(t, HandleAlign([]string{"-q", "-o", out, a, b}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "id\n1\n2\n", string(data))
}

func TestHandleAlign_UnionWithReport(t *testing.T) {
	dir := t.TempDir()
	a := writeInput(t, dir, "a.csv", "id;name\n1;Alice\n")
	b := writeInput(t, dir, "b.csv", "id;age\n2;30\n")
	out := filepath.Join(dir, "out.csv")

	require.NoError(t, HandleAlign([]string{"-q", "--at-least", "0", "-d", "semicolon", "--report", "json", "-o", out, a, b}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "age;id;name\n;1;Alice\n30;2;\n", string(data))
}

func TestHandleAlign_EmptyResultCreatesNothing(t *testing.T) {
	dir := t.TempDir()
	a := writeInput(t, dir, "a.csv", "id\n1\n")
	b := writeInput(t, dir, "b.csv", "sku\nX\n")
	out := filepath.Join(dir, "out.csv")

	require.NoError(t, HandleAlign([]string{"-o", out, a, b}))

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestHandleAlign_MissingInput(t *testing.T) {
	dir := t.TempDir()
	a := writeInput(t, dir, "a.csv", "id\n1\n")

	err := HandleAlign([]string{"-q", "-o", filepath.Join(dir, "out.csv"), a, filepath.Join(dir, "nope.csv")})
	require.Error(t, err)
	assert.ErrorIs(t, err, csverrors.ErrIO)
}
