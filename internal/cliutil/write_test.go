package cliutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

// withoutColor disables ANSI output for the duration of a test.
func withoutColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestWritef(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{name: "single arg", format: "Hello, %s!", args: []any{"World"}, want: "Hello, World!"},
		{name: "no args", format: "Simple message", want: "Simple message"},
		{name: "multiple args", format: "%s: %d rows, %v written", args: []any{"Status", 42, true}, want: "Status: 42 rows, true written"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Writef(&buf, tt.format, tt.args...)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, errors.New("simulated write error")
}

func TestWritef_WriteError(t *testing.T) {
	assert.NotPanics(t, func() { Writef(errorWriter{}, "This will fail") })
}

func TestLabels(t *testing.T) {
	withoutColor(t)

	var buf bytes.Buffer
	PrintError(&buf, errors.New("aligner: boom"))
	assert.Equal(t, "Error: aligner: boom\n", buf.String())

	buf.Reset()
	Warnf(&buf, "output file %s already exists\n", "out.csv")
	assert.Equal(t, "Warning: output file out.csv already exists\n", buf.String())

	buf.Reset()
	Successf(&buf, "done\n")
	assert.Equal(t, "✓ done\n", buf.String())
}
