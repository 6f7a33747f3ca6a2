package mcpserver

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/csvtools/delim"
	"github.com/erraggy/csvtools/internal/options"
)

// sourceInput represents the two ways a delimited input can be provided to a tool.
// Exactly one of File or Content must be set.
type sourceInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a delimited file on disk. .gz, .zst and .xz files are decompressed; .xlsx reads the first sheet."`
	Content string `json:"content,omitempty" jsonschema:"Inline delimited text"`
	Name    string `json:"name,omitempty"    jsonschema:"Display name for inline content, used in error messages"`
}

// resolve validates the input and returns a source for it. index names inline
// content that has no display name.
func (s sourceInput) resolve(index int) (delim.Source, error) {
	if err := options.ValidateSingleInputSource("source",
		"exactly one of file or content must be provided (got 0)",
		"exactly one of file or content must be provided (got 2)",
		s.File != "", s.Content != "",
	); err != nil {
		return nil, err
	}

	if s.Content != "" {
		if int64(len(s.Content)) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set CSVTOOLS_MAX_INLINE_SIZE to increase",
				len(s.Content), cfg.MaxInlineSize)
		}
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("content[%d]", index)
		}
		return delim.NewBytesSource(name, []byte(s.Content)), nil
	}

	path := filepath.Clean(s.File)
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return delim.NewSource(path), nil
}

// filePaths returns the on-disk paths among inputs, for overwrite checks.
func filePaths(inputs []sourceInput) []string {
	var paths []string
	for _, in := range inputs {
		if in.File != "" {
			paths = append(paths, filepath.Clean(in.File))
		}
	}
	return paths
}

// resolveDialect applies config defaults to the delimiter and encoding a tool
// was called with, and validates the result.
func resolveDialect(delimiter, encoding string) (delim.Dialect, error) {
	out := delim.Dialect{Comma: cfg.Delimiter, Encoding: cfg.Encoding}
	if delimiter != "" {
		r, err := delim.ParseDelimiter(delimiter)
		if err != nil {
			return delim.Dialect{}, err
		}
		out.Comma = r
	}
	if encoding != "" {
		out.Encoding = encoding
	}
	if err := out.Validate(); err != nil {
		return delim.Dialect{}, err
	}
	return out, nil
}

var errInlineTooLarge = errors.New("inline result too large")

// cappedBuffer collects inline results up to a byte limit.
type cappedBuffer struct {
	buf   bytes.Buffer
	limit int64
}

func (c *cappedBuffer) Write(p []byte) (int, error) {
	if int64(c.buf.Len()+len(p)) > c.limit {
		return 0, errInlineTooLarge
	}
	return c.buf.Write(p)
}

func (c *cappedBuffer) String() string {
	return c.buf.String()
}

// inlineError rewrites an overflowing inline result into actionable advice.
func inlineError(err error) error {
	if errors.Is(err, errInlineTooLarge) {
		return fmt.Errorf("result exceeds %d bytes; set output to write a file instead, or set CSVTOOLS_MAX_INLINE_SIZE to increase", cfg.MaxInlineSize)
	}
	return err
}
