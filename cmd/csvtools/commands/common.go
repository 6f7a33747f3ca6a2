// Package commands provides CLI command handlers for csvtools.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/erraggy/csvtools/delim"
	"github.com/erraggy/csvtools/internal/cliutil"
	"github.com/erraggy/csvtools/internal/pathutil"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = delim.StdinPath

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data in the specified format (json or yaml) to w.
// Returns an error if marshaling fails.
func OutputStructured(w io.Writer, data any, format string) error {
	var out []byte
	var err error

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
		out = append(out, '\n')
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	_, err = w.Write(out)
	return err
}

// ValidateOutputPath checks that outputPath is safe to write to: it must not
// be a symlink and must not name any of the inputs. An existing file only
// triggers a warning. Returns the cleaned absolute path.
func ValidateOutputPath(outputPath string, inputPaths []string) (string, error) {
	cleaned, err := pathutil.SanitizeOutputPath(outputPath)
	if err != nil {
		return "", err
	}
	if err := pathutil.RejectInputOverwrite(cleaned, inputPaths); err != nil {
		return "", err
	}

	if _, err := os.Stat(cleaned); err == nil {
		cliutil.Warnf(os.Stderr, "output file %s already exists and will be overwritten\n", outputPath)
	}
	return cleaned, nil
}

// dialectFlags are the delimiter and encoding flags shared by every command.
type dialectFlags struct {
	Delimiter string
	Encoding  string
}

// Dialect converts the flag values into a validated delim.Dialect.
func (f dialectFlags) Dialect() (delim.Dialect, error) {
	d := delim.DefaultDialect()
	if f.Delimiter != "" {
		comma, err := delim.ParseDelimiter(f.Delimiter)
		if err != nil {
			return d, err
		}
		d.Comma = comma
	}
	d.Encoding = f.Encoding
	if err := d.Validate(); err != nil {
		return d, err
	}
	return d, nil
}

// LoadSources maps CLI arguments to sources. StdinFilePath reads standard
// input fully into memory (it may be named at most once) so it can be read
// more than once.
func LoadSources(paths []string, stdin io.Reader) ([]delim.Source, error) {
	sources := make([]delim.Source, 0, len(paths))
	sawStdin := false
	for _, p := range paths {
		if p != StdinFilePath {
			sources = append(sources, delim.NewSource(p))
			continue
		}
		if sawStdin {
			return nil, fmt.Errorf("standard input (%s) can only be used once", StdinFilePath)
		}
		sawStdin = true
		src, err := delim.ReadAllSource(delim.FormatSourceName(p), stdin)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// newLogger returns a text logger on stderr when verbose, otherwise a no-op.
func newLogger(verbose bool) delim.Logger {
	if !verbose {
		return delim.NopLogger{}
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	return delim.NewSlogAdapter(slog.New(handler))
}
