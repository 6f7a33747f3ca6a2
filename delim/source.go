package delim

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/csvtools/csverrors"
)

// StdinPath is the special file path used to indicate reading from stdin.
const StdinPath = "-"

// Source is a re-openable input of delimited records.
// Every call to Records returns an independent cursor starting at the first record.
type Source interface {
	// Name identifies the source in errors and logs.
	Name() string
	// Records opens a fresh cursor over the source.
	Records(d Dialect) (Records, error)
}

// NewSource returns the Source for a path: an XLSXSource for .xlsx
// workbooks, a FileSource for everything else.
func NewSource(path string) Source {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return XLSXSource{Path: path}
	}
	return FileSource{Path: path}
}

// NewSources maps NewSource over paths.
func NewSources(paths ...string) []Source {
	sources := make([]Source, 0, len(paths))
	for _, p := range paths {
		sources = append(sources, NewSource(p))
	}
	return sources
}

// FilePaths returns the on-disk paths among sources. Sources without a
// backing file, such as a BytesSource, are skipped.
func FilePaths(sources []Source) []string {
	var paths []string
	for _, src := range sources {
		switch s := src.(type) {
		case FileSource:
			paths = append(paths, s.Path)
		case *FileSource:
			paths = append(paths, s.Path)
		case XLSXSource:
			paths = append(paths, s.Path)
		case *XLSXSource:
			paths = append(paths, s.Path)
		}
	}
	return paths
}

// FileSource reads delimited text from a file. Names ending in .gz, .zst
// or .xz are decompressed on the fly.
type FileSource struct {
	Path string
}

// Name implements Source.
func (f FileSource) Name() string {
	return f.Path
}

// Open opens the file, decompressing it if its extension calls for it.
func (f FileSource) Open() (io.ReadCloser, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, &csverrors.IOError{Path: f.Path, Op: "open", Cause: err}
	}
	rc, err := decompress(f.Path, file)
	if err != nil {
		_ = file.Close()
		return nil, &csverrors.IOError{Path: f.Path, Op: "open", Cause: err}
	}
	return rc, nil
}

// Records implements Source.
func (f FileSource) Records(d Dialect) (Records, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	return newCSVRecords(f.Path, rc, d)
}

// BytesSource holds delimited text in memory.
type BytesSource struct {
	name string
	data []byte
}

// NewBytesSource returns a source over data, reported under name.
func NewBytesSource(name string, data []byte) *BytesSource {
	return &BytesSource{name: name, data: data}
}

// ReadAllSource drains r into a BytesSource. This is how standard input is
// made re-openable.
func ReadAllSource(name string, r io.Reader) (*BytesSource, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &csverrors.IOError{Path: name, Op: "read", Cause: err}
	}
	return NewBytesSource(name, data), nil
}

// Name implements Source.
func (b *BytesSource) Name() string {
	return b.name
}

// Len returns the size of the content in bytes.
func (b *BytesSource) Len() int {
	return len(b.data)
}

// Records implements Source.
func (b *BytesSource) Records(d Dialect) (Records, error) {
	return newCSVRecords(b.name, io.NopCloser(bytes.NewReader(b.data)), d)
}

// FormatSourceName returns a display-friendly name for a path.
// Returns "<stdin>" for StdinPath, otherwise the path as-is.
func FormatSourceName(path string) string {
	if path == StdinPath {
		return "<stdin>"
	}
	return path
}
