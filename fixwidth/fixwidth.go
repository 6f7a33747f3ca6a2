package fixwidth

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/csvtools/csverrors"
	"github.com/erraggy/csvtools/delim"
	"github.com/erraggy/csvtools/internal/fileutil"
	"github.com/erraggy/csvtools/internal/pathutil"
)

// Config configures how a source is pretty-printed.
type Config struct {
	// Dialect describes the input and output layout.
	Dialect delim.Dialect
	// OutputMode is the permission mode of files created by FixToFile.
	// Zero means fileutil.ReadableByAll.
	OutputMode os.FileMode
}

// DefaultConfig returns the default configuration: comma-separated UTF-8.
func DefaultConfig() Config {
	return Config{Dialect: delim.DefaultDialect(), OutputMode: fileutil.ReadableByAll}
}

// Validate checks the dialect.
func (c Config) Validate() error {
	return c.Dialect.Validate()
}

// Fixer pretty-prints one delimited source at a time.
//
// Concurrency: Fixer instances are not safe for concurrent use.
// Create separate Fixer instances for concurrent operations.
type Fixer struct {
	config Config
	logger delim.Logger
}

// New creates a new Fixer with the provided configuration.
func New(config Config) *Fixer {
	return &Fixer{config: config, logger: delim.NopLogger{}}
}

// SetLogger replaces the logger; nil restores the no-op logger.
func (f *Fixer) SetLogger(logger delim.Logger) {
	if logger == nil {
		logger = delim.NopLogger{}
	}
	f.logger = logger
}

// Result describes a completed run.
type Result struct {
	// Rows is the number of rows written.
	Rows int
	// Widths is the measured width of every column, in bytes.
	Widths []int
	// OutputPath is the file written by FixToFile, empty otherwise.
	OutputPath string
}

// Measure runs the first pass over src.
func (f *Fixer) Measure(src delim.Source) (table *WidthTable, rows int, err error) {
	if err := f.config.Validate(); err != nil {
		return nil, 0, fmt.Errorf("fixwidth: %w", err)
	}
	records, err := src.Records(f.config.Dialect)
	if err != nil {
		return nil, 0, fmt.Errorf("fixwidth: %w", err)
	}
	defer func() {
		if cerr := records.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("fixwidth: %w", cerr)
		}
	}()

	table, rows, err = ScanWidths(records)
	if err != nil {
		return nil, rows, fmt.Errorf("fixwidth: %w", err)
	}
	f.logger.Debug("measured columns", "source", src.Name(), "rows", rows, "columns", table.Len())
	return table, rows, nil
}

// Fix pretty-prints src to w.
func (f *Fixer) Fix(src delim.Source, w io.Writer) (*Result, error) {
	return f.fix(src, "<output>", func() (io.Writer, func() error, error) {
		return w, func() error { return nil }, nil
	})
}

// FixToFile pretty-prints src into the file at path, creating or truncating
// it once the first pass has succeeded. A path that names src is refused
// before anything is read.
func (f *Fixer) FixToFile(src delim.Source, path string) (*Result, error) {
	if err := pathutil.RejectInputOverwrite(path, delim.FilePaths([]delim.Source{src})); err != nil {
		return nil, fmt.Errorf("fixwidth: %w", &csverrors.ConfigError{Option: "output", Value: path, Cause: err})
	}
	result, err := f.fix(src, path, func() (io.Writer, func() error, error) {
		mode := f.config.OutputMode
		if mode == 0 {
			mode = fileutil.ReadableByAll
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
		if err != nil {
			return nil, nil, &csverrors.IOError{Path: path, Op: "create", Cause: err}
		}
		return file, file.Close, nil
	})
	if result != nil {
		result.OutputPath = path
	}
	return result, err
}

func (f *Fixer) fix(src delim.Source, outName string, open func() (io.Writer, func() error, error)) (result *Result, err error) {
	table, measured, err := f.Measure(src)
	if err != nil {
		return nil, err
	}

	dst, closeFn, err := open()
	if err != nil {
		return nil, fmt.Errorf("fixwidth: %w", err)
	}
	defer func() {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = fmt.Errorf("fixwidth: %w", &csverrors.IOError{Path: outName, Op: "close", Cause: cerr})
		}
	}()

	rows, err := f.emit(src, table, measured, dst, outName)
	if err != nil {
		return nil, err
	}
	f.logger.Info("done", "rows", rows, "columns", table.Len())
	return &Result{Rows: rows, Widths: table.Widths()}, nil
}

// emit runs the second pass over src, writing formatted rows to dst.
// The pass must see exactly the measured number of records.
func (f *Fixer) emit(src delim.Source, table *WidthTable, measured int, dst io.Writer, outName string) (rows int, err error) {
	records, err := src.Records(f.config.Dialect)
	if err != nil {
		return 0, fmt.Errorf("fixwidth: %w", err)
	}
	defer func() {
		if cerr := records.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("fixwidth: %w", cerr)
		}
	}()

	w := delim.NewWriter(dst, f.config.Dialect)
	formatter := NewFormatter(table)
	for {
		record, err := records.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rows, fmt.Errorf("fixwidth: %w", err)
		}
		if rows == measured {
			return rows, fmt.Errorf("fixwidth: %w", &csverrors.ParseError{
				Path:    src.Name(),
				Line:    records.Line(),
				Message: fmt.Sprintf("source changed between passes: measured %d records, found more", measured),
			})
		}

		row, err := formatter.Format(record)
		if err != nil {
			var parseErr *csverrors.ParseError
			if errors.As(err, &parseErr) {
				parseErr.Path = src.Name()
				parseErr.Line = records.Line()
			}
			return rows, fmt.Errorf("fixwidth: %w", err)
		}
		if err := w.WriteRecord(row); err != nil {
			return rows, fmt.Errorf("fixwidth: %w", &csverrors.IOError{Path: outName, Op: "write", Cause: err})
		}
		rows++
	}
	if rows != measured {
		return rows, fmt.Errorf("fixwidth: %w", &csverrors.ParseError{
			Path:    src.Name(),
			Message: fmt.Sprintf("source changed between passes: measured %d records, read %d", measured, rows),
		})
	}

	if err := w.Flush(); err != nil {
		return rows, fmt.Errorf("fixwidth: %w", &csverrors.IOError{Path: outName, Op: "write", Cause: err})
	}
	return rows, nil
}
