package aligner

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

// DefaultAtLeast is the default occurrence threshold: a column is kept when it
// occurs in more than this many headers.
const DefaultAtLeast = 1

// Config configures how sources are aligned.
type Config struct {
	// AtLeast is the exclusive occurrence threshold for keeping a column.
	AtLeast int
	// Dialect describes the input and output layout.
	Dialect delim.Dialect
	// OutputMode is the permission mode of files created by AlignToFile.
	// Zero means fileutil.ReadableByAll.
	OutputMode os.FileMode
}

// DefaultConfig returns the default configuration: threshold 1, comma-separated UTF-8.
func DefaultConfig() Config {
	return Config{
		AtLeast:    DefaultAtLeast,
		Dialect:    delim.DefaultDialect(),
		OutputMode: fileutil.ReadableByAll,
	}
}

// Validate checks the threshold and dialect.
func (c Config) Validate() error {
	if c.AtLeast < 0 {
		return &csverrors.ConfigError{Option: "at-least", Value: c.AtLeast, Message: "must not be negative"}
	}
	return c.Dialect.Validate()
}

// Progress is advanced by one unit per source fully re-projected.
// *progressbar.ProgressBar satisfies it.
type Progress interface {
	Add(n int) error
	Finish() error
}

type nopProgress struct{}

func (nopProgress) Add(int) error { return nil }
func (nopProgress) Finish() error { return nil }

// Aligner aligns delimited sources by column name.
//
// Concurrency: Aligner instances are not safe for concurrent use.
// Create separate Aligner instances for concurrent operations.
type Aligner struct {
	config   Config
	logger   delim.Logger
	progress Progress
}

// New creates a new Aligner with the provided configuration.
func New(config Config) *Aligner {
	return &Aligner{
		config:   config,
		logger:   delim.NopLogger{},
		progress: nopProgress{},
	}
}

// SetLogger replaces the logger; nil restores the no-op logger.
func (a *Aligner) SetLogger(logger delim.Logger) {
	if logger == nil {
		logger = delim.NopLogger{}
	}
	a.logger = logger
}

// SetProgress replaces the progress reporter; nil disables reporting.
func (a *Aligner) SetProgress(progress Progress) {
	if progress == nil {
		progress = nopProgress{}
	}
	a.progress = progress
}

// AlignResult describes a completed alignment.
type AlignResult struct {
	// Columns is the reconciled header.
	Columns []string
	// DistinctColumns is the number of distinct names seen before filtering.
	DistinctColumns int
	// Files is the number of sources read.
	Files int
	// Rows is the number of data rows written, excluding the header.
	Rows int
	// Written is false when the reconciled header was empty and no output was produced.
	Written bool
	// OutputPath is the file written by AlignToFile, empty otherwise.
	OutputPath string
	// Report lists every distinct column with its count and fate.
	Report ColumnReport
}

// output is opened only once the reconciled header is known to be non-empty.
type output struct {
	name string
	open func() (io.Writer, func() error, error)
}

// AlignTo aligns sources and writes the result to w. Nothing is written to w
// when the reconciled header is empty.
func (a *Aligner) AlignTo(sources []delim.Source, w io.Writer) (*AlignResult, error) {
	return a.align(sources, output{
		name: "<output>",
		open: func() (io.Writer, func() error, error) {
			return w, func() error { return nil }, nil
		},
	})
}

// AlignToFile aligns sources into the file at path, creating or truncating it.
// The file is not created when the reconciled header is empty, and a path
// that names one of the sources is refused before anything is read.
func (a *Aligner) AlignToFile(sources []delim.Source, path string) (*AlignResult, error) {
	if err := pathutil.RejectInputOverwrite(path, delim.FilePaths(sources)); err != nil {
		return nil, fmt.Errorf("aligner: %w", &csverrors.ConfigError{Option: "output", Value: path, Cause: err})
	}
	result, err := a.align(sources, output{
		name: path,
		open: func() (io.Writer, func() error, error) {
			mode := a.config.OutputMode
			if mode == 0 {
				mode = fileutil.ReadableByAll
			}
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
			if err != nil {
				return nil, nil, &csverrors.IOError{Path: path, Op: "create", Cause: err}
			}
			return f, f.Close, nil
		},
	})
	if result != nil && result.Written {
		result.OutputPath = path
	}
	return result, err
}

func (a *Aligner) align(sources []delim.Source, out output) (result *AlignResult, err error) {
	if err := a.config.Validate(); err != nil {
		return nil, fmt.Errorf("aligner: %w", err)
	}

	rec, err := a.Reconcile(sources)
	if err != nil {
		return nil, err
	}
	result = &AlignResult{
		Columns:         rec.Columns,
		DistinctColumns: len(rec.Counts),
		Files:           len(sources),
		Report:          rec.Report(),
	}
	if len(rec.Columns) == 0 {
		a.logger.Info("nothing to do, as the output would be empty")
		return result, nil
	}

	dst, closeFn, err := out.open()
	if err != nil {
		return nil, fmt.Errorf("aligner: %w", err)
	}
	defer func() {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = fmt.Errorf("aligner: %w", &csverrors.IOError{Path: out.name, Op: "close", Cause: cerr})
		}
	}()

	w := delim.NewWriter(dst, a.config.Dialect)
	if err := w.WriteRecord(rec.Columns); err != nil {
		return nil, fmt.Errorf("aligner: %w", &csverrors.IOError{Path: out.name, Op: "write", Cause: err})
	}

	a.logger.Info("concatenating files", "count", len(sources))
	for _, src := range sources {
		rows, err := a.project(src, rec.Columns, w, out.name)
		if err != nil {
			return nil, err
		}
		result.Rows += rows
		if err := a.progress.Add(1); err != nil {
			a.logger.Debug("progress update failed", "error", err)
		}
	}
	if err := a.progress.Finish(); err != nil {
		a.logger.Debug("progress finish failed", "error", err)
	}

	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("aligner: %w", &csverrors.IOError{Path: out.name, Op: "write", Cause: err})
	}
	result.Written = true
	a.logger.Info("done", "rows", result.Rows)
	return result, nil
}

// project re-reads src and writes its data rows rearranged to columns.
func (a *Aligner) project(src delim.Source, columns []string, w *delim.Writer, outName string) (rows int, err error) {
	records, err := src.Records(a.config.Dialect)
	if err != nil {
		return 0, fmt.Errorf("aligner: %w", err)
	}
	defer func() {
		if cerr := records.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("aligner: %w", cerr)
		}
	}()

	header, err := delim.ReadHeader(src.Name(), records)
	if err != nil {
		return 0, fmt.Errorf("aligner: %w", err)
	}
	proj := NewProjection(columns, header)
	if missing := proj.Missing(); len(missing) > 0 {
		a.logger.Debug("filling missing columns", "source", src.Name(), "columns", missing)
	}

	row := make([]string, 0, len(columns))
	for {
		record, err := records.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return rows, fmt.Errorf("aligner: %w", err)
		}

		row, err = proj.Apply(record, row)
		if err != nil {
			var lookupErr *csverrors.LookupError
			if errors.As(err, &lookupErr) {
				lookupErr.Path = src.Name()
				lookupErr.Line = records.Line()
			}
			return rows, fmt.Errorf("aligner: %w", err)
		}
		if err := w.WriteRecord(row); err != nil {
			return rows, fmt.Errorf("aligner: %w", &csverrors.IOError{Path: outName, Op: "write", Cause: err})
		}
		rows++
	}
}
