package fixwidth

import (
	"fmt"
	"io"
	"os"

	"github.com/erraggy/csvtools/csverrors"
	"github.com/erraggy/csvtools/delim"
	"github.com/erraggy/csvtools/internal/options"
)

// Option is a function that configures a fixwidth operation
type Option func(*fixConfig) error

// fixConfig holds configuration for a fixwidth operation
type fixConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	source   delim.Source

	config  *Config
	dialect *delim.Dialect

	// At most one output; neither means standard output
	outputPath string
	writer     io.Writer

	logger delim.Logger
}

// FixWithOptions pretty-prints one delimited source using functional options.
//
// Example:
//
//	result, err := fixwidth.FixWithOptions(
//	    fixwidth.WithFilePath("report.csv"),
//	    fixwidth.WithOutputPath("pretty.csv"),
//	)
func FixWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("fixwidth: invalid options: %w", err)
	}

	config := DefaultConfig()
	if cfg.config != nil {
		config = *cfg.config
	}
	if cfg.dialect != nil {
		config.Dialect = *cfg.dialect
	}

	f := New(config)
	f.SetLogger(cfg.logger)

	src := cfg.source
	if cfg.filePath != nil {
		src = delim.NewSource(*cfg.filePath)
	}

	if cfg.outputPath != "" {
		return f.FixToFile(src, cfg.outputPath)
	}
	w := cfg.writer
	if w == nil {
		w = os.Stdout
	}
	return f.Fix(src, w)
}

// applyOptions applies option functions and validates the result
func applyOptions(opts ...Option) (*fixConfig, error) {
	cfg := &fixConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource("source",
		"must specify an input source", "must specify exactly one input source",
		cfg.filePath != nil, cfg.source != nil,
	); err != nil {
		return nil, err
	}
	if err := options.ValidateAtMostOne("output",
		"output path and writer are mutually exclusive",
		cfg.outputPath != "", cfg.writer != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath reads the input from a path through delim.NewSource.
func WithFilePath(path string) Option {
	return func(cfg *fixConfig) error {
		if path == "" {
			return &csverrors.ConfigError{Option: "file path", Message: "must not be empty"}
		}
		cfg.filePath = &path
		return nil
	}
}

// WithSource reads the input from an already constructed source.
func WithSource(src delim.Source) Option {
	return func(cfg *fixConfig) error {
		cfg.source = src
		return nil
	}
}

// WithConfig starts from a full Config instead of DefaultConfig.
func WithConfig(config Config) Option {
	return func(cfg *fixConfig) error {
		cfg.config = &config
		return nil
	}
}

// WithDialect sets the delimiter and input encoding.
func WithDialect(d delim.Dialect) Option {
	return func(cfg *fixConfig) error {
		if err := d.Validate(); err != nil {
			return err
		}
		cfg.dialect = &d
		return nil
	}
}

// WithOutputPath writes the result to a file.
func WithOutputPath(path string) Option {
	return func(cfg *fixConfig) error {
		cfg.outputPath = path
		return nil
	}
}

// WithWriter writes the result to w.
func WithWriter(w io.Writer) Option {
	return func(cfg *fixConfig) error {
		cfg.writer = w
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger delim.Logger) Option {
	return func(cfg *fixConfig) error {
		cfg.logger = logger
		return nil
	}
}
