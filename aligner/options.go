package aligner

import (
	"fmt"
	"io"

	"github.com/erraggy/csvtools/csverrors"
	"github.com/erraggy/csvtools/delim"
	"github.com/erraggy/csvtools/internal/options"
)

// Option is a function that configures an align operation
type Option func(*alignConfig) error

// alignConfig holds configuration for an align operation
type alignConfig struct {
	// Input sources, file paths first
	filePaths []string
	sources   []delim.Source

	// Configuration options (nil means use default from DefaultConfig)
	config  *Config
	atLeast *int
	dialect *delim.Dialect

	// Exactly one output
	outputPath string
	writer     io.Writer

	logger   delim.Logger
	progress Progress
}

// AlignWithOptions aligns delimited sources using functional options.
//
// Example:
//
//	result, err := aligner.AlignWithOptions(
//	    aligner.WithFilePaths("a.csv", "b.csv", "c.csv"),
//	    aligner.WithAtLeast(2),
//	    aligner.WithOutputPath("merged.csv"),
//	)
func AlignWithOptions(opts ...Option) (*AlignResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("aligner: invalid options: %w", err)
	}

	config := DefaultConfig()
	if cfg.config != nil {
		config = *cfg.config
	}
	if cfg.atLeast != nil {
		config.AtLeast = *cfg.atLeast
	}
	if cfg.dialect != nil {
		config.Dialect = *cfg.dialect
	}

	a := New(config)
	a.SetLogger(cfg.logger)
	a.SetProgress(cfg.progress)

	sources := make([]delim.Source, 0, len(cfg.filePaths)+len(cfg.sources))
	sources = append(sources, delim.NewSources(cfg.filePaths...)...)
	sources = append(sources, cfg.sources...)

	if cfg.outputPath != "" {
		return a.AlignToFile(sources, cfg.outputPath)
	}
	return a.AlignTo(sources, cfg.writer)
}

// applyOptions applies option functions and validates the result
func applyOptions(opts ...Option) (*alignConfig, error) {
	cfg := &alignConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if len(cfg.filePaths)+len(cfg.sources) == 0 {
		return nil, &csverrors.ConfigError{Option: "sources", Message: "at least one input is required"}
	}
	if err := options.ValidateSingleInputSource("output",
		"an output path or writer is required", "output path and writer are mutually exclusive",
		cfg.outputPath != "", cfg.writer != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePaths adds inputs by path. Paths are read through delim.NewSource,
// so compressed and .xlsx inputs are accepted.
func WithFilePaths(paths ...string) Option {
	return func(cfg *alignConfig) error {
		for _, p := range paths {
			if p == "" {
				return &csverrors.ConfigError{Option: "file path", Message: "must not be empty"}
			}
		}
		cfg.filePaths = append(cfg.filePaths, paths...)
		return nil
	}
}

// WithSources adds already constructed sources, after any file paths.
func WithSources(sources ...delim.Source) Option {
	return func(cfg *alignConfig) error {
		for _, src := range sources {
			if src == nil {
				return &csverrors.ConfigError{Option: "sources", Message: "nil source"}
			}
		}
		cfg.sources = append(cfg.sources, sources...)
		return nil
	}
}

// WithConfig starts from a full Config instead of DefaultConfig.
// WithAtLeast and WithDialect still override it.
func WithConfig(config Config) Option {
	return func(cfg *alignConfig) error {
		cfg.config = &config
		return nil
	}
}

// WithAtLeast sets the exclusive occurrence threshold.
func WithAtLeast(n int) Option {
	return func(cfg *alignConfig) error {
		if n < 0 {
			return &csverrors.ConfigError{Option: "at-least", Value: n, Message: "must not be negative"}
		}
		cfg.atLeast = &n
		return nil
	}
}

// WithDialect sets the delimiter and input encoding.
func WithDialect(d delim.Dialect) Option {
	return func(cfg *alignConfig) error {
		if err := d.Validate(); err != nil {
			return err
		}
		cfg.dialect = &d
		return nil
	}
}

// WithOutputPath writes the result to a file, created only if there is something to write.
func WithOutputPath(path string) Option {
	return func(cfg *alignConfig) error {
		cfg.outputPath = path
		return nil
	}
}

// WithWriter writes the result to w.
func WithWriter(w io.Writer) Option {
	return func(cfg *alignConfig) error {
		cfg.writer = w
		return nil
	}
}

// WithLogger sets the logger for progress and count messages.
func WithLogger(logger delim.Logger) Option {
	return func(cfg *alignConfig) error {
		cfg.logger = logger
		return nil
	}
}

// WithProgress sets the per-source progress reporter.
func WithProgress(progress Progress) Option {
	return func(cfg *alignConfig) error {
		cfg.progress = progress
		return nil
	}
}
