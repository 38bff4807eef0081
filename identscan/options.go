package identscan

import (
	"context"
	"fmt"
	"runtime"

	"github.com/erraggy/namecase/internal/options"
	"github.com/erraggy/namecase/nameerrors"
)

// Default resource limits.
const (
	DefaultMaxFiles    = 10000
	DefaultMaxFileSize = 10 * 1024 * 1024
)

// Option is a function that configures a scan.
type Option func(*scanConfig) error

type sourceInput struct {
	name string
	src  []byte
}

// scanConfig holds configuration for a scan
type scanConfig struct {
	// Input source (exactly one must be set)
	dir    *string
	files  []string
	source *sourceInput

	recursive    bool
	includeTests bool
	rules        Rules
	logger       Logger

	// Resource limits
	maxFiles    int
	maxFileSize int64
	workers     int
}

// ScanWithOptions scans Go source for naming violations using functional
// options.
//
// Example:
//
//	result, err := identscan.ScanWithOptions(ctx,
//	    identscan.WithDir("."),
//	    identscan.WithRecursive(true),
//	)
func ScanWithOptions(ctx context.Context, opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("identscan: invalid options: %w", err)
	}

	s := &scanJob{cfg: cfg, logger: cfg.logger}
	return s.run(ctx)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*scanConfig, error) {
	cfg := &scanConfig{
		rules:       DefaultRules(),
		logger:      NopLogger{},
		maxFiles:    DefaultMaxFiles,
		maxFileSize: DefaultMaxFileSize,
		workers:     runtime.GOMAXPROCS(0),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.RequireOneInput(
		options.Input{Name: "dir", Set: cfg.dir != nil},
		options.Input{Name: "files", Set: cfg.files != nil},
		options.Input{Name: "source", Set: cfg.source != nil},
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithDir scans the .go files in dir.
func WithDir(dir string) Option {
	return func(cfg *scanConfig) error {
		if dir == "" {
			return &nameerrors.ConfigError{Option: "dir", Message: "directory cannot be empty"}
		}
		cfg.dir = &dir
		return nil
	}
}

// WithFiles scans the listed files.
func WithFiles(paths ...string) Option {
	return func(cfg *scanConfig) error {
		if len(paths) == 0 {
			return &nameerrors.ConfigError{Option: "files", Message: "at least one file is required"}
		}
		cfg.files = append([]string(nil), paths...)
		return nil
	}
}

// WithSource scans in-memory source. name is used as the file name in
// results and errors.
func WithSource(name string, src []byte) Option {
	return func(cfg *scanConfig) error {
		if src == nil {
			return &nameerrors.ConfigError{Option: "source", Message: "source cannot be nil"}
		}
		cfg.source = &sourceInput{name: name, src: src}
		return nil
	}
}

// WithRecursive descends into subdirectories when scanning a directory.
// Hidden directories and directories named testdata or vendor are skipped.
// Default: false
func WithRecursive(enabled bool) Option {
	return func(cfg *scanConfig) error {
		cfg.recursive = enabled
		return nil
	}
}

// WithIncludeTests includes _test.go files when scanning a directory.
// Default: false
func WithIncludeTests(enabled bool) Option {
	return func(cfg *scanConfig) error {
		cfg.includeTests = enabled
		return nil
	}
}

// WithRules sets the naming rules.
// Default: DefaultRules()
func WithRules(rules Rules) Option {
	return func(cfg *scanConfig) error {
		cfg.rules = rules
		return nil
	}
}

// WithLogger sets the logger for scan diagnostics.
// If logger is nil, diagnostics are discarded.
func WithLogger(logger Logger) Option {
	return func(cfg *scanConfig) error {
		if logger == nil {
			logger = NopLogger{}
		}
		cfg.logger = logger
		return nil
	}
}

// WithMaxFiles limits the number of files a scan may read.
// Default: DefaultMaxFiles
func WithMaxFiles(n int) Option {
	return func(cfg *scanConfig) error {
		if n <= 0 {
			return &nameerrors.ConfigError{Option: "max_files", Value: n, Message: "must be positive"}
		}
		cfg.maxFiles = n
		return nil
	}
}

// WithMaxFileSize limits the size in bytes of each scanned file.
// Default: DefaultMaxFileSize
func WithMaxFileSize(n int64) Option {
	return func(cfg *scanConfig) error {
		if n <= 0 {
			return &nameerrors.ConfigError{Option: "max_file_size", Value: n, Message: "must be positive"}
		}
		cfg.maxFileSize = n
		return nil
	}
}

// WithWorkers sets how many files are parsed concurrently.
// Default: runtime.GOMAXPROCS(0)
func WithWorkers(n int) Option {
	return func(cfg *scanConfig) error {
		if n <= 0 {
			return &nameerrors.ConfigError{Option: "workers", Value: n, Message: "must be positive"}
		}
		cfg.workers = n
		return nil
	}
}
