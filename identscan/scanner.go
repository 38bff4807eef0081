package identscan

import (
	"context"
	"errors"
	"fmt"
	"go/parser"
	"go/scanner"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/erraggy/namecase/nameerrors"
	"golang.org/x/sync/errgroup"
)

type scanJob struct {
	cfg    *scanConfig
	logger Logger
}

// fileResult holds the identifiers of one parsed file.
type fileResult struct {
	identifiers []Identifier
}

func (s *scanJob) run(ctx context.Context) (*Result, error) {
	files, err := s.listFiles()
	if err != nil {
		return nil, err
	}
	if len(files) > s.cfg.maxFiles {
		s.logger.Warn("too many files", "count", len(files), "limit", s.cfg.maxFiles)
		return nil, &nameerrors.ResourceLimitError{
			ResourceType: "file_count",
			Limit:        int64(s.cfg.maxFiles),
			Actual:       int64(len(files)),
			Message:      "too many files to scan",
		}
	}
	s.logger.Debug("scanning files", "count", len(files), "workers", s.cfg.workers)

	fset := token.NewFileSet()
	results := make([]fileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.workers)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			log := s.logger.With("file", path)
			src, err := s.readFile(path)
			if err != nil {
				log.Warn("skipping file", "error", err)
				return err
			}
			ids, err := parseFile(fset, path, src)
			if err != nil {
				log.Warn("cannot parse file", "error", err)
				return err
			}
			results[i] = fileResult{identifiers: ids}
			log.Debug("parsed file", "identifiers", len(ids))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("scan failed", "files", len(files), "error", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{Files: files}
	for _, fr := range results {
		result.Identifiers = append(result.Identifiers, fr.identifiers...)
	}
	result.Issues = evaluate(result.Identifiers, s.cfg.rules)

	s.logger.Info("scan complete",
		"files", len(files),
		"identifiers", len(result.Identifiers),
		"issues", len(result.Issues))
	return result, nil
}

// listFiles returns the files to scan in sorted order.
func (s *scanJob) listFiles() ([]string, error) {
	switch {
	case s.cfg.source != nil:
		return []string{s.cfg.source.name}, nil
	case s.cfg.files != nil:
		files := append([]string(nil), s.cfg.files...)
		sort.Strings(files)
		return files, nil
	}

	root := *s.cfg.dir
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("identscan: %w", err)
	}
	if !info.IsDir() {
		return nil, &nameerrors.ConfigError{Option: "dir", Value: root, Message: "not a directory"}
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			if !s.cfg.recursive || skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if s.wantFile(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("identscan: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

func (s *scanJob) wantFile(name string) bool {
	if !strings.HasSuffix(name, ".go") || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return false
	}
	return s.cfg.includeTests || !strings.HasSuffix(name, "_test.go")
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
		name == "testdata" || name == "vendor"
}

// readFile returns the contents of path, enforcing the size limit.
func (s *scanJob) readFile(path string) ([]byte, error) {
	if s.cfg.source != nil {
		if err := s.checkSize(path, int64(len(s.cfg.source.src))); err != nil {
			return nil, err
		}
		return s.cfg.source.src, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("identscan: %w", err)
	}
	if err := s.checkSize(path, info.Size()); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the scan configuration
	if err != nil {
		return nil, fmt.Errorf("identscan: %w", err)
	}
	return data, nil
}

func (s *scanJob) checkSize(path string, size int64) error {
	if size <= s.cfg.maxFileSize {
		return nil
	}
	return &nameerrors.ResourceLimitError{
		ResourceType: "file_size",
		Limit:        s.cfg.maxFileSize,
		Actual:       size,
		Path:         path,
	}
}

// parseFile parses src and collects its declared identifiers.
func parseFile(fset *token.FileSet, path string, src []byte) ([]Identifier, error) {
	f, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, toParseError(path, err)
	}
	return collect(fset, path, f), nil
}

func toParseError(path string, err error) error {
	var list scanner.ErrorList
	if !errors.As(err, &list) || len(list) == 0 {
		return &nameerrors.ParseError{Path: path, Cause: err}
	}
	first := list[0]
	return &nameerrors.ParseError{
		Path:    path,
		Line:    first.Pos.Line,
		Column:  first.Pos.Column,
		Message: first.Msg,
		Count:   len(list),
	}
}
