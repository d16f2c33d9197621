// Package build compiles annotated example sources into the embedded dataset.
//
// A build scans the examples directory, validates the accepted examples,
// serializes them to YAML, and renders a Go accessor that embeds the YAML and
// decodes it once at startup. Outputs are only rewritten when their content
// changes so that repeated builds leave timestamps alone.
package build

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/conneroisu/showcase/internal/errors"
	"github.com/conneroisu/showcase/internal/logging"
	"github.com/conneroisu/showcase/internal/scanner"
	"github.com/conneroisu/showcase/internal/types"
)

// Options configures one build.
type Options struct {
	// ExamplesDir holds the annotated example files
	ExamplesDir string
	// OutputDir receives the dataset and the accessor
	OutputDir string
	// Package is the accessor's Go package name
	Package string
	// ImportBase overrides DefaultImportBase in the accessor
	ImportBase string
	// Root, when set, makes backend_file paths relative to it
	Root string
}

// BuildResult describes a finished build.
type BuildResult struct {
	Examples     []types.Example
	YAMLPath     string
	AccessorPath string
	Changed      bool
	Duration     time.Duration
}

// Builder runs the scan, validate, and emit stages.
type Builder struct {
	scanner *scanner.ExampleScanner
	logger  logging.Logger
}

// NewBuilder creates a builder. A nil scanner gets a default one.
func NewBuilder(s *scanner.ExampleScanner, logger logging.Logger) *Builder {
	if logger == nil {
		logger = logging.NewTestLogger()
	}
	if s == nil {
		s = scanner.NewExampleScanner(logger)
	}

	return &Builder{
		scanner: s,
		logger:  logger.WithComponent("builder"),
	}
}

// Run performs a full build.
func (b *Builder) Run(ctx context.Context, opts Options) (*BuildResult, error) {
	start := time.Now()
	op := logging.StartOperation(b.logger, "generate")

	result, err := b.run(ctx, opts)
	if err != nil {
		op.EndWithError(ctx, err)
		return nil, err
	}

	result.Duration = time.Since(start)
	op.End(ctx,
		"examples", len(result.Examples),
		"changed", result.Changed,
		"output", opts.OutputDir)

	return result, nil
}

func (b *Builder) run(ctx context.Context, opts Options) (*BuildResult, error) {
	if opts.ExamplesDir == "" || opts.OutputDir == "" {
		return nil, errors.NewConfigError(errors.ErrCodeConfigInvalid, "examples and output directories are required")
	}

	examples, err := b.scanner.Scan(ctx, opts.ExamplesDir)
	if err != nil {
		return nil, fmt.Errorf("scanning examples: %w", err)
	}

	if opts.Root != "" {
		for i := range examples {
			examples[i].BackendFile = relativeTo(opts.Root, examples[i].BackendFile)
		}
	}

	if err := Validate(examples); err != nil {
		return nil, err
	}

	data, err := EncodeDataset(examples)
	if err != nil {
		return nil, err
	}

	accessor, err := GenerateAccessor(AccessorOptions{
		Package:    opts.Package,
		ImportBase: opts.ImportBase,
		DataFile:   DatasetFile,
	})
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, errors.NewIOError(errors.ErrCodeInvalidPath, "creating output directory", err).
			WithLocation(opts.OutputDir, 0)
	}

	result := &BuildResult{
		Examples:     examples,
		YAMLPath:     filepath.Join(opts.OutputDir, DatasetFile),
		AccessorPath: filepath.Join(opts.OutputDir, AccessorFile),
	}

	for path, content := range map[string][]byte{
		result.YAMLPath:     data,
		result.AccessorPath: accessor,
	} {
		changed, err := writeFileIfChanged(path, content)
		if err != nil {
			return nil, err
		}
		result.Changed = result.Changed || changed
	}

	return result, nil
}

// relativeTo rewrites a slash path relative to root when it lies beneath it.
// Both sides are made absolute first so a relative root still matches an
// absolute path and the reverse.
func relativeTo(root, slashPath string) string {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return slashPath
	}
	absPath, err := filepath.Abs(filepath.FromSlash(slashPath))
	if err != nil {
		return slashPath
	}

	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return slashPath
	}

	return filepath.ToSlash(rel)
}

// writeFileIfChanged replaces path atomically unless it already holds content.
func writeFileIfChanged(path string, content []byte) (bool, error) {
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, content) {
		return false, nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return false, errors.NewIOError(errors.ErrCodeInvalidPath, "creating temp file", err).WithLocation(path, 0)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return false, errors.NewIOError(errors.ErrCodeInvalidPath, "writing output", err).WithLocation(path, 0)
	}
	if err := tmp.Close(); err != nil {
		return false, errors.NewIOError(errors.ErrCodeInvalidPath, "writing output", err).WithLocation(path, 0)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return false, errors.NewIOError(errors.ErrCodeInvalidPath, "setting permissions", err).WithLocation(path, 0)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return false, errors.NewIOError(errors.ErrCodeInvalidPath, "replacing output", err).WithLocation(path, 0)
	}

	return true, nil
}
