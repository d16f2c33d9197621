// Package scanner discovers gallery examples in annotated Go source files.
//
// The scanner lists candidate files in a directory in lexicographic order,
// parses each one for its metadata block with a bounded pool of workers, and
// returns the accepted examples in that same order so that the generated
// dataset is reproducible across platforms.
package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/conneroisu/showcase/internal/errors"
	"github.com/conneroisu/showcase/internal/logging"
	"github.com/conneroisu/showcase/internal/types"
)

const (
	// SourceExt is the extension of candidate example files.
	SourceExt = ".go"
	// ReservedFile holds package documentation and shared handler wiring.
	ReservedFile = "doc.go"

	maxFileSize = 1 << 20
)

// ScanJob asks a worker to parse the candidate at index.
type ScanJob struct {
	index    int
	filePath string
}

// ScanResult carries one parsed candidate back to the collector.
type ScanResult struct {
	index    int
	example  types.Example
	accepted bool
	err      error
}

// ExampleScanner parses annotated example files into examples.
type ExampleScanner struct {
	logger      logging.Logger
	workerCount int
}

// NewExampleScanner creates a scanner sized to the machine, capped at 8 workers.
func NewExampleScanner(logger logging.Logger) *ExampleScanner {
	if logger == nil {
		logger = logging.NewTestLogger()
	}

	workerCount := runtime.NumCPU()
	if workerCount > 8 {
		workerCount = 8 // diminishing returns past this point
	}

	return &ExampleScanner{
		logger:      logger.WithComponent("scanner"),
		workerCount: workerCount,
	}
}

// WithWorkers overrides the worker count.
func (s *ExampleScanner) WithWorkers(n int) *ExampleScanner {
	if n < 1 {
		n = 1
	}
	s.workerCount = n

	return s
}

// DeriveID turns a file name into an example id: the base name without its
// extension, with every underscore replaced by a hyphen.
func DeriveID(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	return strings.ReplaceAll(base, "_", "-")
}

// IsCandidate reports whether a file name can hold an example.
func IsCandidate(name string) bool {
	return filepath.Ext(name) == SourceExt &&
		name != ReservedFile &&
		!strings.HasSuffix(name, "_test.go")
}

// Candidates lists the candidate files directly inside dir, sorted by name.
func (s *ExampleScanner) Candidates(dir string) ([]string, error) {
	cleanDir, err := validatePath(dir)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(cleanDir)
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeInvalidPath, "reading examples directory", err).
			WithLocation(cleanDir, 0)
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !IsCandidate(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(cleanDir, entry.Name()))
	}
	sort.Strings(files)

	return files, nil
}

// Scan parses every candidate in dir and returns the accepted examples in
// sorted file order. Files without a title or description are skipped.
func (s *ExampleScanner) Scan(ctx context.Context, dir string) ([]types.Example, error) {
	files, err := s.Candidates(dir)
	if err != nil {
		return nil, err
	}

	results, err := s.processBatch(ctx, files)
	if err != nil {
		return nil, err
	}

	examples := make([]types.Example, 0, len(results))
	for _, result := range results {
		if result.err != nil {
			return nil, result.err
		}
		if !result.accepted {
			s.logger.Debug(ctx, "Skipping file without example metadata",
				"file", files[result.index])
			continue
		}
		examples = append(examples, result.example)
	}

	s.logger.Info(ctx, "Scanned examples",
		"dir", dir,
		"candidates", len(files),
		"examples", len(examples))

	return examples, nil
}

// processBatch fans the files out over the worker pool and returns the
// results indexed like files.
func (s *ExampleScanner) processBatch(ctx context.Context, files []string) ([]ScanResult, error) {
	results := make([]ScanResult, len(files))

	// Small batches are not worth the goroutines.
	if len(files) <= 5 || s.workerCount == 1 {
		for i, file := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = s.scanJob(ScanJob{index: i, filePath: file})
		}

		return results, nil
	}

	jobs := make(chan ScanJob, s.workerCount*2)
	out := make(chan ScanResult, len(files))

	var wg sync.WaitGroup
	for w := 0; w < s.workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				out <- s.scanJob(job)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, file := range files {
			select {
			case jobs <- ScanJob{index: i, filePath: file}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	for result := range out {
		results[result.index] = result
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (s *ExampleScanner) scanJob(job ScanJob) ScanResult {
	example, ok, err := ScanFile(job.filePath)

	return ScanResult{index: job.index, example: example, accepted: ok, err: err}
}

// ScanFile parses a single file. The returned example's BackendFile is the
// slash-separated form of path.
func ScanFile(path string) (types.Example, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return types.Example{}, false, errors.NewIOError(errors.ErrCodeInvalidPath, "stat example", err).
			WithLocation(path, 0)
	}
	if info.Size() > maxFileSize {
		return types.Example{}, false, errors.NewIOError(errors.ErrCodeInvalidPath,
			fmt.Sprintf("example file exceeds %d bytes", maxFileSize), nil).WithLocation(path, 0)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return types.Example{}, false, errors.NewIOError(errors.ErrCodeInvalidPath, "reading example", err).
			WithLocation(path, 0)
	}

	meta, ok := ParseMetadata(string(content))
	if !ok {
		return types.Example{}, false, nil
	}

	return types.Example{
		ID:          DeriveID(path),
		Title:       meta.Title,
		Description: meta.Description,
		HTML:        meta.HTML,
		BackendFile: filepath.ToSlash(path),
	}, true, nil
}

// validatePath rejects directory traversal and returns the cleaned path.
func validatePath(path string) (string, error) {
	if path == "" {
		return "", errors.NewSecurityError(errors.ErrCodeInvalidPath, "empty path")
	}

	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".." {
			return "", errors.NewSecurityError(errors.ErrCodePathTraversal,
				fmt.Sprintf("path contains directory traversal: %s", path))
		}
	}

	return filepath.Clean(path), nil
}
