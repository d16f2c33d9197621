package examples

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/conneroisu/showcase/internal/errors"
	"github.com/conneroisu/showcase/internal/renderer"
)

// SourceResolver finds example source files under an ordered list of roots.
type SourceResolver struct {
	roots []string
}

// NewSourceResolver tries roots in the order given. Empty and repeated roots
// are dropped.
func NewSourceResolver(roots ...string) *SourceResolver {
	seen := make(map[string]bool, len(roots))
	s := &SourceResolver{}
	for _, root := range roots {
		if root == "" {
			continue
		}
		clean := filepath.Clean(root)
		if seen[clean] {
			continue
		}
		seen[clean] = true
		s.roots = append(s.roots, clean)
	}

	return s
}

// Roots returns the roots in lookup order.
func (s *SourceResolver) Roots() []string {
	return append([]string(nil), s.roots...)
}

// Read returns the contents of ref from the first root that has it. ref is a
// slash-separated relative path; anything that could escape a root is refused.
func (s *SourceResolver) Read(ctx context.Context, ref string) ([]byte, error) {
	if ref == "" || path.IsAbs(ref) || filepath.IsAbs(ref) {
		return nil, errors.NewSecurityError(errors.ErrCodeInvalidPath, fmt.Sprintf("source path must be relative: %q", ref))
	}
	for _, part := range strings.Split(ref, "/") {
		if part == ".." {
			return nil, errors.NewSecurityError(errors.ErrCodePathTraversal, fmt.Sprintf("source path escapes root: %q", ref))
		}
	}

	for _, root := range s.roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(ref)))
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, errors.NewIOError(errors.ErrCodeInvalidPath, "reading example source", err).WithLocation(ref, 0)
		}
	}

	return nil, errors.NewNotFound(fmt.Sprintf("source file not found: %s", ref))
}

// StripMetadata drops the leading comment and blank lines of a source file,
// leaving the code that follows the example's metadata block.
func StripMetadata(src string) string {
	scanner := bufio.NewScanner(strings.NewReader(src))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var (
		out     strings.Builder
		leading = true
	)
	for scanner.Scan() {
		line := scanner.Text()
		if leading {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "//") {
				continue
			}
			leading = false
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}

	return out.String()
}

// Code answers with the highlighted Go source behind an example. A source
// that cannot be found renders a placeholder instead of failing.
func (h *Handlers) Code(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	ex, ok := h.catalog.Get(id)
	if !ok {
		h.render(w, r, renderer.CodeNotFound(id, id))
		return
	}

	src, err := h.sources.Read(ctx, ex.BackendFile)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		h.logger.Warn(ctx, err, "Example source unavailable",
			"example", ex.ID,
			"file", ex.BackendFile)
		h.render(w, r, renderer.CodeNotFound(ex.ID, ex.BackendFile))
		return
	}

	highlighted := h.highlighter.HighlightOrEscape(ctx, StripMetadata(string(src)), "go")
	h.render(w, r, renderer.BackendCode(ex.ID, ex.BackendFile, highlighted))
}
