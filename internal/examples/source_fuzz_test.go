package examples

import (
	"context"
	"strings"
	"testing"

	"github.com/conneroisu/showcase/internal/errors"
)

// FuzzSourceResolverRead checks that no reference containing a parent
// segment is ever read.
func FuzzSourceResolverRead(f *testing.F) {
	f.Add("internal/examples/form_demo.go")
	f.Add("../go.mod")
	f.Add("a/../../b")
	f.Add("/etc/passwd")
	f.Add("..")
	f.Add("")

	s := NewSourceResolver(f.TempDir())

	f.Fuzz(func(t *testing.T, ref string) {
		_, err := s.Read(context.Background(), ref)

		for _, part := range strings.Split(ref, "/") {
			if part == ".." && !errors.IsSecurityError(err) {
				t.Errorf("traversal reference %q was not refused: %v", ref, err)
			}
		}
	})
}
