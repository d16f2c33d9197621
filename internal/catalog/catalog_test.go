package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/showcase/internal/types"
)

func fixture() []types.Example {
	return []types.Example{
		{ID: "active-search", Title: "Active Search", Description: "Filter cards while typing"},
		{ID: "form-demo", Title: "Form Demo", Description: "Post a form and patch the result"},
		{ID: "theme-switcher", Title: "Theme Switcher", Description: "Swap CSS variables"},
		{ID: "hypermedia-demo", Title: "Hypermedia", Description: "Load items; dark THEME friendly"},
	}
}

func ids(examples []types.Example) []string {
	out := make([]string, 0, len(examples))
	for _, ex := range examples {
		out = append(out, ex.ID)
	}

	return out
}

func TestFilter(t *testing.T) {
	c := New(fixture())

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"active-search", "form-demo", "theme-switcher", "hypermedia-demo"}},
		{"   ", []string{"active-search", "form-demo", "theme-switcher", "hypermedia-demo"}},
		{"theme", []string{"theme-switcher", "hypermedia-demo"}},
		{"THEME", []string{"theme-switcher", "hypermedia-demo"}},
		{"form-demo", []string{"form-demo"}},
		{"patch", []string{"form-demo"}},
		{"nothing matches this", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(c.Filter(tt.query)))
		})
	}
}

func TestGetAndLen(t *testing.T) {
	c := New(fixture())
	assert.Equal(t, 4, c.Len())

	ex, ok := c.Get("form-demo")
	require.True(t, ok)
	assert.Equal(t, "Form Demo", ex.Title)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCatalogIsImmutable(t *testing.T) {
	input := fixture()
	c := New(input)

	input[0].Title = "mutated input"
	all := c.All()
	all[1].Title = "mutated output"

	assert.Equal(t, "Active Search", c.All()[0].Title)
	assert.Equal(t, "Form Demo", c.All()[1].Title)
}

func TestDuplicateIDGetReturnsFirst(t *testing.T) {
	c := New([]types.Example{{ID: "a", Title: "first"}, {ID: "a", Title: "second"}})
	ex, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "first", ex.Title)
}

func TestConcurrentReads(t *testing.T) {
	c := New(fixture())

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, c.Filter("demo"), 2)
			_, ok := c.Get("theme-switcher")
			assert.True(t, ok)
		}()
	}
	wg.Wait()
}
