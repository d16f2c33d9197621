// Package catalog holds the examples loaded for the lifetime of the server.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/conneroisu/showcase/internal/types"
)

// Catalog is an ordered, read-only set of examples. It is built once at
// startup and shared by every request without locking.
type Catalog struct {
	examples []types.Example
	byID     map[string]int
	// folded holds the lower-cased title, description and id of each example
	folded [][3]string
}

var fold = cases.Lower(language.Und)

// New copies examples into a catalog, keeping their order. If two examples
// share an id, Get returns the first.
func New(examples []types.Example) *Catalog {
	c := &Catalog{
		examples: make([]types.Example, len(examples)),
		byID:     make(map[string]int, len(examples)),
		folded:   make([][3]string, len(examples)),
	}
	copy(c.examples, examples)

	for i, ex := range c.examples {
		if _, exists := c.byID[ex.ID]; !exists {
			c.byID[ex.ID] = i
		}
		c.folded[i] = [3]string{fold.String(ex.Title), fold.String(ex.Description), fold.String(ex.ID)}
	}

	return c
}

// All returns every example in build order.
func (c *Catalog) All() []types.Example {
	out := make([]types.Example, len(c.examples))
	copy(out, c.examples)

	return out
}

// Get looks an example up by id.
func (c *Catalog) Get(id string) (types.Example, bool) {
	i, ok := c.byID[id]
	if !ok {
		return types.Example{}, false
	}

	return c.examples[i], true
}

// Len returns the number of examples.
func (c *Catalog) Len() int {
	return len(c.examples)
}

// Filter returns the examples whose title, description or id contains query,
// ignoring case, in build order. A blank query matches everything.
func (c *Catalog) Filter(query string) []types.Example {
	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		return c.All()
	}

	var out []types.Example
	for i, ex := range c.examples {
		f := c.folded[i]
		if strings.Contains(f[0], q) || strings.Contains(f[1], q) || strings.Contains(f[2], q) {
			out = append(out, ex)
		}
	}
	if out == nil {
		out = []types.Example{}
	}

	return out
}
