package renderer

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/conneroisu/showcase/internal/types"
)

const (
	// CardsContainerID is the element search results are patched into.
	CardsContainerID = "example-cards-container"
	// CardsID wraps the rendered cards inside the container.
	CardsID = "example-cards"
)

// BackendCodeID is the element that receives an example's source code.
func BackendCodeID(exampleID string) string {
	return "backend-code-" + exampleID
}

// Index is the landing page body.
func Index(intro templ.Component, count int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="intro">`)
		h.component(ctx, intro)
		h.raw(`<p><a href="/examples">Browse `)
		h.text(strconv.Itoa(count))
		if count == 1 {
			h.raw(` example`)
		} else {
			h.raw(` examples`)
		}
		h.raw(`</a></p></section>`)

		return h.err
	})
}

// Gallery is the examples page body: a live search box above every card.
func Gallery(examples []types.Example) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="gallery"><input type="search" class="search-input" placeholder="Search examples..." `)
		h.raw(`data-bind-search data-on-input__debounce.200ms="@get('/examples/search')">`)
		h.raw(`<div id="` + CardsContainerID + `">`)
		h.component(ctx, ExampleCards(examples))
		h.raw(`</div></section>`)

		return h.err
	})
}

// ExampleCards renders the cards wrapped in the #example-cards element.
func ExampleCards(examples []types.Example) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div id="` + CardsID + `">`)
		if len(examples) == 0 {
			h.raw(`<p class="empty">No examples match your search.</p>`)
		}
		for _, ex := range examples {
			h.component(ctx, Card(ex))
		}
		h.raw(`</div>`)

		return h.err
	})
}

// Card shows one example: its live demo markup, the highlighted markup, and
// a slot for the backend code loaded on demand.
func Card(ex types.Example) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<article class="example-card" id="card-`)
		h.text(ex.ID)
		h.raw(`"><h2>`)
		h.text(ex.Title)
		h.raw(`</h2><p>`)
		h.text(ex.Description)
		h.raw(`</p><div class="demo">`)
		h.raw(ex.HTML)
		h.raw(`</div><details><summary>HTML</summary><pre class="chroma"><code>`)
		if ex.HighlightedHTML != "" {
			h.raw(ex.HighlightedHTML)
		} else {
			h.text(ex.HTML)
		}
		h.raw(`</code></pre></details>`)
		h.raw(`<button type="button" data-on-click="@get('/examples/code/`)
		h.text(ex.ID)
		h.raw(`')">View backend code</button><div id="`)
		h.text(BackendCodeID(ex.ID))
		h.raw(`"></div></article>`)

		return h.err
	})
}
