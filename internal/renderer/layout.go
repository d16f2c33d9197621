package renderer

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/conneroisu/showcase/internal/theme"
)

const (
	openPropsURL = "https://unpkg.com/open-props"
	datastarURL  = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"
)

// PageData describes the full-page shell.
type PageData struct {
	Title       string
	Environment string
	Version     string
	Theme       theme.Tables
}

const baseCSS = `body{margin:0;min-height:100vh;background:var(--surface-0);color:var(--text-1);font-family:var(--font-sans)}
main{max-width:72rem;margin:0 auto;padding:var(--size-5)}
header{display:flex;justify-content:space-between;align-items:center;gap:var(--size-3);flex-wrap:wrap}
.search-input{width:100%;padding:var(--size-3);border-radius:var(--radius-2);background:var(--surface-2);color:var(--text-1)}
#example-cards{display:grid;gap:var(--size-5);margin-top:var(--size-5)}
.example-card{background:var(--surface-1);border-radius:var(--radius-3);padding:var(--size-4);box-shadow:var(--shadow-2)}
.example-card p{color:var(--text-2)}
.demo{padding:var(--size-3);background:var(--surface-2);border-radius:var(--radius-2)}
pre.chroma{overflow-x:auto;padding:var(--size-3);border-radius:var(--radius-2)}
.theme-picker button{margin-inline-start:var(--size-1)}
footer{color:var(--text-2);font-size:var(--font-size-0);margin-top:var(--size-7)}`

// Page wraps body in the HTML document shell with the resolved theme inlined.
func Page(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(data.Title)
		h.raw(`</title><link rel="stylesheet" href="` + openPropsURL + `">`)
		h.raw(`<script type="module" src="` + datastarURL + `"></script>`)
		h.raw(`<style>` + baseCSS + `</style>`)
		h.component(ctx, StyleBlock(data.Theme))
		h.raw(`</head><body data-signals="{search: '', theme: '`)
		h.text(data.Theme.Theme.String())
		h.raw(`'}"><main><header><h1><a href="/">`)
		h.text(data.Title)
		h.raw(`</a></h1>`)
		h.component(ctx, ThemePicker(data.Theme.Theme))
		h.raw(`</header>`)
		h.component(ctx, body)
		h.raw(`<footer>`)
		h.text(data.Environment)
		if data.Version != "" {
			h.raw(` &middot; `)
			h.text(data.Version)
		}
		h.raw(`</footer></main></body></html>`)

		return h.err
	})
}

// StyleBlock is the `<style id="theme">` element that theme switches replace.
func StyleBlock(tables theme.Tables) templ.Component {
	return templ.Raw(tables.StyleBlock())
}

// ThemePicker renders one button per theme, marking the active one.
func ThemePicker(current theme.Theme) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<nav class="theme-picker" aria-label="Theme">`)
		for _, t := range theme.All() {
			h.raw(`<button type="button" data-on-click="$theme = '`)
			h.text(t.String())
			h.raw(`'; @get('/examples/theme/switch?theme=`)
			h.text(t.String())
			h.raw(`')"`)
			if t == current {
				h.raw(` aria-pressed="true"`)
			}
			h.raw(`>`)
			h.text(t.Label())
			h.raw(`</button>`)
		}
		h.raw(`</nav>`)

		return h.err
	})
}
