package renderer

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// BackendCode is the highlighted source of an example.
func BackendCode(exampleID, path, highlighted string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div id="`)
		h.text(BackendCodeID(exampleID))
		h.raw(`" class="backend-code"><p class="path">`)
		h.text(path)
		h.raw(`</p><pre class="chroma"><code>`)
		h.raw(highlighted)
		h.raw(`</code></pre></div>`)

		return h.err
	})
}

// CodeNotFound stands in for source that could not be located.
func CodeNotFound(exampleID, path string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div id="`)
		h.text(BackendCodeID(exampleID))
		h.raw(`" class="backend-code missing"><p>Source file not found: `)
		h.text(path)
		h.raw(`</p></div>`)

		return h.err
	})
}

// DataItems is the payload of the hypermedia demo.
func DataItems(message, timestamp string, items []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div id="data-content"><p class="message">`)
		h.text(message)
		h.raw(`</p><time datetime="`)
		h.text(timestamp)
		h.raw(`">`)
		h.text(timestamp)
		h.raw(`</time><ul>`)
		for _, item := range items {
			h.raw(`<li>`)
			h.text(item)
			h.raw(`</li>`)
		}
		h.raw(`</ul></div>`)

		return h.err
	})
}

// FormResponse confirms a processed form submission.
func FormResponse(message, value string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div id="form-response"><p class="success">`)
		h.text(message)
		h.raw(`</p>`)
		if value != "" {
			h.raw(`<p class="value">Value: `)
			h.text(value)
			h.raw(`</p>`)
		}
		h.raw(`</div>`)

		return h.err
	})
}
