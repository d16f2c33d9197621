package renderer

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed content/intro.md
var introMarkdown []byte

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Markdown converts trusted markdown into a component.
func Markdown(src []byte) (templ.Component, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}

	return templ.Raw(buf.String()), nil
}

// Intro is the landing page introduction.
func Intro() (templ.Component, error) {
	return Markdown(introMarkdown)
}
