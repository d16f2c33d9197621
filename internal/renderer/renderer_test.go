package renderer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/conneroisu/showcase/internal/theme"
	"github.com/conneroisu/showcase/internal/types"
)

func parse(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err)

	return doc
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}

	return nil
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return sb.String()
}

func examples() []types.Example {
	return []types.Example{
		{ID: "form-demo", Title: "Form Demo", Description: "desc <A>", HTML: "<form id=\"demo-form\"></form>\n", HighlightedHTML: `<span class="nt">form</span>`},
		{ID: "plain", Title: "Plain", Description: "no highlight", HTML: "<b>x</b>\n"},
	}
}

func TestPageShell(t *testing.T) {
	resolver, err := theme.NewResolver(nil)
	require.NoError(t, err)

	out, err := RenderString(context.Background(), Page(PageData{
		Title:       "Showcase <dev>",
		Environment: "development",
		Version:     "1.2.3",
		Theme:       resolver.Resolve("grape"),
	}, Gallery(examples())))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Showcase &lt;dev&gt;</title>")
	assert.Contains(t, out, datastarURL)

	doc := parse(t, out)
	style := findByID(doc, "theme")
	require.NotNil(t, style)
	assert.Contains(t, textOf(style), "--brand:var(--purple-6);")

	require.NotNil(t, findByID(doc, CardsContainerID))
	require.NotNil(t, findByID(doc, CardsID))
	assert.NotNil(t, findByID(doc, "card-form-demo"))
	assert.NotNil(t, findByID(doc, "demo-form"), "demo html is live markup")
	assert.Contains(t, out, `aria-pressed="true">Grape</button>`)
	assert.Contains(t, out, "development &middot; 1.2.3")
}

func TestExampleCards(t *testing.T) {
	out, err := RenderString(context.Background(), ExampleCards(examples()))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<div id="example-cards">`))
	assert.Contains(t, out, "desc &lt;A&gt;")
	assert.Contains(t, out, `<span class="nt">form</span>`)
	assert.Contains(t, out, "&lt;b&gt;x&lt;/b&gt;", "unhighlighted html is shown escaped")
	assert.Contains(t, out, `@get('/examples/code/form-demo')`)
	assert.Contains(t, out, `id="backend-code-plain"`)

	empty, err := RenderString(context.Background(), ExampleCards(nil))
	require.NoError(t, err)
	assert.Contains(t, empty, "No examples match your search.")
}

func TestFragments(t *testing.T) {
	ctx := context.Background()

	code, err := RenderString(ctx, BackendCode("form-demo", "internal/examples/form_demo.go", `<span class="kd">func</span>`))
	require.NoError(t, err)
	node := findByID(parse(t, code), "backend-code-form-demo")
	require.NotNil(t, node)
	assert.Contains(t, textOf(node), "internal/examples/form_demo.go")

	missing, err := RenderString(ctx, CodeNotFound("x", "a/<b>.go"))
	require.NoError(t, err)
	assert.Contains(t, missing, "Source file not found: a/&lt;b&gt;.go")

	items, err := RenderString(ctx, DataItems("Hello", "2025-01-01T00:00:00Z", []string{"Item 1", "Item <2>"}))
	require.NoError(t, err)
	assert.Contains(t, items, `<li>Item 1</li>`)
	assert.Contains(t, items, `<li>Item &lt;2&gt;</li>`)
	assert.Contains(t, items, `datetime="2025-01-01T00:00:00Z"`)

	form, err := RenderString(ctx, FormResponse("Successfully processed: Ada", ""))
	require.NoError(t, err)
	assert.Equal(t, `<div id="form-response"><p class="success">Successfully processed: Ada</p></div>`, form)
}

func TestIndexAndMarkdown(t *testing.T) {
	intro, err := Intro()
	require.NoError(t, err)

	out, err := RenderString(context.Background(), Index(intro, 4))
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Hypermedia examples</h1>")
	assert.Contains(t, out, "<strong>title</strong>")
	assert.Contains(t, out, "Browse 4 examples")

	one, err := RenderString(context.Background(), Index(intro, 1))
	require.NoError(t, err)
	assert.Contains(t, one, "Browse 1 example<")
}
