// Package highlight turns source text into HTML with semantic span classes.
package highlight

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/conneroisu/showcase/internal/logging"
)

// Plaintext is the language every unknown tag falls back to.
const Plaintext = "plaintext"

// aliases maps accepted language tags onto chroma lexer names.
var aliases = map[string]string{
	"go":         "go",
	"golang":     "go",
	"html":       "html",
	"htm":        "html",
	"markup":     "html",
	"js":         "javascript",
	"javascript": "javascript",
	"ts":         "typescript",
	"typescript": "typescript",
	"css":        "css",
	"rs":         "rust",
	"rust":       "rust",
	"yml":        "yaml",
	"yaml":       "yaml",
	"json":       "json",
	"sh":         "bash",
	"bash":       "bash",
	"shell":      "bash",
}

// Language normalizes a language tag. Unknown tags map to Plaintext.
func Language(tag string) string {
	if lang, ok := aliases[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return lang
	}

	return Plaintext
}

// Highlighter renders code with chroma using CSS classes, so colors come
// from the active theme's stylesheet rather than inline styles.
type Highlighter struct {
	formatter *chromahtml.Formatter
	logger    logging.Logger
}

// New creates a highlighter.
func New(logger logging.Logger) *Highlighter {
	if logger == nil {
		logger = logging.NewTestLogger()
	}

	return &Highlighter{
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.PreventSurroundingPre(true),
		),
		logger: logger.WithComponent("highlight"),
	}
}

// Highlight renders code in the given language. Empty code yields an empty
// string and unknown languages are escaped without any spans.
func (h *Highlighter) Highlight(code, lang string) (string, error) {
	if code == "" {
		return "", nil
	}

	name := Language(lang)
	if name == Plaintext {
		return html.EscapeString(code), nil
	}

	lexer := lexers.Get(name)
	if lexer == nil {
		return html.EscapeString(code), nil
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenising %s: %w", name, err)
	}

	var sb strings.Builder
	if err := h.formatter.Format(&sb, styles.Fallback, iterator); err != nil {
		return "", fmt.Errorf("formatting %s: %w", name, err)
	}

	return sb.String(), nil
}

// HighlightOrEscape never fails: on error the original text is returned
// escaped and the failure is logged.
func (h *Highlighter) HighlightOrEscape(ctx context.Context, code, lang string) string {
	out, err := h.Highlight(code, lang)
	if err != nil {
		h.logger.Warn(ctx, err, "Highlighting failed, serving plain text", "language", lang)
		return html.EscapeString(code)
	}

	return out
}

// CSS returns the class stylesheet for a chroma style. Unknown style names
// fall back to chroma's default style.
func (h *Highlighter) CSS(styleName string) (string, error) {
	style := styles.Get(styleName)

	var sb strings.Builder
	if err := h.formatter.WriteCSS(&sb, style); err != nil {
		return "", fmt.Errorf("writing css for %s: %w", styleName, err)
	}

	return sb.String(), nil
}
