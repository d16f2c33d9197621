// Package theme resolves the gallery's color themes.
//
// A theme is one of a closed set. Each resolves to a block of CSS custom
// properties layered on Open Props and to a chroma stylesheet for
// highlighted code. Unknown names resolve to Light and are never an error.
package theme

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/conneroisu/showcase/internal/highlight"
)

// Theme is one of the supported color themes.
type Theme int

const (
	Light Theme = iota
	Dark
	Dim
	Grape
)

// Default is used whenever no valid theme is given.
const Default = Light

// CookieName is the cookie that remembers the chosen theme.
const CookieName = "theme"

// CookieMaxAge keeps the choice for a year.
const CookieMaxAge = 365 * 24 * 60 * 60

var names = [...]string{"light", "dark", "dim", "grape"}

// chroma style used for code blocks under each theme
var syntaxStyles = [...]string{"github", "github-dark", "nord", "dracula"}

var titleCaser = cases.Title(language.English)

// All lists every theme in display order.
func All() []Theme {
	return []Theme{Light, Dark, Dim, Grape}
}

// String returns the lowercase name used in cookies and query strings.
func (t Theme) String() string {
	if t < Light || t > Grape {
		return names[Default]
	}

	return names[t]
}

// Label returns the name shown in the theme picker.
func (t Theme) Label() string {
	return titleCaser.String(t.String())
}

// Parse reads a theme name case-insensitively. Unknown names yield Default
// and false.
func Parse(s string) (Theme, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if s == name {
			return Theme(i), true
		}
	}

	return Default, false
}

// FromRequest returns the theme remembered in the request's cookie.
func FromRequest(r *http.Request) Theme {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return Default
	}
	t, _ := Parse(c.Value)

	return t
}

// Cookie builds the cookie that remembers value. The value is stored as given.
func Cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   CookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	}
}

// Tables is everything a page needs to paint one theme.
type Tables struct {
	Theme     Theme
	Variables string
	Syntax    string
}

// StyleBlock renders the tables as the page's `<style id="theme">` element.
func (t Tables) StyleBlock() string {
	var sb strings.Builder
	sb.WriteString(`<style id="theme">`)
	sb.WriteString(":root{")
	sb.WriteString(t.Variables)
	sb.WriteString("}\n")
	sb.WriteString(t.Syntax)
	sb.WriteString("</style>")

	return sb.String()
}

// Resolver maps theme names onto precomputed tables.
type Resolver struct {
	tables [len(names)]Tables
}

// NewResolver renders every theme's tables once.
func NewResolver(h *highlight.Highlighter) (*Resolver, error) {
	if h == nil {
		h = highlight.New(nil)
	}

	r := &Resolver{}
	for _, t := range All() {
		syntax, err := h.CSS(syntaxStyles[t])
		if err != nil {
			return nil, fmt.Errorf("theme %s: %w", t, err)
		}
		r.tables[t] = Tables{
			Theme:     t,
			Variables: variables[t].css(),
			Syntax:    syntax,
		}
	}

	return r, nil
}

// Resolve returns the tables for a theme name, falling back to Default.
func (r *Resolver) Resolve(name string) Tables {
	t, _ := Parse(name)

	return r.tables[t]
}

// ResolveTheme returns the tables for an already parsed theme.
func (r *Resolver) ResolveTheme(t Theme) Tables {
	if t < Light || t > Grape {
		t = Default
	}

	return r.tables[t]
}
