// Package examples holds the gallery's examples and the fragment endpoints
// that drive them.
//
// Every other file in this directory is one example. Its leading comment
// block carries a title, a description and the demo HTML between
// @html_start and @html_end; `showcase generate` compiles those blocks into
// the embedded dataset. This file is reserved and never scanned.
//
// All endpoints registered here answer Datastar requests only. A request
// without the Datastar-Request header is refused with 404.
package examples

import (
	"io"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"

	"github.com/conneroisu/showcase/internal/catalog"
	"github.com/conneroisu/showcase/internal/errors"
	"github.com/conneroisu/showcase/internal/highlight"
	"github.com/conneroisu/showcase/internal/logging"
	"github.com/conneroisu/showcase/internal/renderer"
	"github.com/conneroisu/showcase/internal/theme"
)

// FragmentHeader marks a request made by the Datastar client.
const FragmentHeader = "Datastar-Request"

// FragmentOnlyMessage is returned to callers that navigate to a fragment endpoint.
const FragmentOnlyMessage = "This endpoint only serves HTML fragments"

// Deps are the collaborators the handlers share.
type Deps struct {
	Catalog     *catalog.Catalog
	Highlighter *highlight.Highlighter
	Themes      *theme.Resolver
	Sources     *SourceResolver
	Logger      logging.Logger
	// Now defaults to time.Now
	Now func() time.Time
}

// Handlers serves the example fragments.
type Handlers struct {
	catalog     *catalog.Catalog
	highlighter *highlight.Highlighter
	themes      *theme.Resolver
	sources     *SourceResolver
	logger      logging.Logger
	now         func() time.Time
	policy      *bluemonday.Policy
}

// NewHandlers wires the handlers to their collaborators.
func NewHandlers(deps Deps) *Handlers {
	logger := deps.Logger
	if logger == nil {
		logger = logging.NewTestLogger()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	sources := deps.Sources
	if sources == nil {
		sources = NewSourceResolver(".")
	}

	return &Handlers{
		catalog:     deps.Catalog,
		highlighter: deps.Highlighter,
		themes:      deps.Themes,
		sources:     sources,
		logger:      logger.WithComponent("examples"),
		now:         now,
		policy:      bluemonday.StrictPolicy(),
	}
}

// Mount registers every fragment endpoint behind the Datastar gate.
func (h *Handlers) Mount(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.RequireFragment)

		r.Get("/examples/search", h.Search)
		r.Get("/examples/elements/search", h.Search)
		r.Post("/examples/elements/submit-form", h.SubmitForm)
		r.Get("/examples/elements/get-items", h.GetItems)
		r.Get("/examples/theme/switch", h.SwitchTheme)
		r.Get("/examples/code/{id}", h.Code)
	})
}

// IsFragmentRequest reports whether r was made by the Datastar client.
func IsFragmentRequest(r *http.Request) bool {
	return r.Header.Get(FragmentHeader) != ""
}

// RequireFragment refuses requests that are not Datastar fragment requests.
// It runs before any input validation.
func (h *Handlers) RequireFragment(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsFragmentRequest(r) {
			h.writeError(w, r, errors.NewNotFound(FragmentOnlyMessage))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	errors.WriteJSON(w, r, h.logger, err)
}

// render writes c as an HTML fragment. Rendering happens before anything is
// written so a failure can still become a 500.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	html, err := renderer.RenderString(r.Context(), c)
	if err != nil {
		h.writeError(w, r, errors.NewInternalError(errors.ErrCodeRenderFailed, "rendering fragment", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := io.WriteString(w, html); err != nil {
		h.logger.Debug(r.Context(), "Client went away before fragment was written", "path", r.URL.Path)
	}
}
