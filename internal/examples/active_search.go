// @title Active Search
// @description Search examples as you type with instant results
// @html_start
// <input
//     type="search"
//     placeholder="Search examples..."
//     data-bind-search
//     data-on-input__debounce.200ms="@get('/examples/search')"
//     class="search-input"
// >
// <!-- Results replace the contents of #example-cards-container -->
// @html_end

package examples

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/conneroisu/showcase/internal/errors"
	"github.com/conneroisu/showcase/internal/logging"
	"github.com/conneroisu/showcase/internal/renderer"
)

// searchSignals is the part of the Datastar signal store the search reads.
type searchSignals struct {
	Search string `json:"search"`
}

var lower = cases.Lower(language.Und)

// searchQuery prefers the `search` signal and falls back to the q and search
// query parameters. The result is lower-cased.
func searchQuery(r *http.Request) string {
	var signals searchSignals
	if err := datastar.ReadSignals(r, &signals); err == nil && strings.TrimSpace(signals.Search) != "" {
		return lower.String(strings.TrimSpace(signals.Search))
	}

	q := r.URL.Query().Get("q")
	if q == "" {
		q = r.URL.Query().Get("search")
	}

	return lower.String(strings.TrimSpace(q))
}

// Search filters the catalog and patches the matching cards into
// #example-cards-container. With ?format=html the same fragment is returned
// as a plain HTML swap instead of a server-sent patch event.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := searchQuery(r)

	results := h.catalog.Filter(query)
	for i := range results {
		results[i].HighlightedHTML = h.highlighter.HighlightOrEscape(ctx, results[i].HTML, "markup")
	}

	h.logger.Debug(ctx, "Search",
		"query", logging.SanitizeForLog(query),
		"results", len(results))

	if r.URL.Query().Get("format") == "html" {
		h.render(w, r, renderer.ExampleCards(results))
		return
	}

	fragment, err := renderer.RenderString(ctx, renderer.ExampleCards(results))
	if err != nil {
		h.writeError(w, r, errors.NewInternalError(errors.ErrCodeRenderFailed, "rendering search results", err))
		return
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElements(fragment,
		datastar.WithSelector("#"+renderer.CardsContainerID),
		datastar.WithMode(datastar.ElementPatchModeInner),
	); err != nil {
		h.logger.Warn(ctx, err, "Failed to send search patch")
	}
}
