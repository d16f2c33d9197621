// @title Server-Side Theme Switcher
// @description Change themes with server-generated CSS variables
// @html_start
// <div style="display: flex; flex-direction: column; gap: var(--size-3);">
//     <button data-on-click="$theme = 'light'; @get('/examples/theme/switch?theme=light')">Light Theme</button>
//     <button data-on-click="$theme = 'dark'; @get('/examples/theme/switch?theme=dark')">Dark Theme</button>
//     <button data-on-click="$theme = 'dim'; @get('/examples/theme/switch?theme=dim')">Dim Theme</button>
//     <button data-on-click="$theme = 'grape'; @get('/examples/theme/switch?theme=grape')">Grape Theme</button>
// </div>
// <div style="margin-top: var(--size-4); padding: var(--size-3); background: var(--surface-2); border-radius: var(--radius-2);">
//     <p style="color: var(--text-1); margin: 0;">Current theme: <strong data-text="$theme"></strong></p>
//     <p style="color: var(--text-2); margin: 0;">The choice is kept in a cookie and sent with every request.</p>
// </div>
// @html_end

package examples

import (
	"net/http"

	"github.com/conneroisu/showcase/internal/errors"
	"github.com/conneroisu/showcase/internal/logging"
	"github.com/conneroisu/showcase/internal/renderer"
	"github.com/conneroisu/showcase/internal/theme"
)

// SwitchTheme answers with the style block for the requested theme and
// remembers the choice in the theme cookie. Unknown names render the default
// theme; the cookie stores the name exactly as requested.
func (h *Handlers) SwitchTheme(w http.ResponseWriter, r *http.Request) {
	requested := r.URL.Query().Get("theme")
	if requested == "" {
		h.writeError(w, r, errors.NewBadRequest("Missing theme parameter"))
		return
	}

	tables := h.themes.Resolve(requested)
	if _, ok := theme.Parse(requested); !ok {
		h.logger.Debug(r.Context(), "Unknown theme, using default",
			"requested", logging.SanitizeForLog(requested),
			"theme", tables.Theme.String())
	}

	http.SetCookie(w, theme.Cookie(requested))
	h.render(w, r, renderer.StyleBlock(tables))
}
