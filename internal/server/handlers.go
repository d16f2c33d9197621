package server

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"

	"github.com/conneroisu/showcase/internal/errors"
	"github.com/conneroisu/showcase/internal/renderer"
	"github.com/conneroisu/showcase/internal/theme"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, renderer.Index(s.intro, s.catalog.Len()))
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	examples := s.catalog.All()
	for i := range examples {
		examples[i].HighlightedHTML = s.hl.HighlightOrEscape(r.Context(), examples[i].HTML, "markup")
	}

	s.renderPage(w, r, renderer.Gallery(examples))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(HealthResponse{
		Status:  "healthy",
		Service: s.config.Application.Name,
		Version: s.version,
	}); err != nil {
		s.logger.Warn(r.Context(), err, "Failed to encode health response")
	}
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	errors.WriteJSON(w, r, s.logger, errors.NewNotFound("Not found"))
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	_ = json.NewEncoder(w).Encode(errors.Response{Error: "Method not allowed"})
}

// renderPage wraps body in the page shell painted with the visitor's theme.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, body templ.Component) {
	page := renderer.Page(renderer.PageData{
		Title:       s.config.Application.Name,
		Environment: s.config.Application.Environment,
		Version:     s.version,
		Theme:       s.themes.ResolveTheme(theme.FromRequest(r)),
	}, body)

	html, err := renderer.RenderString(r.Context(), page)
	if err != nil {
		errors.WriteJSON(w, r, s.logger, errors.NewInternalError(errors.ErrCodeRenderFailed, "rendering page", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}
