// Package server hosts the showcase: the full pages, the health probe and
// the fragment endpoints of internal/examples, behind one chi router.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/conneroisu/showcase/internal/catalog"
	"github.com/conneroisu/showcase/internal/config"
	"github.com/conneroisu/showcase/internal/examples"
	"github.com/conneroisu/showcase/internal/highlight"
	"github.com/conneroisu/showcase/internal/logging"
	"github.com/conneroisu/showcase/internal/renderer"
	"github.com/conneroisu/showcase/internal/theme"
)

// readHeaderTimeout bounds how long a client may take to send headers.
const readHeaderTimeout = 10 * time.Second

// Deps are the long-lived collaborators shared by every request.
type Deps struct {
	Catalog     *catalog.Catalog
	Highlighter *highlight.Highlighter
	Themes      *theme.Resolver
	Sources     *examples.SourceResolver
	Logger      logging.Logger
	Version     string
}

// Server serves the gallery.
type Server struct {
	config   *config.Config
	catalog  *catalog.Catalog
	hl       *highlight.Highlighter
	themes   *theme.Resolver
	logger   logging.Logger
	version  string
	intro    templ.Component
	handler  http.Handler
	examples *examples.Handlers

	serverMutex  sync.Mutex
	httpServer   *http.Server
	shutdownOnce sync.Once
	shutdownErr  error
}

// New assembles the router. Missing highlighter and theme collaborators are
// created with their defaults.
func New(cfg *config.Config, deps Deps) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("server: config is required")
	}
	if deps.Catalog == nil {
		return nil, fmt.Errorf("server: catalog is required")
	}

	logger := deps.Logger
	if logger == nil {
		logger = logging.NewTestLogger()
	}
	hl := deps.Highlighter
	if hl == nil {
		hl = highlight.New(logger)
	}
	themes := deps.Themes
	if themes == nil {
		var err error
		if themes, err = theme.NewResolver(hl); err != nil {
			return nil, fmt.Errorf("server: building themes: %w", err)
		}
	}
	sources := deps.Sources
	if sources == nil {
		sources = examples.NewSourceResolver(cfg.Examples.SourceRoot, cfg.Examples.FallbackRoot)
	}

	intro, err := renderer.Intro()
	if err != nil {
		return nil, fmt.Errorf("server: rendering intro: %w", err)
	}

	s := &Server{
		config:  cfg,
		catalog: deps.Catalog,
		hl:      hl,
		themes:  themes,
		logger:  logger.WithComponent("server"),
		version: deps.Version,
		intro:   intro,
		examples: examples.NewHandlers(examples.Deps{
			Catalog:     deps.Catalog,
			Highlighter: hl,
			Themes:      themes,
			Sources:     sources,
			Logger:      logger,
		}),
	}
	s.handler = s.routes()

	return s, nil
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(chimw.RealIP)
	r.Use(RequestLogger(s.logger))
	r.Use(Recoverer(s.logger))
	r.Use(SecurityHeaders)

	r.Get("/", s.handleIndex)
	r.Get("/examples", s.handleGallery)
	r.Get("/health", s.handleHealth)
	s.examples.Mount(r)

	r.NotFound(s.handleNotFound)
	r.MethodNotAllowed(s.handleMethodNotAllowed)

	return r
}

// Handler returns the fully wrapped router.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start listens on the configured address and serves until ctx is cancelled
// or Shutdown is called. Cancellation triggers a graceful shutdown bounded by
// the configured timeout.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.config.Addr(), err)
	}

	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.serverMutex.Lock()
	s.httpServer = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	server := s.httpServer
	s.serverMutex.Unlock()

	stop := context.AfterFunc(ctx, func() {
		timeout := s.config.Server.ShutdownTimeout
		if timeout <= 0 {
			timeout = config.DefaultShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()

		if err := s.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, err, "Graceful shutdown failed")
		}
	})
	defer stop()

	s.logger.Info(ctx, "Server listening",
		"addr", ln.Addr().String(),
		"examples", s.catalog.Len())

	if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
// Only the first call does any work; later calls return its result.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() {
		s.serverMutex.Lock()
		server := s.httpServer
		s.serverMutex.Unlock()

		if server == nil {
			return
		}

		s.logger.Info(ctx, "Shutting down server")
		s.shutdownErr = server.Shutdown(ctx)
	})

	return s.shutdownErr
}
