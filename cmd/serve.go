package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/conneroisu/showcase/internal/catalog"
	"github.com/conneroisu/showcase/internal/dataset"
	"github.com/conneroisu/showcase/internal/examples"
	"github.com/conneroisu/showcase/internal/server"
	"github.com/conneroisu/showcase/internal/version"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the gallery server",
	Long: `Start the gallery server with the examples embedded at build time.

The server stops gracefully on SIGINT or SIGTERM, waiting up to
server.shutdown_timeout for in-flight requests.

Examples:
  showcase serve                 # Serve on 127.0.0.1:8080
  showcase serve -p 3000         # Serve on port 3000
  showcase serve --host 0.0.0.0  # Listen on every interface`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	AddStandardFlags(serveCmd, "server")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := newServer(ctx)
	if err != nil {
		return err
	}

	return srv.Start(ctx)
}

// newServer loads the configuration and the embedded dataset and assembles
// the server. A corrupt dataset is fatal.
func newServer(ctx context.Context) (*server.Server, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}

	loaded, err := dataset.Examples()
	if err != nil {
		logger.Error(ctx, err, "Embedded example dataset is unusable")
		return nil, fmt.Errorf("loading examples: %w", err)
	}

	srv, err := server.New(cfg, server.Deps{
		Catalog: catalog.New(loaded),
		Sources: examples.NewSourceResolver(cfg.Examples.SourceRoot, cfg.Examples.FallbackRoot),
		Logger:  logger,
		Version: version.Get().Short(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	logger.Info(ctx, "Starting showcase",
		"addr", "http://"+cfg.Addr(),
		"environment", cfg.Application.Environment,
		"examples", len(loaded))

	return srv, nil
}
