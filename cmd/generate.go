package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/showcase/internal/build"
	"github.com/conneroisu/showcase/internal/config"
	"github.com/conneroisu/showcase/internal/logging"
	"github.com/conneroisu/showcase/internal/scanner"
	"github.com/conneroisu/showcase/internal/watcher"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen", "g"},
	Short:   "Rebuild the embedded example dataset",
	Long: `Scan the examples directory, validate every example and write
examples_data.yaml together with its Go accessor into the output directory.
Files are only rewritten when their content changes.

Examples:
  showcase generate                               # Use configured directories
  showcase generate --examples-dir internal/examples --output-dir internal/dataset
  showcase generate --watch                       # Rebuild whenever an example changes`,
	RunE: runGenerate,
}

var (
	generateWatch    bool
	generateDebounce time.Duration
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("examples-dir", config.DefaultExamplesDir, "Directory holding the annotated examples")
	generateCmd.Flags().String("output-dir", config.DefaultOutputDir, "Directory receiving the dataset and accessor")
	generateCmd.Flags().String("package", config.DefaultPackage, "Package name of the generated accessor")
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Keep running and rebuild on changes")
	generateCmd.Flags().DurationVar(&generateDebounce, "debounce", 300*time.Millisecond, "Quiet period before a watched rebuild")

	SetViperBindings(generateCmd, map[string]string{
		"examples-dir": "examples.dir",
		"output-dir":   "examples.output_dir",
		"package":      "examples.package",
	})
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	builder := build.NewBuilder(scanner.NewExampleScanner(logger), logger)
	opts := build.Options{
		ExamplesDir: cfg.Examples.Dir,
		OutputDir:   cfg.Examples.OutputDir,
		Package:     cfg.Examples.Package,
		Root:        ".",
	}

	if err := generateOnce(ctx, cmd, builder, opts); err != nil {
		if !generateWatch {
			return err
		}
		logger.Error(ctx, err, "Initial build failed, watching for fixes")
	}

	if !generateWatch {
		return nil
	}

	return watchAndGenerate(ctx, cmd, builder, opts, logger)
}

func generateOnce(ctx context.Context, cmd *cobra.Command, builder *build.Builder, opts build.Options) error {
	result, err := builder.Run(ctx, opts)
	if err != nil {
		return err
	}

	status := "unchanged"
	if result.Changed {
		status = "written"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d examples -> %s (%s)\n",
		len(result.Examples), filepath.ToSlash(result.YAMLPath), status)

	return nil
}

// watchAndGenerate rebuilds after every debounced batch of example changes
// until ctx is cancelled. Build failures are reported and the watch goes on.
func watchAndGenerate(ctx context.Context, cmd *cobra.Command, builder *build.Builder, opts build.Options, logger logging.Logger) error {
	fw, err := watcher.NewFileWatcher(generateDebounce, logger)
	if err != nil {
		return err
	}
	defer fw.Stop()

	fw.AddFilter(watcher.GoFilter)
	fw.AddFilter(watcher.NoTestFilter)
	fw.AddFilter(watcher.NoHiddenFilter)
	fw.AddFilter(watcher.ExcludeFilter(scanner.ReservedFile))
	fw.AddHandler(func(ctx context.Context, events []watcher.ChangeEvent) error {
		for _, ev := range events {
			logger.Debug(ctx, "Example changed", "path", ev.Path, "type", ev.Type.String())
		}

		return generateOnce(ctx, cmd, builder, opts)
	})

	if err := fw.AddPath(opts.ExamplesDir); err != nil {
		return fmt.Errorf("watching %s: %w", opts.ExamplesDir, err)
	}
	if err := fw.Start(ctx); err != nil {
		return err
	}

	logger.Info(ctx, "Watching for example changes", "dir", opts.ExamplesDir)
	<-ctx.Done()

	return nil
}
