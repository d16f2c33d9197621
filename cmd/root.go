// Package cmd provides the command-line interface for the showcase.
//
// Configuration is layered, highest priority first:
//
//  1. Command-line flags (--port, --log-level, ...)
//  2. SHOWCASE_<SECTION>_<OPTION> environment variables (SHOWCASE_SERVER_PORT)
//  3. The config file: --config, else SHOWCASE_CONFIG_FILE, else .showcase.yml
//  4. Built-in defaults
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/showcase/internal/config"
	"github.com/conneroisu/showcase/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "showcase",
	Short: "A gallery of hypermedia examples served from Go",
	Long: `Showcase serves a gallery of small Datastar examples. Every example is a Go
file whose leading comment carries its title, description and demo markup;
the same file implements the endpoints the demo talks to.

Quick Start:
  showcase generate            Rebuild the embedded example dataset
  showcase serve               Start the gallery server
  showcase list                List the embedded examples

Command Aliases:
  serve (s), generate (gen, g), list (l)`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .showcase.yml, can also use SHOWCASE_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig points viper at the config file and the SHOWCASE_ environment.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("SHOWCASE_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".showcase")
	}

	viper.SetEnvPrefix("SHOWCASE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing file is fine; defaults apply.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the configuration and the logger built from it.
func loadConfig() (*config.Config, logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return cfg, newLogger(cfg), nil
}

func newLogger(cfg *config.Config) logging.Logger {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logging.LevelInfo
	}

	return logging.NewLogger(&logging.LoggerConfig{
		Level:     level,
		Format:    cfg.Logging.Format,
		Output:    os.Stderr,
		Component: cfg.Application.Name,
	})
}

// commandContext is the command's context, or Background when the command
// was invoked directly rather than through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
