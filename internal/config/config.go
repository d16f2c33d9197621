// Package config provides configuration management for the showcase server
// and dataset builder using Viper for layered loading from files, environment
// variables, and command-line flags.
//
// Environment overrides use the SHOWCASE_ prefix with dots replaced by
// underscores (SHOWCASE_SERVER_PORT overrides server.port).
package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the fully resolved runtime configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" yaml:"server"`
	Application ApplicationConfig `mapstructure:"application" yaml:"application"`
	Examples    ExamplesConfig    `mapstructure:"examples" yaml:"examples"`
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port" yaml:"port"`
	Host            string        `mapstructure:"host" yaml:"host"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

type ApplicationConfig struct {
	Name        string `mapstructure:"name" yaml:"name"`
	Environment string `mapstructure:"environment" yaml:"environment"`
}

// ExamplesConfig locates the annotated example sources and the generated dataset.
type ExamplesConfig struct {
	// Dir holds the annotated example files scanned by the builder
	Dir string `mapstructure:"dir" yaml:"dir"`
	// OutputDir receives examples_data.yaml and its accessor
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	// Package is the Go package name of the generated accessor
	Package string `mapstructure:"package" yaml:"package"`
	// SourceRoot is tried first when serving an example's backend file
	SourceRoot string `mapstructure:"source_root" yaml:"source_root"`
	// FallbackRoot is tried when the file is missing under SourceRoot
	FallbackRoot string `mapstructure:"fallback_root" yaml:"fallback_root"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Defaults
const (
	DefaultHost            = "127.0.0.1"
	DefaultPort            = 8080
	DefaultShutdownTimeout = 30 * time.Second
	DefaultName            = "showcase"
	DefaultEnvironment     = "development"
	DefaultExamplesDir     = "internal/examples"
	DefaultOutputDir       = "internal/dataset"
	DefaultPackage         = "dataset"
)

var (
	validEnvironments = []string{"development", "production", "test"}
	validLevels       = []string{"trace", "debug", "info", "warn", "warning", "error", "fatal"}
	validFormats      = []string{"text", "json"}
)

// Load resolves the configuration from the global viper instance.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the built-in configuration, ignoring viper.
func Default() *Config {
	config := &Config{Server: ServerConfig{Port: DefaultPort}}
	applyDefaults(config)

	return config
}

func applyDefaults(config *Config) {
	if !viper.IsSet("server.port") {
		config.Server.Port = DefaultPort
	}
	if config.Server.Host == "" {
		config.Server.Host = DefaultHost
	}
	if config.Server.ShutdownTimeout <= 0 {
		config.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if config.Application.Name == "" {
		config.Application.Name = DefaultName
	}
	if config.Application.Environment == "" {
		config.Application.Environment = DefaultEnvironment
	}

	if config.Examples.Dir == "" {
		config.Examples.Dir = DefaultExamplesDir
	}
	if config.Examples.OutputDir == "" {
		config.Examples.OutputDir = DefaultOutputDir
	}
	if config.Examples.Package == "" {
		config.Examples.Package = DefaultPackage
	}
	if config.Examples.SourceRoot == "" {
		config.Examples.SourceRoot = "."
	}
	if config.Examples.FallbackRoot == "" {
		config.Examples.FallbackRoot = executableDir()
	}

	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Logging.Format == "" {
		config.Logging.Format = "text"
	}
}

// executableDir is where a deployed binary expects its example sources to sit.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}

	return filepath.Dir(exe)
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// IsProduction reports whether the application runs in production.
func (c *Config) IsProduction() bool {
	return c.Application.Environment == "production"
}

// validateConfig validates configuration values for security and correctness
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	if !contains(validEnvironments, config.Application.Environment) {
		return fmt.Errorf("application config: unknown environment %q, must be one of: %s",
			config.Application.Environment, strings.Join(validEnvironments, ", "))
	}

	if err := validateExamplesConfig(&config.Examples); err != nil {
		return fmt.Errorf("examples config: %w", err)
	}

	if !contains(validLevels, strings.ToLower(config.Logging.Level)) {
		return fmt.Errorf("logging config: unknown level %q", config.Logging.Level)
	}
	if !contains(validFormats, config.Logging.Format) {
		return fmt.Errorf("logging config: unknown format %q, must be one of: %s",
			config.Logging.Format, strings.Join(validFormats, ", "))
	}

	return nil
}

// validateServerConfig validates server configuration values
func validateServerConfig(config *ServerConfig) error {
	// Allow 0 for system-assigned ports in testing
	if config.Port < 0 || config.Port > 65535 {
		return fmt.Errorf("port %d is not in valid range 0-65535", config.Port)
	}

	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'", "\\"}
	for _, char := range dangerousChars {
		if strings.Contains(config.Host, char) {
			return fmt.Errorf("host contains dangerous character: %s", char)
		}
	}

	return nil
}

func validateExamplesConfig(config *ExamplesConfig) error {
	for name, path := range map[string]string{
		"dir":        config.Dir,
		"output_dir": config.OutputDir,
	} {
		if err := validatePath(path); err != nil {
			return fmt.Errorf("invalid %s '%s': %w", name, path, err)
		}
	}

	if !isIdentifier(config.Package) {
		return fmt.Errorf("package %q is not a valid Go identifier", config.Package)
	}

	return nil
}

// validatePath validates a file path for security
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path contains traversal: %s", path)
	}

	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'"}
	for _, char := range dangerousChars {
		if strings.Contains(cleanPath, char) {
			return fmt.Errorf("path contains dangerous character: %s", char)
		}
	}

	return nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}

	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
