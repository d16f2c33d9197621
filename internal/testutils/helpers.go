// Package testutils holds fixtures shared by tests across packages.
package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/conneroisu/showcase/internal/config"
)

// ExampleSource renders an annotated example file. Empty fields are omitted.
func ExampleSource(title, description, html string) string {
	var sb strings.Builder
	if title != "" {
		fmt.Fprintf(&sb, "// @title %s\n", title)
	}
	if description != "" {
		fmt.Fprintf(&sb, "// @description %s\n", description)
	}
	if html != "" {
		sb.WriteString("// @html_start\n")
		for _, line := range strings.Split(strings.TrimSuffix(html, "\n"), "\n") {
			if line == "" {
				sb.WriteString("//\n")
				continue
			}
			sb.WriteString("// " + line + "\n")
		}
		sb.WriteString("// @html_end\n")
	}
	sb.WriteString("\npackage examples\n")

	return sb.String()
}

// CreateTempProject creates a project layout with an empty examples directory
// and returns its root.
func CreateTempProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(config.DefaultExamplesDir)), 0o755))

	return root
}

// WriteExample writes an annotated example named file into the project's
// examples directory and returns its path.
func WriteExample(t *testing.T, root, file, title, description, html string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(config.DefaultExamplesDir), file)
	require.NoError(t, os.WriteFile(path, []byte(ExampleSource(title, description, html)), 0o644))

	return path
}

// Chdir switches into dir for the rest of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()

	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

// CreateTestConfig returns a configuration rooted at projectDir that listens
// on an ephemeral port.
func CreateTestConfig(projectDir string) *config.Config {
	cfg := config.Default()
	cfg.Server.Port = 0
	cfg.Server.ShutdownTimeout = 5 * time.Second
	cfg.Application.Environment = "test"
	cfg.Examples.Dir = filepath.Join(projectDir, filepath.FromSlash(config.DefaultExamplesDir))
	cfg.Examples.OutputDir = filepath.Join(projectDir, filepath.FromSlash(config.DefaultOutputDir))
	cfg.Examples.SourceRoot = projectDir
	cfg.Examples.FallbackRoot = ""

	return cfg
}

// AssertFilePermissions checks the permission bits of path.
func AssertFilePermissions(t *testing.T, path string, expectedMode os.FileMode) {
	t.Helper()

	info, err := os.Stat(path)
	require.NoError(t, err)

	actualMode := info.Mode().Perm()
	require.Equal(t, expectedMode, actualMode,
		"File %s has incorrect permissions: got %o, want %o", path, actualMode, expectedMode)
}

// WaitForFileChange waits for a file to be modified after originalModTime.
func WaitForFileChange(t *testing.T, filePath string, originalModTime time.Time, timeout time.Duration) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		info, err := os.Stat(filePath)
		if err == nil && info.ModTime().After(originalModTime) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatalf("File %s was not modified within %v", filePath, timeout)
}
