package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/showcase/internal/build"
	"github.com/conneroisu/showcase/internal/dataset"
	"github.com/conneroisu/showcase/internal/testutils"
	"github.com/conneroisu/showcase/internal/version"
)

func chdirProject(t *testing.T) string {
	t.Helper()

	root := testutils.CreateTempProject(t)
	testutils.Chdir(t, root)

	return root
}

func TestGenerateCommand(t *testing.T) {
	root := chdirProject(t)
	testutils.WriteExample(t, root, "click_counter.go", "Click Counter", "Count clicks on the server",
		`<button data-on-click="@post('/examples/counter')">+1</button>`)
	testutils.WriteExample(t, root, "doc.go", "Reserved", "Never scanned", "")

	generateWatch = false
	var out bytes.Buffer
	generateCmd.SetOut(&out)
	t.Cleanup(func() { generateCmd.SetOut(nil) })

	require.NoError(t, runGenerate(generateCmd, nil))
	assert.Contains(t, out.String(), "1 examples -> internal/dataset/examples_data.yaml (written)")

	data, err := os.ReadFile(filepath.Join("internal", "dataset", build.DatasetFile))
	require.NoError(t, err)
	examples, err := build.DecodeDataset(data)
	require.NoError(t, err)
	require.Len(t, examples, 1)
	assert.Equal(t, "click-counter", examples[0].ID)
	assert.Equal(t, "internal/examples/click_counter.go", examples[0].BackendFile)

	testutils.AssertFilePermissions(t, filepath.Join("internal", "dataset", build.DatasetFile), 0o644)

	accessor, err := os.ReadFile(filepath.Join("internal", "dataset", build.AccessorFile))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(accessor), "// Code generated by showcase generate. DO NOT EDIT."))

	out.Reset()
	require.NoError(t, runGenerate(generateCmd, nil))
	assert.Contains(t, out.String(), "(unchanged)")
}

func TestGenerateCommandFailsOnDuplicateIDs(t *testing.T) {
	root := chdirProject(t)
	testutils.WriteExample(t, root, "a_b.go", "First", "d", "")
	testutils.WriteExample(t, root, "a-b.go", "Second", "d", "")

	generateWatch = false
	generateCmd.SetOut(&bytes.Buffer{})
	t.Cleanup(func() { generateCmd.SetOut(nil) })

	err := runGenerate(generateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a-b")
	assert.NoFileExists(t, filepath.Join("internal", "dataset", build.DatasetFile))
}

func TestWriteList(t *testing.T) {
	examples := dataset.MustExamples()

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeList(&buf, examples, "table"))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, len(examples)+1)
		assert.Regexp(t, `^ID\s+TITLE\s+SOURCE$`, lines[0])
		assert.Contains(t, buf.String(), "internal/examples/form_demo.go")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeList(&buf, examples, "json"))

		var listed []listedExample
		require.NoError(t, json.Unmarshal(buf.Bytes(), &listed))
		require.Len(t, listed, len(examples))
		assert.Equal(t, "active-search", listed[0].ID)
		assert.NotContains(t, buf.String(), "<input", "list output omits demo markup")
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeList(&buf, examples, "YAML"))

		var listed []listedExample
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &listed))
		assert.Len(t, listed, len(examples))
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeList(&buf, nil, "table"))
		assert.Equal(t, "No examples found.\n", buf.String())
	})

	t.Run("bad format", func(t *testing.T) {
		err := writeList(&bytes.Buffer{}, examples, "jsn")
		require.Error(t, err)
	})
}

func TestListCommandFilter(t *testing.T) {
	var buf bytes.Buffer
	listCmd.SetOut(&buf)
	t.Cleanup(func() { listCmd.SetOut(nil) })

	listFlags.Format = "json"
	listFlags.Filter = "THEME"
	t.Cleanup(func() { listFlags.Format, listFlags.Filter = "table", "" })

	require.NoError(t, runList(listCmd, nil))

	var listed []listedExample
	require.NoError(t, json.Unmarshal(buf.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "theme-switcher", listed[0].ID)
}

func TestWriteVersion(t *testing.T) {
	info := version.Info{Version: "v1.0.0", GoVersion: "go1.24.4", Platform: "linux/amd64", GitCommit: "unknown"}

	var buf bytes.Buffer
	require.NoError(t, writeVersion(&buf, info, "text", true))
	assert.Equal(t, "v1.0.0\n", buf.String())

	buf.Reset()
	require.NoError(t, writeVersion(&buf, info, "text", false))
	assert.Contains(t, buf.String(), "Platform: linux/amd64")

	buf.Reset()
	require.NoError(t, writeVersion(&buf, info, "json", false))
	var decoded version.Info
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "v1.0.0", decoded.Version)

	assert.Error(t, writeVersion(&buf, info, "xml", false))
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, ValidateFormat("json", outputFormats))
	assert.NoError(t, ValidateFormat("Table", outputFormats))

	err := ValidateFormat("jso", outputFormats)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "json"`)

	assert.Error(t, ValidateFormat("xml", outputFormats))
}

func TestFlagValidation(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	AddStandardFlags(cmd, "server", "output")

	require.NoError(t, cmd.ParseFlags([]string{"--port", "3000", "-o", "yaml"}))
	port, err := cmd.Flags().GetInt("port")
	require.NoError(t, err)
	assert.Equal(t, 3000, port)

	assert.Error(t, (&cobra.Command{}).ParseFlags([]string{"--nope"}))

	bad := &cobra.Command{Use: "bad"}
	AddStandardFlags(bad, "server")
	assert.Error(t, bad.ParseFlags([]string{"--port", "70000"}))

	out := &cobra.Command{Use: "out"}
	AddStandardFlags(out, "output")
	assert.Error(t, out.ParseFlags([]string{"-o", "csv"}))
}

func TestValidatePort(t *testing.T) {
	assert.NoError(t, ValidatePort("8080"))
	assert.Error(t, ValidatePort("0"))
	assert.Error(t, ValidatePort("http"))
}
