package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/showcase/internal/catalog"
	"github.com/conneroisu/showcase/internal/dataset"
	"github.com/conneroisu/showcase/internal/types"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List the embedded examples",
	Long: `List the examples compiled into this binary.

Examples:
  showcase list                  # Table of id, title and source file
  showcase list -o json          # Full records as JSON
  showcase list --filter theme   # Only examples matching "theme"`,
	RunE: runList,
}

var listFlags *StandardFlags

func init() {
	rootCmd.AddCommand(listCmd)

	listFlags = AddStandardFlags(listCmd, "output")
}

// listedExample is the public shape of an example in list output.
type listedExample struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	BackendFile string `json:"backend_file" yaml:"backend_file"`
}

func runList(cmd *cobra.Command, args []string) error {
	loaded, err := dataset.Examples()
	if err != nil {
		return fmt.Errorf("loading examples: %w", err)
	}

	return writeList(cmd.OutOrStdout(), catalog.New(loaded).Filter(listFlags.Filter), listFlags.Format)
}

func writeList(w io.Writer, examples []types.Example, format string) error {
	if err := ValidateFormat(format, outputFormats); err != nil {
		return err
	}

	listed := make([]listedExample, len(examples))
	for i, ex := range examples {
		listed[i] = listedExample{
			ID:          ex.ID,
			Title:       ex.Title,
			Description: ex.Description,
			BackendFile: ex.BackendFile,
		}
	}

	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(listed)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(listed); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeTable(w, listed)
	}
}

func writeTable(w io.Writer, listed []listedExample) error {
	if len(listed) == 0 {
		_, err := fmt.Fprintln(w, "No examples found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSOURCE")
	for _, ex := range listed {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", ex.ID, ex.Title, ex.BackendFile)
	}

	return tw.Flush()
}
