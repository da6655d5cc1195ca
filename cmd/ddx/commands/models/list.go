package models

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/ddx/cmd/ddx/commands/flags"
	"github.com/thoreinstein/ddx/internal/cli"
	"github.com/thoreinstein/ddx/internal/logging"
	"github.com/thoreinstein/ddx/internal/models"
	"github.com/thoreinstein/ddx/internal/project"
)

var (
	listJSON          bool
	listIgnoreInvalid bool
)

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	listCmd.Flags().BoolVar(&listIgnoreInvalid, "ignore-invalid", false,
		"silently skip frontmatter that fails to decode")
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List model files",
	Long: `List every model file discovered under the project's model paths,
with a summary of its frontmatter config when it has one.

Examples:
  # Table of models in the current project
  ddx models list

  # Machine-readable output
  ddx models list --json`,
	RunE: runList,
}

type modelInfo struct {
	Name    string         `json:"name"`
	Package string         `json:"package_name"`
	File    string         `json:"original_file_path"`
	Config  map[string]any `json:"config,omitempty"`
}

func runList(cmd *cobra.Command, _ []string) error {
	proj, err := project.Load(flags.GetProjectDir())
	if err != nil {
		return err
	}

	pipe := cli.NewPipeline(logging.FromContext(cmd.Context()), flags.GetWarnError())
	if listIgnoreInvalid {
		pipe.IgnoreInvalid()
	}
	loaded, err := pipe.LoadModels(proj)
	if err != nil {
		return err
	}

	if listJSON {
		return outputJSON(cmd.OutOrStdout(), loaded)
	}
	return outputTable(cmd.OutOrStdout(), loaded)
}

func outputJSON(w io.Writer, loaded []models.Model) error {
	infos := make([]modelInfo, 0, len(loaded))
	for _, m := range loaded {
		infos = append(infos, modelInfo{
			Name:    m.Name,
			Package: m.PackageName,
			File:    m.OriginalPath,
			Config:  m.Config,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(infos)
}

func outputTable(w io.Writer, loaded []models.Model) error {
	if len(loaded) == 0 {
		fmt.Fprintln(w, "No model files found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tFILE\tCONFIG")
	for _, m := range loaded {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Name, m.OriginalPath, configSummary(m.Config))
	}
	return tw.Flush()
}

// configSummary renders a one-cell view of a model's config: "-" when
// absent, otherwise the number of top-level keys.
func configSummary(cfg map[string]any) string {
	if len(cfg) == 0 {
		return "-"
	}
	return fmt.Sprintf("%d keys", len(cfg))
}
