package docs

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/ddx/cmd/ddx/commands/flags"
	"github.com/thoreinstein/ddx/internal/cli"
	"github.com/thoreinstein/ddx/internal/docs"
	"github.com/thoreinstein/ddx/internal/errors"
	"github.com/thoreinstein/ddx/internal/logging"
	"github.com/thoreinstein/ddx/internal/project"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List documentation blocks",
	Long: `List every documentation block in the project, with its unique id
and the file it was defined in.

Examples:
  # List all blocks
  ddx docs list

  # Output as JSON
  ddx docs list --json`,
	RunE: runList,
}

// blockInfo is the JSON output shape for docs list.
type blockInfo struct {
	UniqueID string `json:"unique_id"`
	Name     string `json:"name"`
	Package  string `json:"package_name"`
	File     string `json:"original_file_path"`
}

func runList(cmd *cobra.Command, _ []string) error {
	registry, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	if listJSON {
		infos := make([]blockInfo, 0, len(registry))
		for _, id := range registry.IDs() {
			b := registry[id]
			infos = append(infos, blockInfo{
				UniqueID: b.UniqueID,
				Name:     b.Name,
				Package:  b.PackageName,
				File:     b.OriginalPath,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(infos), "encoding output")
	}

	ids := registry.IDs()
	if len(ids) == 0 {
		fmt.Fprintln(w, "No documentation blocks found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "UNIQUE ID\tFILE\n")
	for _, id := range ids {
		fmt.Fprintf(tw, "%s\t%s\n", id, registry[id].OriginalPath)
	}
	return tw.Flush()
}

// loadRegistry loads the project named by --project-dir and builds its
// block registry.
func loadRegistry(cmd *cobra.Command) (docs.Registry, error) {
	proj, err := project.Load(flags.GetProjectDir())
	if err != nil {
		return nil, err
	}

	pipe := cli.NewPipeline(logging.FromContext(cmd.Context()), flags.GetWarnError())
	return pipe.Registry(proj)
}
