package docs

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/ddx/cmd/ddx/commands/flags"
	"github.com/thoreinstein/ddx/internal/cli"
	"github.com/thoreinstein/ddx/internal/logging"
	"github.com/thoreinstein/ddx/internal/project"
	"github.com/thoreinstein/ddx/internal/render"
)

var renderOut string

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "target/docs",
		"output directory, relative to the project unless absolute")
	Cmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render documentation blocks to HTML",
	Long: `Render every documentation block's markdown contents to an HTML
file named after its unique id.

Examples:
  # Render into the project's target/docs directory
  ddx docs render

  # Render somewhere else
  ddx docs render --out /tmp/site`,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, _ []string) error {
	proj, err := project.Load(flags.GetProjectDir())
	if err != nil {
		return err
	}

	pipe := cli.NewPipeline(logging.FromContext(cmd.Context()), flags.GetWarnError())
	registry, err := pipe.Registry(proj)
	if err != nil {
		return err
	}

	outDir := renderOut
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(proj.Dir, outDir)
	}

	if err := render.WriteRegistry(registry, outDir); err != nil {
		return err
	}

	if !flags.GetQuiet() {
		fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d blocks to %s\n", len(registry), outDir)
	}
	return nil
}
