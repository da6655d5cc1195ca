package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/ddx/cmd/ddx/commands/flags"
	"github.com/thoreinstein/ddx/internal/cli"
	"github.com/thoreinstein/ddx/internal/errors"
	"github.com/thoreinstein/ddx/internal/export"
	"github.com/thoreinstein/ddx/internal/logging"
	"github.com/thoreinstein/ddx/internal/project"
)

var (
	exportFormat string
	exportOut    string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json",
		"output format: json, yaml, toml")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "",
		"write to file instead of stdout (atomic)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the documentation registry",
	Long: `Build the project's documentation registry and write it out as
JSON, YAML, or TOML. Without --out the export goes to stdout; with it,
the file is written atomically.

Examples:
  # JSON registry on stdout
  ddx export

  # YAML registry written to disk
  ddx export --format yaml --out target/registry.yml`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())

	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return errors.NewUserError(err, "valid formats: json, yaml, toml")
	}

	proj, err := project.Load(flags.GetProjectDir())
	if err != nil {
		return err
	}

	pipe := cli.NewPipeline(logger, flags.GetWarnError())
	registry, err := pipe.Registry(proj)
	if err != nil {
		return err
	}

	if exportOut == "" {
		return export.Write(cmd.OutOrStdout(), registry, format)
	}

	if err := export.WriteFile(exportOut, registry, format); err != nil {
		return err
	}
	logger.Info("exported registry",
		"format", format.String(),
		"path", exportOut,
		"blocks", len(registry))
	return nil
}
