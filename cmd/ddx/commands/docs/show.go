package docs

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/ddx/internal/cli/prompt"
)

func init() {
	Cmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print one documentation block",
	Long: `Print the contents of a documentation block.

The block may be referenced by its package-qualified unique id
("analytics.orders") or its bare name ("orders"). A bare name defined
in more than one package prompts for a choice.

Examples:
  # Show a block by bare name
  ddx docs show orders

  # Show a block by unique id
  ddx docs show analytics.orders`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	block, err := prompt.NewSelector().ResolveRef(registry, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), block.BlockContents)
	return nil
}
