// Package docs provides commands for inspecting documentation blocks.
package docs

import "github.com/spf13/cobra"

// Cmd is the parent command for all docs subcommands.
var Cmd = &cobra.Command{
	Use:   "docs",
	Short: "Inspect the project's documentation blocks",
	Long: `Commands for listing, showing, searching, and rendering the
documentation blocks collected from the project's sources.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}
