// Package models provides commands for inspecting model files.
package models

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for model operations.
var Cmd = &cobra.Command{
	Use:   "models",
	Short: "Inspect model files",
	Long:  `List model files and the frontmatter configs they carry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
