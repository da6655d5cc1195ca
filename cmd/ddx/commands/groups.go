package commands

import (
	"github.com/thoreinstein/ddx/cmd/ddx/commands/docs"
	"github.com/thoreinstein/ddx/cmd/ddx/commands/models"
)

// The docs and models command groups live in their own packages; this
// is where they join the root command.
func init() {
	rootCmd.AddCommand(docs.Cmd)
	rootCmd.AddCommand(models.Cmd)
}
