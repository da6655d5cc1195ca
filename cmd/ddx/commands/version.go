package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/ddx/cmd"
)

func init() {
	rootCmd.Version = cmd.VersionLine()
	rootCmd.SetVersionTemplate("ddx version {{.Version}}\n")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build details",
	Long:  "Show the ddx version together with the commit, build date, and Go toolchain it was built with.",
	Run:   runVersion,
}

func runVersion(c *cobra.Command, _ []string) {
	fmt.Fprintf(c.OutOrStdout(), "ddx version %s\n  commit: %s\n  built:  %s\n  go:     %s\n",
		cmd.Version, cmd.Commit, cmd.Date, runtime.Version())
}
