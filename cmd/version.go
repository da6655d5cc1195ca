// Package cmd holds the build metadata the release pipeline stamps in
// via ldflags.
package cmd

import (
	"fmt"
	"runtime"
)

// Build-time variables set via ldflags. Local builds keep the
// development defaults.
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)

// VersionLine renders the one-line banner used by --version.
func VersionLine() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s)", Version, Commit, Date, runtime.Version())
}
