// Package flags provides shared flag accessors for CLI commands.
// This package exists to avoid import cycles between the root command
// and noun subpackages (docs, models).
package flags

// projectDir holds the effective project directory after the root
// command merges --project-dir with the configuration.
var projectDir = "."

// warnError holds the effective strictness after flag/config merging.
var warnError bool

// noProgress reports whether progress bars are suppressed.
var noProgress bool

// quiet reports whether non-error output is suppressed.
var quiet bool

// invocationID identifies this CLI run in logs and summaries.
var invocationID string

// GetProjectDir returns the directory the project file is loaded from.
func GetProjectDir() string { return projectDir }

// SetProjectDir records the effective project directory. Called by the
// root command after parsing.
func SetProjectDir(dir string) {
	if dir == "" {
		dir = "."
	}
	projectDir = dir
}

// GetWarnError reports whether tolerated warnings escalate to errors.
func GetWarnError() bool { return warnError }

// SetWarnError records the effective strictness.
func SetWarnError(v bool) { warnError = v }

// GetNoProgress reports whether progress display is disabled.
func GetNoProgress() bool { return noProgress }

// SetNoProgress records whether progress display is disabled.
func SetNoProgress(v bool) { noProgress = v }

// GetQuiet reports whether non-error output is suppressed.
func GetQuiet() bool { return quiet }

// SetQuiet records quiet mode.
func SetQuiet(v bool) { quiet = v }

// GetInvocationID returns the id assigned to this CLI run.
func GetInvocationID() string { return invocationID }

// SetInvocationID records the id assigned to this CLI run.
func SetInvocationID(id string) { invocationID = id }
