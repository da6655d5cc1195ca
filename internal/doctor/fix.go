package doctor

import (
	"fmt"

	"github.com/thoreinstein/ddx/internal/errors"
	"github.com/thoreinstein/ddx/internal/paths"
)

// Fixer is an optional interface that checks can implement to support auto-remediation.
// Checks that implement Fixer can fix issues they detect when the --fix flag is used.
type Fixer interface {
	// CanFix returns true if this check has fixable issues.
	// Must be called after Run() to check if there are issues that can be fixed.
	CanFix() bool

	// Fix attempts to remediate the issues found by Run().
	// Returns a slice of FixResult indicating what was fixed or why it couldn't be fixed.
	// Must be called after Run().
	Fix() []FixResult
}

// FixResult describes the outcome of an attempted fix operation.
type FixResult struct {
	// Path is the file or directory that was targeted for fixing.
	Path string

	// Fixed indicates whether the fix was successfully applied.
	Fixed bool

	// Description explains what was fixed or why it couldn't be fixed.
	Description string

	// Error contains the error if the fix failed.
	Error error
}

// searchDirPerm is the permission for created search path directories.
// Project trees are shared, unlike ddx's private XDG directories.
const searchDirPerm = 0o755

// DirFixer creates directories that a check found missing.
// It is embedded in SearchPathCheck to provide fix capability.
type DirFixer struct {
	dirs []string
}

// CanFix returns true if there are any missing directories to create.
func (f *DirFixer) CanFix() bool {
	return len(f.dirs) > 0
}

// Fix creates each missing directory.
// Returns a FixResult for each directory.
func (f *DirFixer) Fix() []FixResult {
	results := make([]FixResult, 0, len(f.dirs))
	for _, dir := range f.dirs {
		result := FixResult{Path: dir}

		if err := paths.EnsureDir(dir, searchDirPerm); err != nil {
			result.Description = fmt.Sprintf("failed to create directory: %v", err)
			result.Error = errors.Wrapf(err, "creating %s", dir)
		} else {
			result.Fixed = true
			result.Description = "created directory"
		}

		results = append(results, result)
	}
	return results
}

// setDirs stores the missing directories found by the check for later fixing.
// This is called internally by SearchPathCheck after running.
func (f *DirFixer) setDirs(dirs []string) {
	f.dirs = dirs
}

// CountFixable returns the number of missing directories.
func (f *DirFixer) CountFixable() int {
	return len(f.dirs)
}
