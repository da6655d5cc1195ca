// Package paths resolves the directories ddx uses outside the project tree.
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base Directory
// Specification compliance. On Linux and macOS, paths follow XDG conventions
// (~/.config, ~/.local/share, ~/.cache).
//
// # Application Directories
//
// ddx claims a single subdirectory under each XDG base:
//
//	paths.ConfigDir() // <ConfigHome>/ddx/ (config file search path)
//	paths.DataDir()   // <DataHome>/ddx/   (state kept between runs)
//	paths.CacheDir()  // <CacheHome>/ddx/  (disposable artifacts)
//
// # Directory Creation
//
// Use [EnsureDir] to create directories idempotently. Passing a zero
// permission uses [DefaultDirPerm] (0700), keeping user state private:
//
//	if err := paths.EnsureDir(paths.DataDir(), 0); err != nil {
//	    return err
//	}
package paths
