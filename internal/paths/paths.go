package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// appDir is the directory name ddx claims under each XDG base directory.
const appDir = "ddx"

// ErrPermissionDenied indicates the operation was rejected due to file
// system permissions.
var ErrPermissionDenied = errors.New("permission denied")

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
// On Linux: ~/.local/share
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func DataHome() string {
	return xdg.DataHome
}

// CacheHome returns the XDG cache home directory.
// On Linux: ~/.cache
// On macOS: ~/Library/Caches
// On Windows: %LOCALAPPDATA%\cache
func CacheHome() string {
	return xdg.CacheHome
}

// ConfigDir returns the directory searched for ddx's own config file.
// Returns: <ConfigHome>/ddx/
func ConfigDir() string {
	return filepath.Join(ConfigHome(), appDir)
}

// DataDir returns the directory for state ddx keeps between runs.
// Returns: <DataHome>/ddx/
func DataDir() string {
	return filepath.Join(DataHome(), appDir)
}

// CacheDir returns the directory for disposable artifacts such as
// rendered documentation kept outside a project tree.
// Returns: <CacheHome>/ddx/
func CacheDir() string {
	return filepath.Join(CacheHome(), appDir)
}
