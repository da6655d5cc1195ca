// Package discovery locates project source files on disk. Search
// directories are walked recursively and files are selected by
// matching a glob pattern against their base name, so a pattern like
// "[!.#~]*.md" picks up markdown files while excluding hidden files
// and editor droppings.
package discovery

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/thoreinstein/ddx/internal/errors"
)

// FileMatch records where a discovered file was found.
type FileMatch struct {
	// SearchedPath is the project-relative directory the walk started
	// from, exactly as the caller supplied it.
	SearchedPath string
	// AbsolutePath is the absolute path to the file.
	AbsolutePath string
	// RelativePath is the file's path relative to the searched
	// directory.
	RelativePath string
}

// FindMatching walks each rootPath/relPath directory and returns the
// files whose base name matches pattern. Search directories that do
// not exist are skipped rather than reported. Matches are returned in
// lexical walk order, one searched directory at a time.
func FindMatching(rootPath string, relPaths []string, pattern string) ([]FileMatch, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "compiling file pattern %q", pattern)
	}

	var matches []FileMatch
	for _, relPath := range relPaths {
		searchDir, err := filepath.Abs(filepath.Join(rootPath, relPath))
		if err != nil {
			return nil, errors.Wrapf(err, "resolving search directory %q", relPath)
		}

		info, err := os.Stat(searchDir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "searching %s", searchDir)
		}
		if !info.IsDir() {
			continue
		}

		walkErr := filepath.WalkDir(searchDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !g.Match(d.Name()) {
				return nil
			}
			rel, err := filepath.Rel(searchDir, path)
			if err != nil {
				return err
			}
			matches = append(matches, FileMatch{
				SearchedPath: relPath,
				AbsolutePath: path,
				RelativePath: rel,
			})
			return nil
		})
		if walkErr != nil {
			return nil, errors.Wrapf(walkErr, "walking %s", searchDir)
		}
	}
	return matches, nil
}
