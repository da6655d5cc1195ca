package docs

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thoreinstein/ddx/internal/discovery"
	"github.com/thoreinstein/ddx/internal/errors"
	"github.com/thoreinstein/ddx/pkg/fileutil"
)

// DefaultExtensions are the glob patterns documentation discovery
// matches file names against: markdown and SQL files, excluding names
// that start with '.', '#', or '~'.
var DefaultExtensions = []string{"[!.#~]*.md", "[!.#~]*.sql"}

// Loader discovers and reads documentation source files.
type Loader struct {
	logger     *slog.Logger
	extensions []string
}

// NewLoader creates a Loader over DefaultExtensions that keeps its
// progress logging quiet. Use NewLoaderWithLogger to see it.
func NewLoader() *Loader {
	return &Loader{
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})),
		extensions: DefaultExtensions,
	}
}

// NewLoaderWithLogger creates a Loader that logs discovery progress
// through logger.
func NewLoaderWithLogger(logger *slog.Logger) *Loader {
	return &Loader{logger: logger, extensions: DefaultExtensions}
}

// Load walks rootDir's relDirs once per extension pattern and returns
// a SourceFile for every match, in discovery order. Contents are read
// raw with no line-ending normalization.
func (l *Loader) Load(packageName, rootDir string, relDirs []string) ([]SourceFile, error) {
	var files []SourceFile
	for _, pattern := range l.extensions {
		matches, err := discovery.FindMatching(rootDir, relDirs, pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			contents, err := fileutil.ReadFileString(m.AbsolutePath)
			if err != nil {
				return nil, errors.Wrapf(err, "reading %s", m.AbsolutePath)
			}
			files = append(files, SourceFile{
				RootPath:     rootDir,
				Path:         m.RelativePath,
				OriginalPath: filepath.Join(m.SearchedPath, m.RelativePath),
				PackageName:  packageName,
				Contents:     contents,
			})
		}
	}

	l.logger.Debug("loaded documentation sources",
		"package", packageName,
		"files", len(files))
	return files, nil
}
