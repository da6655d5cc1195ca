// Package models loads model files and their optional YAML
// frontmatter configs.
//
// A model is a .sql file under one of the project's model paths. It
// may open with a frontmatter block carrying per-model configuration;
// the block is split off the body and decoded, with undecodable
// blocks handled per the configured policy.
package models

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/ddx/internal/discovery"
	"github.com/thoreinstein/ddx/internal/errors"
	"github.com/thoreinstein/ddx/pkg/fileutil"
	"github.com/thoreinstein/ddx/pkg/frontmatter"
)

// Pattern matches model file names: SQL files whose name does not
// start with '.', '#', or '~'.
const Pattern = "[!.#~]*.sql"

// Model is one loaded model file.
type Model struct {
	// Name is the file's base name without its extension.
	Name string
	// PackageName is the owning project's name.
	PackageName string
	// Path is the file's path relative to the searched directory.
	Path string
	// OriginalPath is the searched directory joined with Path.
	OriginalPath string
	// Config is the decoded frontmatter mapping; nil when the file has
	// none or an undecodable block was ignored.
	Config map[string]any
	// Body is the model text with any frontmatter stripped.
	Body string
}

// Loader discovers and loads model files.
type Loader struct {
	logger *slog.Logger
	policy frontmatter.Policy
	esc    frontmatter.Escalator
}

// NewLoader creates a new Loader with a default discard logger. esc is
// consulted when frontmatter fails to decode under
// frontmatter.PolicyWarnOrError; it may be nil under
// frontmatter.PolicyIgnore.
func NewLoader(policy frontmatter.Policy, esc frontmatter.Escalator) *Loader {
	return &Loader{
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})),
		policy: policy,
		esc:    esc,
	}
}

// NewLoaderWithLogger creates a new Loader with the given logger.
func NewLoaderWithLogger(logger *slog.Logger, policy frontmatter.Policy, esc frontmatter.Escalator) *Loader {
	return &Loader{logger: logger, policy: policy, esc: esc}
}

// Load discovers model files under rootDir's relDirs and returns them
// in discovery order, each with its frontmatter config split off.
func (l *Loader) Load(packageName, rootDir string, relDirs []string) ([]Model, error) {
	matches, err := discovery.FindMatching(rootDir, relDirs, Pattern)
	if err != nil {
		return nil, err
	}

	models := make([]Model, 0, len(matches))
	for _, m := range matches {
		contents, err := fileutil.ReadFileString(m.AbsolutePath)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", m.AbsolutePath)
		}
		originalPath := filepath.Join(m.SearchedPath, m.RelativePath)

		config, body := map[string]any(nil), contents
		if frontmatter.MightHaveFrontmatter(contents) {
			config, body, err = frontmatter.Extract(contents, l.policy, l.esc)
			if err != nil {
				return nil, errors.Wrapf(err, "loading model %s", originalPath)
			}
		}

		base := filepath.Base(m.RelativePath)
		models = append(models, Model{
			Name:         strings.TrimSuffix(base, filepath.Ext(base)),
			PackageName:  packageName,
			Path:         m.RelativePath,
			OriginalPath: originalPath,
			Config:       config,
			Body:         body,
		})
	}

	l.logger.Debug("loaded models",
		"package", packageName,
		"models", len(models))
	return models, nil
}
