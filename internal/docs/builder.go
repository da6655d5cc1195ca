package docs

import (
	"log/slog"
	"os"

	"github.com/thoreinstein/ddx/internal/errors"
	"github.com/thoreinstein/ddx/internal/template"
)

// Builder scans source files for documentation blocks.
type Builder struct {
	logger *slog.Logger
}

// NewBuilder returns a Builder that keeps its per-file progress
// logging quiet. Use NewBuilderWithLogger to see it.
func NewBuilder() *Builder {
	return &Builder{
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})),
	}
}

// NewBuilderWithLogger creates a Builder that logs scan progress
// through logger.
func NewBuilderWithLogger(logger *slog.Logger) *Builder {
	return &Builder{logger: logger}
}

// Parse scans one source file and returns its documentation blocks in
// document order. Files without docs blocks are fine and yield nil;
// template syntax errors are not.
func (b *Builder) Parse(file SourceFile) ([]*Block, error) {
	root, err := template.Parse(file.Contents)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", file.OriginalPath)
	}

	var blocks []*Block
	for _, m := range template.Macros(root) {
		if !m.IsDocs() {
			continue
		}
		name := m.BareName()
		blocks = append(blocks, &Block{
			UniqueID:      file.PackageName + "." + name,
			Name:          name,
			ResourceType:  ResourceTypeDocumentation,
			RootPath:      file.RootPath,
			Path:          file.Path,
			OriginalPath:  file.OriginalPath,
			PackageName:   file.PackageName,
			FileContents:  file.Contents,
			BlockContents: blockContents(m),
		})
	}
	return blocks, nil
}

// Build parses every file in order and inserts the resulting blocks
// into a fresh registry, stopping at the first syntax error or
// duplicate id.
func (b *Builder) Build(files []SourceFile) (Registry, error) {
	registry := make(Registry)
	for _, file := range files {
		blocks, err := b.Parse(file)
		if err != nil {
			return nil, err
		}
		b.logger.Debug("scanned documentation file",
			"path", file.OriginalPath,
			"blocks", len(blocks))

		for _, block := range blocks {
			if err := registry.Insert(block); err != nil {
				return nil, err
			}
		}
	}
	return registry, nil
}

// blockContents reads a block's literal payload. A docs block is
// assumed to hold a single literal text run, so only the first text
// node of the first output run is read; any other body shape yields
// the empty string rather than an error.
func blockContents(m *template.MacroNode) string {
	if len(m.Body) == 0 {
		return ""
	}
	out, ok := m.Body[0].(*template.OutputNode)
	if !ok || len(out.Nodes) == 0 {
		return ""
	}
	text, ok := out.Nodes[0].(*template.TextNode)
	if !ok {
		return ""
	}
	return text.Text
}
