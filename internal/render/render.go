// Package render converts documentation block contents from markdown
// to HTML.
package render

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/thoreinstein/ddx/internal/docs"
	"github.com/thoreinstein/ddx/internal/errors"
	"github.com/thoreinstein/ddx/pkg/fileutil"
)

// engine is stateless and safe for concurrent Convert calls. GFM
// extensions, auto heading ids, and raw HTML passthrough: block
// contents are trusted project sources, not user input.
var engine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Render converts markdown to HTML.
func Render(md string) (string, error) {
	var buf bytes.Buffer
	if err := engine.Convert([]byte(md), &buf); err != nil {
		return "", errors.Wrap(err, "rendering markdown")
	}
	return buf.String(), nil
}

// WriteRegistry renders every block's contents to
// outDir/<unique id>.html, fanning the work out over a GOMAXPROCS-sized
// worker pool. Files are written atomically.
func WriteRegistry(registry docs.Registry, outDir string) error {
	if len(registry) == 0 {
		return nil
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", outDir)
	}

	ids := registry.IDs()
	workers := runtime.GOMAXPROCS(0)
	if len(ids) < workers {
		workers = len(ids)
	}

	work := make(chan *docs.Block, len(ids))
	results := make(chan error, len(ids))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for block := range work {
				results <- renderBlock(block, outDir)
			}
		}()
	}

	for _, id := range ids {
		work <- registry[id]
	}
	close(work)

	go func() {
		wg.Wait()
		close(results)
	}()

	var firstErr error
	failed := 0
	for err := range results {
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if failed > 1 {
		return errors.Wrapf(firstErr, "%d blocks failed to render", failed)
	}
	return firstErr
}

func renderBlock(block *docs.Block, outDir string) error {
	rendered, err := Render(block.BlockContents)
	if err != nil {
		return errors.Wrapf(err, "rendering %s", block.UniqueID)
	}
	path := filepath.Join(outDir, block.UniqueID+".html")
	if err := fileutil.AtomicWriteFile(path, []byte(rendered), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", block.UniqueID)
	}
	return nil
}
