// Package watch re-runs a callback when project source files change.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/thoreinstein/ddx/internal/errors"
)

// settleTime is how long the event stream must stay quiet before the
// callback fires. Editors and format-on-save hooks produce bursts of
// writes; one rebuild per burst is enough.
const settleTime = 500 * time.Millisecond

// Watcher invokes a callback after bursts of changes to .md and .sql
// files under the watched directories.
type Watcher struct {
	logger   *slog.Logger
	fsw      *fsnotify.Watcher
	rootDir  string
	onChange func()
}

// New creates a Watcher over each rootDir/relDir tree. Directories
// that do not exist are skipped; directories created later under a
// watched tree are picked up automatically.
func New(logger *slog.Logger, rootDir string, relDirs []string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating file watcher")
	}

	w := &Watcher{
		logger:   logger,
		fsw:      fsw,
		rootDir:  rootDir,
		onChange: onChange,
	}

	watched := 0
	for _, relDir := range relDirs {
		dir := filepath.Join(rootDir, relDir)
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := w.addRecursive(dir); err != nil {
			fsw.Close()
			return nil, err
		}
		watched++
	}
	logger.Debug("watching for changes", "root", rootDir, "dirs", watched)
	return w, nil
}

// Run processes events until ctx is canceled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	var (
		timer  *time.Timer
		fire   <-chan time.Time
		events int
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addRecursive(event.Name); err != nil {
						w.logger.Warn("failed to watch new directory",
							"dir", event.Name,
							"error", err)
					}
					continue
				}
			}
			if !relevant(event) {
				continue
			}

			w.logger.Debug("source file changed", "file", event.Name, "op", event.Op.String())
			events++
			if timer == nil {
				timer = time.NewTimer(settleTime)
				fire = timer.C
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(settleTime)

		case <-fire:
			w.logger.Debug("changes settled", "events", events)
			timer, fire, events = nil, nil, 0
			w.onChange()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

// Close stops the watcher; a blocked Run returns nil.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// relevant reports whether an event should count toward a rebuild:
// writes, creations, removals, and renames of source files.
func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return sourceFile(event.Name)
}

// sourceFile mirrors the discovery exclusions: .md and .sql files
// whose name does not start with '.', '#', or '~'.
func sourceFile(name string) bool {
	switch filepath.Ext(name) {
	case ".md", ".sql":
	default:
		return false
	}
	base := filepath.Base(name)
	return !strings.HasPrefix(base, ".") &&
		!strings.HasPrefix(base, "#") &&
		!strings.HasPrefix(base, "~")
}

// addRecursive watches dir and every directory below it. Unreadable
// subdirectories are logged and skipped so one bad directory does not
// take down the watch.
func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.logger.Warn("skipping unreadable path", "path", path, "error", err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			return errors.Wrapf(err, "watching %s", path)
		}
		return nil
	})
}
