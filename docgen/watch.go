package docgen

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a [Watcher] waits for changes to settle before
// regenerating the page.
const DefaultDebounce = 300 * time.Millisecond

// Watcher regenerates the page file whenever a file under its root directory
// changes.
//
// Create instances with [NewWatcher].
type Watcher struct {
	gen      *Generator
	root     string
	output   string
	debounce time.Duration
}

// WatchOption configures a [Watcher].
type WatchOption func(*Watcher)

// WithDebounce sets how long the watcher waits after the last change before
// regenerating.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// NewWatcher creates a [Watcher] that watches the OS directory root
// recursively and writes the output of gen to the file at output.
func NewWatcher(gen *Generator, root, output string, opts ...WatchOption) *Watcher {
	w := &Watcher{
		gen:      gen,
		root:     root,
		output:   output,
		debounce: DefaultDebounce,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Run generates the page once, then again after every change, until ctx is
// done. Failed generations are logged and leave the previous page in place.
func (w *Watcher) Run(ctx context.Context) error {
	output, err := filepath.Abs(w.output)
	if err != nil {
		return fmt.Errorf("%w: output: %w", ErrInvalidOption, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}

	defer watcher.Close() //nolint:errcheck // Shutting down.

	err = addDirs(watcher, w.root)
	if err != nil {
		return err
	}

	w.rebuild()

	slog.Info("watching for changes", slog.String("root", w.root))

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}

			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if ignoreEvent(ev.Name, output) {
				continue
			}

			if ev.Has(fsnotify.Create) {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					addErr := addDirs(watcher, ev.Name)
					if addErr != nil {
						slog.Warn("watch directory", slog.String("path", ev.Name), slog.Any("error", addErr))
					}
				}
			}

			slog.Debug("file change detected",
				slog.String("path", ev.Name),
				slog.String("op", ev.Op.String()),
			)

			if timer != nil {
				timer.Stop()
			}

			timer = time.NewTimer(w.debounce)
			pending = timer.C

		case <-pending:
			pending = nil

			w.rebuild()

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			slog.Warn("watcher error", slog.Any("error", watchErr))
		}
	}
}

func (w *Watcher) rebuild() {
	err := w.gen.GenerateFile(w.output)
	if err != nil {
		slog.Warn("generate page", slog.Any("error", err))

		return
	}

	slog.Info("wrote page", slog.String("path", w.output))
}

// addDirs watches root and every directory below it, skipping hidden ones.
func addDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("%w: watch %s: %w", ErrInvalidOption, root, err)
			}

			return nil
		}

		if !d.IsDir() {
			return nil
		}

		if path != root && strings.HasPrefix(d.Name(), ".") {
			return fs.SkipDir
		}

		err = watcher.Add(path)
		if err != nil {
			return fmt.Errorf("%w: watch %s: %w", ErrInvalidOption, path, err)
		}

		return nil
	})
}

// ignoreEvent reports whether a change to path should not trigger a rebuild:
// the page itself, and hidden or editor swap files.
func ignoreEvent(path, output string) bool {
	if abs, err := filepath.Abs(path); err == nil && abs == output {
		return true
	}

	base := filepath.Base(path)

	return strings.HasPrefix(base, ".") ||
		strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp")
}
