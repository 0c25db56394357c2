// Package watch re-runs a callback when the files feeding a build change.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/aellingwood/storeshots/internal/logger"
)

// DefaultDebounce is how long the watcher waits for a burst of events to
// settle before firing.
const DefaultDebounce = 300 * time.Millisecond

// Watcher monitors files and directories and invokes a callback when they
// change. Rapid successive changes are coalesced into a single call, and
// calls never overlap.
//
// Single files are watched through their parent directory so editors that
// save by renaming a temporary file over the existing file are still seen.
type Watcher struct {
	targets  []string
	onChange func()
	debounce time.Duration

	files map[string]bool // watched single files
	dirs  []string        // watched directory trees

	ready chan struct{}
	done  chan struct{}
	once  sync.Once
}

// New creates a Watcher for the given files and directories. The onChange
// callback runs after changes have been quiet for debounce.
func New(targets []string, debounce time.Duration, onChange func()) *Watcher {
	return &Watcher{
		targets:  targets,
		onChange: onChange,
		debounce: debounce,
		files:    make(map[string]bool),
		ready:    make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Ready is closed once every target is being watched.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is cancelled or Stop is called.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	for _, t := range w.targets {
		if t == "" {
			continue
		}
		abs, err := filepath.Abs(t)
		if err != nil {
			logger.L().Warn("cannot watch path", "path", t, "error", err)
			continue
		}
		info, err := os.Stat(abs)
		switch {
		case err == nil && info.IsDir():
			w.dirs = append(w.dirs, abs)
			if err := addRecursive(fsw, abs); err != nil {
				logger.L().Warn("cannot watch directory", "path", abs, "error", err)
			}
		default:
			// Files that do not exist yet are still watched through their
			// directory, so creating them triggers a run.
			w.files[abs] = true
			if err := fsw.Add(filepath.Dir(abs)); err != nil {
				logger.L().Debug("cannot watch file", "path", abs, "error", err)
			}
		}
	}
	close(w.ready)

	fire := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !w.relevant(event.Name) {
				continue
			}

			// New subdirectories inside a watched tree need their own watch.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = addRecursive(fsw, event.Name)
				}
			}

			logger.L().Debug("change detected", "path", event.Name, "op", event.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			w.onChange()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.L().Warn("watcher error", "error", err)

		case <-ctx.Done():
			return nil

		case <-w.done:
			return nil
		}
	}
}

// Stop signals the watcher to stop. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.once.Do(func() {
		close(w.done)
	})
}

// relevant reports whether path is a watched file or lies inside a
// watched directory tree.
func (w *Watcher) relevant(path string) bool {
	path = filepath.Clean(path)
	if w.files[path] {
		return true
	}
	for _, d := range w.dirs {
		if path == d || strings.HasPrefix(path, d+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// addRecursive adds a directory and all its subdirectories to the watcher.
func addRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := fsw.Add(path); err != nil {
				return err
			}
		}
		return nil
	})
}
