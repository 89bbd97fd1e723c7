package deck

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned by Next after Close.
var ErrWatcherClosed = errors.New("slide watcher closed")

// Watcher reports changes to the slide files of one directory. It stays
// registered between calls to Next, so changes made while the caller is
// busy reloading are queued rather than missed.
type Watcher struct {
	dir     string
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching dir.
func NewWatcher(dir string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	return &Watcher{dir: dir, watcher: watcher}, nil
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string { return w.dir }

// Next blocks until a slide file or the deck title file is written,
// created, removed or renamed, and returns its path. It returns ctx.Err()
// when the context is cancelled first.
func (w *Watcher) Next(ctx context.Context) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return "", ErrWatcherClosed
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			name := filepath.Base(event.Name)
			if !IsSlideFile(name) && name != titleFile {
				continue
			}
			return event.Name, nil

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return "", ErrWatcherClosed
			}
			return "", fmt.Errorf("file watcher error: %w", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
