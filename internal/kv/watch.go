package kv

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
)

// watchDebounce collapses the burst of events an atomic rename produces.
const watchDebounce = 100 * time.Millisecond

// Watch reports writes to the store file made by anything other than this
// File. One value is sent per settled burst of changes; sends never block and
// are dropped while a previous value is still unread. The channel is closed
// once ctx is done.
//
// The parent directory is watched rather than the file, because atomic
// writes replace the file's inode.
func (f *File) Watch(ctx context.Context, logger *slog.Logger) (<-chan struct{}, error) {
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(f.path)); err != nil {
		watcher.Close()
		return nil, err
	}

	changes := make(chan struct{}, 1)
	name := filepath.Base(f.path)

	go func() {
		defer watcher.Close()
		defer close(changes)

		var debounce <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != name {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				debounce = time.After(watchDebounce)

			case <-debounce:
				debounce = nil
				if !f.changedExternally() {
					continue
				}
				logger.Debug("kv: store file changed", "path", f.path)
				select {
				case changes <- struct{}{}:
				default:
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("kv: watch error", "path", f.path, "error", err)
			}
		}
	}()

	return changes, nil
}

// changedExternally reports whether the file content differs from what this
// store last read or wrote. The new digest is remembered.
func (f *File) changedExternally() bool {
	data, err := os.ReadFile(f.path)
	if err != nil && !os.IsNotExist(err) {
		return false
	}
	sum := xxhash.Sum64(data)
	if sum == f.digest.Load() {
		return false
	}
	f.digest.Store(sum)
	return true
}
