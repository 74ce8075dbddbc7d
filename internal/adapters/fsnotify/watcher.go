// Package fsnotify implements the ports.Watcher interface using
// github.com/fsnotify/fsnotify. It watches the parent directory of a single
// samples file (editors replace files via rename, which drops inotify watches
// on the file itself) and debounces rapid events — editors often trigger
// multiple writes per save.
package fsnotify

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval coalesces bursts of events from a single save.
const debounceInterval = 50 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:   fw,
		done: make(chan struct{}),
	}, nil
}

// Watch starts monitoring a single file. onChange fires after each write,
// create, or rename of that file, debounced.
func (w *Watcher) Watch(filePath string, onChange func()) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return err
	}

	// Watch the containing directory so atomic saves (write temp + rename)
	// keep delivering events.
	if err := w.fw.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	go func() {
		var last time.Time
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if event.Name != absPath {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				now := time.Now()
				if now.Sub(last) < debounceInterval {
					continue
				}
				last = now
				onChange()

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop shuts down the watcher. Safe to call more than once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}
