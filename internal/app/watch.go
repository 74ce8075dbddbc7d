package app

import (
	"fmt"
	"sync"

	"github.com/rkeating/reli/internal/ports"
)

// WatchSession recomputes a report whenever the samples file changes and
// hands each fresh report to the onReport callback. Reports for unreadable
// or malformed files are skipped with a diagnostic.
type WatchSession struct {
	svc      *Service
	watcher  ports.Watcher
	path     string
	cfg      Settings
	onReport func(*Report)

	mu      sync.Mutex
	started bool
}

// NewWatchSession wires a session over an existing service and watcher.
func NewWatchSession(svc *Service, w ports.Watcher, path string, cfg Settings, onReport func(*Report)) *WatchSession {
	return &WatchSession{svc: svc, watcher: w, path: path, cfg: cfg, onReport: onReport}
}

// Start runs an initial analysis, then begins watching. Returns an error if
// the initial load fails or the watch cannot be established.
func (ws *WatchSession) Start() error {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.started {
		return fmt.Errorf("watch session already started")
	}

	samples, err := LoadSamples(ws.path)
	if err != nil {
		return err
	}
	ws.onReport(ws.svc.Analyze(samples, ws.cfg))

	if err := ws.watcher.Watch(ws.path, ws.refresh); err != nil {
		return err
	}
	ws.started = true
	return nil
}

// Stop tears down the underlying watcher. Safe to call more than once.
func (ws *WatchSession) Stop() error {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if !ws.started {
		return nil
	}
	ws.started = false
	return ws.watcher.Stop()
}

// refresh reloads the samples file and re-analyzes. A file that is
// mid-write or malformed is skipped; the next change will retry.
func (ws *WatchSession) refresh() {
	samples, err := LoadSamples(ws.path)
	if err != nil {
		ws.svc.diag.Debug("skipping unreadable samples file", "path", ws.path, "err", err)
		return
	}
	ws.onReport(ws.svc.Analyze(samples, ws.cfg))
}
