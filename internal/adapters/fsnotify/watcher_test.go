package fsnotify

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// waitFor blocks until ch fires or the timeout elapses.
func waitFor(t *testing.T, ch <-chan struct{}, timeout time.Duration) bool {
	t.Helper()
	select {
	case <-ch:
		return true
	case <-time.After(timeout):
		return false
	}
}

func TestWatch_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "samples.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2 3\n"), 0644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan struct{}, 8)
	require.NoError(t, w.Watch(path, func() { changed <- struct{}{} }))

	// Give the event loop a moment to start.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("1 2 3 4\n"), 0644))

	require.True(t, waitFor(t, changed, 3*time.Second), "expected change notification")
}

func TestWatch_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "samples.txt")
	sibling := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n"), 0644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan struct{}, 8)
	require.NoError(t, w.Watch(path, func() { changed <- struct{}{} }))

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(sibling, []byte("noise\n"), 0644))

	require.False(t, waitFor(t, changed, 300*time.Millisecond), "sibling write should not notify")
}

func TestWatch_FiresOnAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "samples.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2\n"), 0644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan struct{}, 8)
	require.NoError(t, w.Watch(path, func() { changed <- struct{}{} }))

	time.Sleep(100 * time.Millisecond)

	// Editor-style save: write a temp file, then rename over the target.
	tmp := filepath.Join(dir, "samples.txt.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("1 2 3\n"), 0644))
	require.NoError(t, os.Rename(tmp, path))

	require.True(t, waitFor(t, changed, 3*time.Second), "expected change notification after rename")
}

func TestStop_Idempotent(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
