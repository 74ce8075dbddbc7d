package ports

// Watcher monitors a single sample-data file for changes. The adapter
// (fsnotify) must debounce rapid events (editors often trigger multiple
// writes per save) and ignore unrelated files in the same directory.
// Only one Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring filePath. onChange is called after each
	// settled modification. The callback may be invoked from any goroutine.
	// Returns an error if the file's directory doesn't exist or permissions
	// are insufficient.
	Watch(filePath string, onChange func()) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
