package tui

type options struct {
	watcher *watcher
}

// Option configures the TUI model
type Option func(*options)

// withWatcher reloads data whenever w reports a change
func withWatcher(w *watcher) Option {
	return func(o *options) {
		o.watcher = w
	}
}
