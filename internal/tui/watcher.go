package tui

import (
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces the burst of writes SQLite makes per commit
const reloadDebounce = 200 * time.Millisecond

// dataChangedMsg is sent when the database changed on disk, typically
// because a CLI command ran while the TUI is open
type dataChangedMsg struct{}

// watcher reports changes to the database file and its WAL/SHM siblings
type watcher struct {
	fw      *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}
}

// newWatcher watches the directory holding dbPath. SQLite replaces and
// recreates its side files, so the directory is watched instead of the file.
func newWatcher(dbPath string, logger *slog.Logger) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(dbPath)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &watcher{
		fw:      fw,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.run(filepath.Base(dbPath), logger)
	logger.Debug("watcher: started", slog.String("path", dbPath))
	return w, nil
}

func (w *watcher) run(base string, logger *slog.Logger) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case <-fire:
			fire = nil
			select {
			case w.changes <- struct{}{}:
			default:
				// a reload is already pending
			}

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !strings.HasPrefix(filepath.Base(ev.Name), base) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			fire = timer.C

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			logger.Warn("watcher: error", slog.String("error", err.Error()))
		}
	}
}

// wait blocks until the next change. The model calls it again after every
// dataChangedMsg to keep listening.
func (w *watcher) wait() tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-w.changes:
			return dataChangedMsg{}
		case <-w.done:
			return nil
		}
	}
}

// Close stops watching
func (w *watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
		close(w.done)
	}
	return w.fw.Close()
}
