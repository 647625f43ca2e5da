package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/lifeos/internal/app"
	"github.com/thenoetrevino/lifeos/internal/config"
)

// Run starts the TUI and blocks until the user quits. When dbPath is not
// empty, changes made to it by other processes are picked up live.
func Run(a *app.App, cfg *config.Config, dbPath string) error {
	var opts []Option
	if dbPath != "" {
		w, err := newWatcher(dbPath, a.Logger())
		if err != nil {
			// Live reload is optional; the TUI still reloads after its own writes
			a.Logger().Warn("file watcher unavailable", slog.String("error", err.Error()))
		} else {
			defer w.Close()
			opts = append(opts, withWatcher(w))
		}
	}

	p := tea.NewProgram(New(a, cfg, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
