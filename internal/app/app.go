package app

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/thenoetrevino/lifeos/internal/database"
	"github.com/thenoetrevino/lifeos/internal/services/freelancing"
	"github.com/thenoetrevino/lifeos/internal/services/note"
	"github.com/thenoetrevino/lifeos/internal/services/programming"
	"github.com/thenoetrevino/lifeos/internal/services/task"
	"github.com/thenoetrevino/lifeos/internal/services/university"
)

// App holds all application services and provides dependency injection.
// The TUI and every CLI command share one App per process.
type App struct {
	// Repository layer (direct key/value access, used by export/import)
	repo database.DataStore

	logger *slog.Logger
	now    func() time.Time

	TaskService        task.Service
	ProgrammingService programming.Service
	FreelancingService freelancing.Service
	UniversityService  university.Service
	NoteService        note.Service
}

// New creates a new App with all services initialized over db
func New(db *sql.DB, opts ...Option) *App {
	cfg := appConfig{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	repo := database.NewStorageRepo(db)
	return &App{
		repo:               repo,
		logger:             cfg.logger,
		now:                cfg.now,
		TaskService:        task.NewService(repo, cfg.now),
		ProgrammingService: programming.NewService(repo, cfg.now),
		FreelancingService: freelancing.NewService(repo, cfg.now),
		UniversityService:  university.NewService(repo, cfg.now),
		NoteService:        note.NewService(repo, cfg.now),
	}
}

// Repo returns the underlying key/value store
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Now returns the current time from the app's clock
func (a *App) Now() time.Time {
	return a.now()
}

// Logger returns the app's logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close performs cleanup of application resources.
// The database handle is owned by the caller and closed there.
func (a *App) Close() error {
	return nil
}
