package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/lifeos/internal/app"
	"github.com/thenoetrevino/lifeos/internal/database"
	"github.com/thenoetrevino/lifeos/internal/testutil"
)

type dataPathKey struct{}

// WithDataPath stores the database path resolved from config for NewCLI
func WithDataPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, dataPathKey{}, path)
}

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// db is nil when the app was injected rather than opened here
	db *sql.DB
}

// NewCLI opens the database at the path stored in ctx (or the default
// path) and builds the application container
func NewCLI(ctx context.Context) (*CLI, error) {
	path, _ := ctx.Value(dataPathKey{}).(string)
	if path == "" {
		p, err := database.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	db, err := database.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{App: app.New(db), db: db}, nil
}

// GetCLIFromContext returns a CLI around the app injected into ctx by tests,
// or opens a fresh one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if err := c.App.Close(); err != nil {
		slog.Error("failed to close app", "error", err)
	}
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
