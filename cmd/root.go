// Package cmd wires the lifeos cobra command tree.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lifeos/internal/app"
	"github.com/thenoetrevino/lifeos/internal/cli"
	"github.com/thenoetrevino/lifeos/internal/cli/backup"
	"github.com/thenoetrevino/lifeos/internal/cli/learning"
	"github.com/thenoetrevino/lifeos/internal/cli/note"
	"github.com/thenoetrevino/lifeos/internal/cli/project"
	"github.com/thenoetrevino/lifeos/internal/cli/subject"
	"github.com/thenoetrevino/lifeos/internal/cli/task"
	"github.com/thenoetrevino/lifeos/internal/cli/toolbox"
	"github.com/thenoetrevino/lifeos/internal/config"
	"github.com/thenoetrevino/lifeos/internal/database"
	"github.com/thenoetrevino/lifeos/internal/logging"
	"github.com/thenoetrevino/lifeos/internal/tui"
)

// rootState is resolved once per process by PersistentPreRunE
type rootState struct {
	cfg    *config.Config
	dbPath string
	logs   io.Closer
}

// NewRootCmd builds the lifeos command. Without a subcommand it starts the TUI.
func NewRootCmd() *cobra.Command {
	st := &rootState{}

	cmd := &cobra.Command{
		Use:   "lifeos",
		Short: "lifeos - tasks, learning, freelancing, university and notes in one terminal app",
		Long: `lifeos keeps your personal life in one local SQLite file.

Run without arguments to open the interactive board, or use the
subcommands to script it:

  lifeos task add --title="Pay rent" --quiet
  lifeos subject grades <subject-id> --json
  lifeos export > backup.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if st.logs != nil {
				_ = st.logs.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.runTUI(cmd.Context())
		},
	}

	cmd.PersistentFlags().String("db", "", "Path to the lifeos database (overrides data_path and LIFEOS_DB)")

	cmd.AddCommand(task.TaskCmd())
	cmd.AddCommand(learning.LearningCmd())
	cmd.AddCommand(toolbox.SkillCmd())
	cmd.AddCommand(toolbox.ToolCmd())
	cmd.AddCommand(toolbox.CodeProjectCmd())
	cmd.AddCommand(project.ProjectCmd())
	cmd.AddCommand(subject.SubjectCmd())
	cmd.AddCommand(subject.ExamCmd())
	cmd.AddCommand(subject.EntryCmd())
	cmd.AddCommand(note.NoteCmd())
	cmd.AddCommand(backup.ExportCmd())
	cmd.AddCommand(backup.ImportCmd())

	return cmd
}

// init loads .env, config and logging, then records the database path on
// the command context for the subcommands
func (st *rootState) init(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	st.cfg = cfg

	logs, err := logging.Init(cfg.LogLevel)
	if err != nil {
		// Logging is best effort; commands still run without a log file
		slog.Warn("failed to initialize logging", "error", err)
	}
	st.logs = logs

	st.dbPath = cfg.DataPath
	if flag, _ := cmd.Flags().GetString("db"); flag != "" {
		st.dbPath = flag
	}
	if st.dbPath == "" {
		if st.dbPath, err = database.DefaultPath(); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(cli.WithDataPath(ctx, st.dbPath))
	return nil
}

func (st *rootState) runTUI(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	db, err := database.Open(ctx, st.dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	a := app.New(db, app.WithLogger(slog.Default()))
	defer a.Close()

	slog.Info("starting tui", "db", st.dbPath)
	return tui.Run(a, st.cfg, st.dbPath)
}

// Execute runs the command tree with ctx
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
