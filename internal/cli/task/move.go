package task

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lifeos/internal/cli"
	"github.com/thenoetrevino/lifeos/internal/models"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <task-id> <status>",
		Short: "Move a task to another status",
		Long: `Move a task to another board column.

Examples:
  lifeos task move 3f2a... in-progress
  lifeos task move 3f2a... done --json
`,
		Args: cobra.ExactArgs(2),
		RunE: runMove,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		status, err := cli.ParseEnum("status", args[1], models.TaskStatuses)
		if err != nil || status == "" {
			return f.Usage(fmt.Errorf("invalid status %q", args[1]), "Valid statuses are: todo, in-progress, done")
		}

		changed, err := c.App.TaskService.MoveToStatus(ctx, args[0], status)
		if err != nil {
			return f.Fail(err, "Use 'lifeos task list' to see task IDs")
		}

		result := map[string]any{"id": args[0], "status": status, "changed": changed}
		return f.Success(result, []string{args[0]}, func(w io.Writer) {
			if !changed {
				fmt.Fprintf(w, "Task %s is already %s\n", args[0], status)
				return
			}
			fmt.Fprintf(w, "Task %s moved to %s\n", args[0], status)
		})
	})
}
