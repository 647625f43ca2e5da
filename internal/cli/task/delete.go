package task

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lifeos/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		if err := c.App.TaskService.DeleteTask(ctx, args[0]); err != nil {
			return f.Fail(err, "Use 'lifeos task list' to see task IDs")
		}
		return f.Success(map[string]any{"id": args[0], "deleted": true}, []string{args[0]}, func(w io.Writer) {
			fmt.Fprintf(w, "Task %s deleted\n", args[0])
		})
	})
}
