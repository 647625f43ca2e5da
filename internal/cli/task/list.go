package task

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lifeos/internal/adapters"
	"github.com/thenoetrevino/lifeos/internal/cli"
	"github.com/thenoetrevino/lifeos/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List standalone tasks grouped by status, in board order.",
		RunE:  runList,
	}

	cmd.Flags().String("status", "", "Only show tasks with this status: todo, in-progress, done")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		status, err := cli.ParseEnum("status", cli.NewFlagParser(cmd).ParseStringOptional("status"), models.TaskStatuses)
		if err != nil {
			return f.Usage(err, "Valid statuses are: todo, in-progress, done")
		}

		tasks, err := c.App.TaskService.ListTasks(ctx)
		if err != nil {
			return f.Fail(err, "")
		}

		// Board order so the CLI agrees with the TUI
		var ordered []models.Task
		columns := adapters.StandaloneTaskColumns(tasks, c.App.Now())
		for _, col := range columns {
			if status != "" && col.ID != string(status) {
				continue
			}
			ordered = append(ordered, col.Items...)
		}
		if ordered == nil {
			ordered = []models.Task{}
		}

		ids := make([]string, len(ordered))
		for i, t := range ordered {
			ids[i] = t.ID
		}

		return f.Success(ordered, ids, func(w io.Writer) {
			if len(ordered) == 0 {
				fmt.Fprintln(w, "No tasks found")
				return
			}
			fmt.Fprintf(w, "Found %d tasks:\n\n", len(ordered))
			for _, t := range ordered {
				fmt.Fprintf(w, "  [%s] %-11s %-6s %s", cli.ShortID(t.ID), t.Status, t.Priority, t.Title)
				if t.DueDate != nil {
					fmt.Fprintf(w, " (due %s)", cli.FormatDate(t.DueDate))
				}
				fmt.Fprintln(w)
			}
		})
	})
}
