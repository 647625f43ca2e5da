package task

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lifeos/internal/cli"
	"github.com/thenoetrevino/lifeos/internal/models"
	taskservice "github.com/thenoetrevino/lifeos/internal/services/task"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		Long: `Create a new standalone task.

Examples:
  # Simple task
  lifeos task add --title="Pay rent"

  # Quiet mode for bash capture
  TASK_ID=$(lifeos task add --title="Pay rent" --quiet)

  # Full example
  lifeos task add \
    --title="Renew passport" \
    --description="Book an appointment first" \
    --priority=high \
    --due=2025-06-30
`,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().String("description", "", "Task description")
	cmd.Flags().String("status", "", "Initial status: todo, in-progress, done (default todo)")
	cmd.Flags().String("priority", "", "Priority: low, medium, high (default medium)")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		p := cli.NewFlagParser(cmd)

		title, err := p.ParseString("title")
		if err != nil {
			return f.Usage(err, "lifeos task add --title=\"...\"")
		}
		status, err := cli.ParseEnum("status", p.ParseStringOptional("status"), models.TaskStatuses)
		if err != nil {
			return f.Usage(err, "")
		}
		priority, err := cli.ParseEnum("priority", p.ParseStringOptional("priority"), models.Priorities)
		if err != nil {
			return f.Usage(err, "Valid priorities are: low, medium, high")
		}
		due, err := p.ParseDate("due")
		if err != nil {
			return f.Usage(err, "")
		}

		task, err := c.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
			Title:       title,
			Description: p.ParseStringOptional("description"),
			Status:      status,
			Priority:    priority,
			DueDate:     due,
		})
		if err != nil {
			return f.Fail(err, "")
		}

		return f.Success(task, []string{task.ID}, func(w io.Writer) {
			fmt.Fprintf(w, "Task '%s' created (ID: %s)\n", task.Title, task.ID)
			fmt.Fprintf(w, "  Status: %s\n", task.Status)
			fmt.Fprintf(w, "  Priority: %s\n", task.Priority)
			if task.DueDate != nil {
				fmt.Fprintf(w, "  Due: %s\n", cli.FormatDate(task.DueDate))
			}
		})
	})
}
