package project

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lifeos/internal/cli"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/services/freelancing"
)

// ProjectCmd returns the freelancing project parent command
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage freelancing projects and their task boards",
	}

	cmd.AddCommand(listCmd())
	cmd.AddCommand(addCmd())
	cmd.AddCommand(taskAddCmd())
	cmd.AddCommand(taskMoveCmd())

	return cmd
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects with their progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				projects, err := c.App.FreelancingService.ListProjects(ctx)
				if err != nil {
					return f.Fail(err, "")
				}
				ids := make([]string, len(projects))
				for i, p := range projects {
					ids[i] = p.ID
				}
				return f.Success(projects, ids, func(w io.Writer) {
					if len(projects) == 0 {
						fmt.Fprintln(w, "No projects found")
						return
					}
					for _, p := range projects {
						fmt.Fprintf(w, "  [%s] %-9s %3.0f%%  %s", cli.ShortID(p.ID), p.Status, p.Progress(), p.Name)
						if p.Client != "" {
							fmt.Fprintf(w, " for %s", p.Client)
						}
						fmt.Fprintf(w, " (%d tasks)\n", len(p.Tasks))
					}
				})
			})
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a freelancing project",
		Long: `Create a freelancing project.

Examples:
  lifeos project add --name="Landing page" --client="ACME" --rate=60
  lifeos project add --name="Audit" --status=active --budget=2000 --deadline=2025-09-01
`,
		RunE: runAdd,
	}
	cmd.Flags().String("name", "", "Project name (required)")
	cmd.Flags().String("client", "", "Client name")
	cmd.Flags().String("description", "", "Project description")
	cmd.Flags().String("status", "", "Status: lead, active, on-hold, completed (default lead)")
	cmd.Flags().Float64("rate", 0, "Hourly rate")
	cmd.Flags().Float64("budget", 0, "Fixed budget")
	cmd.Flags().String("deadline", "", "Deadline (YYYY-MM-DD)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		p := cli.NewFlagParser(cmd)
		name, err := p.ParseString("name")
		if err != nil {
			return f.Usage(err, "")
		}
		status, err := cli.ParseEnum("status", p.ParseStringOptional("status"), models.FreelanceStatuses)
		if err != nil {
			return f.Usage(err, "")
		}
		deadline, err := p.ParseDate("deadline")
		if err != nil {
			return f.Usage(err, "")
		}
		rate, _ := cmd.Flags().GetFloat64("rate")
		budget, _ := cmd.Flags().GetFloat64("budget")

		project, err := c.App.FreelancingService.CreateProject(ctx, freelancing.CreateProjectRequest{
			Name:        name,
			Client:      p.ParseStringOptional("client"),
			Description: p.ParseStringOptional("description"),
			Status:      status,
			HourlyRate:  rate,
			Budget:      budget,
			Deadline:    deadline,
		})
		if err != nil {
			return f.Fail(err, "")
		}
		return f.Success(project, []string{project.ID}, func(w io.Writer) {
			fmt.Fprintf(w, "Project '%s' created (ID: %s)\n", project.Name, project.ID)
		})
	})
}

func taskAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task-add <project-id>",
		Short: "Add a task to a project's board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				p := cli.NewFlagParser(cmd)
				title, err := p.ParseString("title")
				if err != nil {
					return f.Usage(err, "")
				}
				status, err := cli.ParseEnum("status", p.ParseStringOptional("status"), models.ProjectTaskStatuses)
				if err != nil {
					return f.Usage(err, "")
				}
				priority, err := cli.ParseEnum("priority", p.ParseStringOptional("priority"), models.Priorities)
				if err != nil {
					return f.Usage(err, "")
				}

				task, err := c.App.FreelancingService.AddTask(ctx, freelancing.AddTaskRequest{
					ProjectID:   args[0],
					Title:       title,
					Description: p.ParseStringOptional("description"),
					Status:      status,
					Priority:    priority,
				})
				if err != nil {
					return f.Fail(err, "Use 'lifeos project list' to see project IDs")
				}
				return f.Success(task, []string{task.ID}, func(w io.Writer) {
					fmt.Fprintf(w, "Task '%s' added to project %s (ID: %s)\n", task.Title, args[0], task.ID)
				})
			})
		},
	}
	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().String("description", "", "Task description")
	cmd.Flags().String("status", "", "Status: todo, in-progress, review, done (default todo)")
	cmd.Flags().String("priority", "", "Priority: low, medium, high (default medium)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func taskMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task-move <project-id> <task-id> <status>",
		Short: "Move a project task to another column",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				status, err := cli.ParseEnum("status", args[2], models.ProjectTaskStatuses)
				if err != nil || status == "" {
					return f.Usage(fmt.Errorf("invalid status %q", args[2]), "Valid statuses are: todo, in-progress, review, done")
				}
				changed, err := c.App.FreelancingService.MoveTask(ctx, args[0], args[1], status)
				if err != nil {
					return f.Fail(err, "")
				}
				result := map[string]any{"projectId": args[0], "id": args[1], "status": status, "changed": changed}
				return f.Success(result, []string{args[1]}, func(w io.Writer) {
					fmt.Fprintf(w, "Task %s moved to %s\n", args[1], status)
				})
			})
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}
