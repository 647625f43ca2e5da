package learning

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lifeos/internal/cli"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/services/programming"
)

// LearningCmd returns the learning parent command
func LearningCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "learning",
		Short: "Track courses, books and other learning resources",
	}

	cmd.AddCommand(listCmd())
	cmd.AddCommand(addCmd())
	cmd.AddCommand(progressCmd())
	cmd.AddCommand(moveCmd())

	return cmd
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List learning items",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				items, err := c.App.ProgrammingService.ListLearningItems(ctx)
				if err != nil {
					return f.Fail(err, "")
				}
				ids := make([]string, len(items))
				for i, item := range items {
					ids[i] = item.ID
				}
				return f.Success(items, ids, func(w io.Writer) {
					if len(items) == 0 {
						fmt.Fprintln(w, "No learning items found")
						return
					}
					for _, item := range items {
						fmt.Fprintf(w, "  [%s] %-11s %3d%%  %s (%s)\n", cli.ShortID(item.ID), item.Status, item.Progress, item.Title, item.Type)
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
		Short: "Add a learning item",
		Long: `Add a learning item to the planned column.

Examples:
  lifeos learning add --title="The Go Programming Language" --type=book
  lifeos learning add --title="Tour of Go" --type=tutorial --url=https://go.dev/tour
`,
		RunE: runAdd,
	}
	cmd.Flags().String("title", "", "Title (required)")
	cmd.Flags().String("type", "course", "Type: course, book, tutorial, video, article, documentation")
	cmd.Flags().String("status", "", "Initial status: planned, in-progress, completed (default planned)")
	cmd.Flags().String("url", "", "Link to the resource")
	cmd.Flags().String("notes", "", "Free-form notes")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		p := cli.NewFlagParser(cmd)
		title, err := p.ParseString("title")
		if err != nil {
			return f.Usage(err, "")
		}
		kind, err := cli.ParseEnum("type", p.ParseStringOptional("type"), models.LearningTypes)
		if err != nil {
			return f.Usage(err, "")
		}
		status, err := cli.ParseEnum("status", p.ParseStringOptional("status"), models.LearningStatuses)
		if err != nil {
			return f.Usage(err, "")
		}

		item, err := c.App.ProgrammingService.CreateLearningItem(ctx, programming.CreateLearningItemRequest{
			Title:  title,
			Type:   kind,
			Status: status,
			URL:    p.ParseStringOptional("url"),
			Notes:  p.ParseStringOptional("notes"),
		})
		if err != nil {
			return f.Fail(err, "")
		}
		return f.Success(item, []string{item.ID}, func(w io.Writer) {
			fmt.Fprintf(w, "Learning item '%s' added (ID: %s)\n", item.Title, item.ID)
		})
	})
}

func progressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress <item-id> <percent>",
		Short: "Set progress (0-100); 100 completes the item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				var percent int
				if _, err := fmt.Sscanf(args[1], "%d", &percent); err != nil {
					return f.Usage(fmt.Errorf("progress must be a whole number, got %q", args[1]), "")
				}
				item, err := c.App.ProgrammingService.UpdateProgress(ctx, args[0], percent)
				if err != nil {
					return f.Fail(err, "")
				}
				return f.Success(item, []string{item.ID}, func(w io.Writer) {
					fmt.Fprintf(w, "'%s' is %d%% done (%s)\n", item.Title, item.Progress, item.Status)
				})
			})
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func moveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <item-id> <status>",
		Short: "Move a learning item to planned, in-progress or completed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				status, err := cli.ParseEnum("status", args[1], models.LearningStatuses)
				if err != nil || status == "" {
					return f.Usage(fmt.Errorf("invalid status %q", args[1]), "Valid statuses are: planned, in-progress, completed")
				}
				changed, err := c.App.ProgrammingService.MoveLearningItem(ctx, args[0], status)
				if err != nil {
					return f.Fail(err, "")
				}
				result := map[string]any{"id": args[0], "status": status, "changed": changed}
				return f.Success(result, []string{args[0]}, func(w io.Writer) {
					fmt.Fprintf(w, "Learning item %s moved to %s\n", args[0], status)
				})
			})
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}
