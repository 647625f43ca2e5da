package toolbox

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lifeos/internal/cli"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/services/programming"
)

// CodeProjectCmd returns the codeproject parent command. Freelance projects
// live under "project"; these are personal programming projects.
func CodeProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codeproject",
		Short: "Track personal coding projects",
	}

	cmd.AddCommand(codeProjectListCmd())
	cmd.AddCommand(codeProjectAddCmd())
	cmd.AddCommand(deleteCmd("coding project", "Use 'lifeos codeproject list' to see project IDs",
		func(ctx context.Context, c *cli.CLI, id string) error {
			return c.App.ProgrammingService.DeleteProject(ctx, id)
		}))

	return cmd
}

func codeProjectListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List coding projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				projects, err := c.App.ProgrammingService.ListProjects(ctx)
				if err != nil {
					return f.Fail(err, "")
				}
				ids := make([]string, len(projects))
				for i, p := range projects {
					ids[i] = p.ID
				}
				return f.Success(projects, ids, func(w io.Writer) {
					if len(projects) == 0 {
						fmt.Fprintln(w, "No coding projects found")
						return
					}
					for _, p := range projects {
						fmt.Fprintf(w, "  [%s] %-11s %s", cli.ShortID(p.ID), p.Status, p.Name)
						if len(p.TechStack) > 0 {
							fmt.Fprintf(w, "  [%s]", strings.Join(p.TechStack, ", "))
						}
						fmt.Fprintln(w)
					}
				})
			})
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func codeProjectAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a coding project",
		Long: `Add a coding project. New projects start as ideas.

Examples:
  lifeos codeproject add --name=lifeos --stack=go,sqlite --repo=https://github.com/me/lifeos
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				p := cli.NewFlagParser(cmd)
				name, err := p.ParseString("name")
				if err != nil {
					return f.Usage(err, "")
				}
				status, err := cli.ParseEnum("status", p.ParseStringOptional("status"), models.CodingProjectStatuses)
				if err != nil {
					return f.Usage(err, "")
				}

				project, err := c.App.ProgrammingService.CreateProject(ctx, programming.CreateProjectRequest{
					Name:        name,
					Description: p.ParseStringOptional("description"),
					Status:      status,
					TechStack:   p.ParseStringSlice("stack"),
					RepoURL:     p.ParseStringOptional("repo"),
				})
				if err != nil {
					return f.Fail(err, "")
				}
				return f.Success(project, []string{project.ID}, func(w io.Writer) {
					fmt.Fprintf(w, "Coding project '%s' added (ID: %s)\n", project.Name, project.ID)
				})
			})
		},
	}
	cmd.Flags().String("name", "", "Project name (required)")
	cmd.Flags().String("description", "", "Description")
	cmd.Flags().String("status", "", "Status: idea, in-progress, completed, archived (default idea)")
	cmd.Flags().StringSlice("stack", nil, "Technology (repeatable or comma separated)")
	cmd.Flags().String("repo", "", "Repository URL")
	cli.AddOutputFlags(cmd)
	return cmd
}
