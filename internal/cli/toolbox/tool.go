package toolbox

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lifeos/internal/cli"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/services/programming"
)

// ToolCmd returns the tool parent command
func ToolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tool",
		Short: "Keep a list of editors, frameworks and services you use",
	}

	cmd.AddCommand(toolListCmd())
	cmd.AddCommand(toolAddCmd())
	cmd.AddCommand(deleteCmd("tool", "Use 'lifeos tool list' to see tool IDs",
		func(ctx context.Context, c *cli.CLI, id string) error {
			return c.App.ProgrammingService.DeleteTool(ctx, id)
		}))

	return cmd
}

func toolListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				tools, err := c.App.ProgrammingService.ListTools(ctx)
				if err != nil {
					return f.Fail(err, "")
				}
				ids := make([]string, len(tools))
				for i, t := range tools {
					ids[i] = t.ID
				}
				return f.Success(tools, ids, func(w io.Writer) {
					if len(tools) == 0 {
						fmt.Fprintln(w, "No tools found")
						return
					}
					for _, t := range tools {
						proficiency := string(t.Proficiency)
						if proficiency == "" {
							proficiency = "-"
						}
						fmt.Fprintf(w, "  [%s] %-12s %s", cli.ShortID(t.ID), proficiency, t.Name)
						if t.Category != "" {
							fmt.Fprintf(w, " (%s)", t.Category)
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

func toolAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a tool",
		Long: `Add a tool.

Examples:
  lifeos tool add --name=Neovim --category=editor --proficiency=advanced
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				p := cli.NewFlagParser(cmd)
				name, err := p.ParseString("name")
				if err != nil {
					return f.Usage(err, "")
				}
				proficiency, err := cli.ParseEnum("proficiency", p.ParseStringOptional("proficiency"), models.Proficiencies)
				if err != nil {
					return f.Usage(err, "")
				}

				tool, err := c.App.ProgrammingService.CreateTool(ctx, programming.CreateToolRequest{
					Name:        name,
					Category:    p.ParseStringOptional("category"),
					Proficiency: proficiency,
				})
				if err != nil {
					return f.Fail(err, "")
				}
				return f.Success(tool, []string{tool.ID}, func(w io.Writer) {
					fmt.Fprintf(w, "Tool '%s' added (ID: %s)\n", tool.Name, tool.ID)
				})
			})
		},
	}
	cmd.Flags().String("name", "", "Tool name (required)")
	cmd.Flags().String("category", "", "Category, e.g. editor or framework")
	cmd.Flags().String("proficiency", "", "Proficiency: beginner, intermediate, advanced, expert")
	cli.AddOutputFlags(cmd)
	return cmd
}
