package toolbox

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lifeos/internal/cli"
	"github.com/thenoetrevino/lifeos/internal/services/programming"
)

// SkillCmd returns the skill parent command
func SkillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skill",
		Short: "Track programming skills and their level",
	}

	cmd.AddCommand(skillListCmd())
	cmd.AddCommand(skillAddCmd())
	cmd.AddCommand(deleteCmd("skill", "Use 'lifeos skill list' to see skill IDs",
		func(ctx context.Context, c *cli.CLI, id string) error {
			return c.App.ProgrammingService.DeleteSkill(ctx, id)
		}))

	return cmd
}

func skillListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List skills",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				skills, err := c.App.ProgrammingService.ListSkills(ctx)
				if err != nil {
					return f.Fail(err, "")
				}
				ids := make([]string, len(skills))
				for i, s := range skills {
					ids[i] = s.ID
				}
				return f.Success(skills, ids, func(w io.Writer) {
					if len(skills) == 0 {
						fmt.Fprintln(w, "No skills found")
						return
					}
					for _, s := range skills {
						level := strings.Repeat("●", s.Level) + strings.Repeat("○", max(5-s.Level, 0))
						fmt.Fprintf(w, "  [%s] %s  %s", cli.ShortID(s.ID), level, s.Name)
						if s.Category != "" {
							fmt.Fprintf(w, " (%s)", s.Category)
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

func skillAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a skill",
		Long: `Add a skill with a self-assessed level from 1 to 5.

Examples:
  lifeos skill add --name=Go --category=language --level=4
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				p := cli.NewFlagParser(cmd)
				name, err := p.ParseString("name")
				if err != nil {
					return f.Usage(err, "")
				}
				level, err := p.ParseInt("level")
				if err != nil {
					return f.Usage(err, "")
				}

				skill, err := c.App.ProgrammingService.CreateSkill(ctx, programming.CreateSkillRequest{
					Name:     name,
					Category: p.ParseStringOptional("category"),
					Level:    level,
					Notes:    p.ParseStringOptional("notes"),
				})
				if err != nil {
					return f.Fail(err, "Levels run from 1 to 5")
				}
				return f.Success(skill, []string{skill.ID}, func(w io.Writer) {
					fmt.Fprintf(w, "Skill '%s' added (ID: %s)\n", skill.Name, skill.ID)
				})
			})
		},
	}
	cmd.Flags().String("name", "", "Skill name (required)")
	cmd.Flags().String("category", "", "Category, e.g. language or database")
	cmd.Flags().Int("level", 1, "Level from 1 to 5")
	cmd.Flags().String("notes", "", "Free-form notes")
	cli.AddOutputFlags(cmd)
	return cmd
}
