package subject

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lifeos/internal/cli"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/services/university"
)

// ExamCmd returns the exam parent command
func ExamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exam",
		Short: "Record exams",
	}
	cmd.AddCommand(examAddCmd())
	return cmd
}

func examAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <subject-id>",
		Short: "Schedule an exam, or record a taken one with --grade",
		Long: `Schedule an exam, or record a taken one with --grade.

Examples:
  lifeos exam add 3f2a... --title=Midterm --date=2025-04-10
  lifeos exam add 3f2a... --title=Final --grade=78 --max=100
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				p := cli.NewFlagParser(cmd)
				title, err := p.ParseString("title")
				if err != nil {
					return f.Usage(err, "")
				}
				date, err := p.ParseDate("date")
				if err != nil {
					return f.Usage(err, "")
				}
				grade, err := p.ParseFloatOptional("grade")
				if err != nil {
					return f.Usage(err, "")
				}
				maxGrade, _ := cmd.Flags().GetFloat64("max")
				taken, _ := cmd.Flags().GetBool("taken")

				exam, err := c.App.UniversityService.CreateExam(ctx, university.CreateExamRequest{
					SubjectID: args[0],
					Title:     title,
					Date:      date,
					MaxGrade:  maxGrade,
					Taken:     taken,
					Grade:     grade,
				})
				if err != nil {
					return f.Fail(err, "Use 'lifeos subject list' to see subject IDs")
				}
				return f.Success(exam, []string{exam.ID}, func(w io.Writer) {
					fmt.Fprintf(w, "Exam '%s' recorded (ID: %s)\n", exam.Title, exam.ID)
				})
			})
		},
	}
	cmd.Flags().String("title", "", "Exam title (required)")
	cmd.Flags().String("date", "", "Exam date (YYYY-MM-DD)")
	cmd.Flags().Float64("max", 100, "Maximum grade")
	cmd.Flags().Float64("grade", 0, "Grade obtained; marks the exam as taken")
	cmd.Flags().Bool("taken", false, "Mark as taken without a grade yet")
	cli.AddOutputFlags(cmd)
	return cmd
}

// EntryCmd returns the grade entry parent command
func EntryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Record assignments, quizzes, bonuses and deductions",
	}
	cmd.AddCommand(entryAddCmd())
	return cmd
}

func entryAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <subject-id>",
		Short: "Record a grade entry",
		Long: `Record a grade entry. Bonus points never raise the maximum and
deductions always subtract.

Examples:
  lifeos entry add 3f2a... --title="Lab 1" --type=assignment --points=8 --max=10
  lifeos entry add 3f2a... --title="Late" --type=deduction --points=2
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				p := cli.NewFlagParser(cmd)
				title, err := p.ParseString("title")
				if err != nil {
					return f.Usage(err, "")
				}
				kind, err := cli.ParseEnum("type", p.ParseStringOptional("type"), models.GradeEntryTypes)
				if err != nil {
					return f.Usage(err, "")
				}
				date, err := p.ParseDate("date")
				if err != nil {
					return f.Usage(err, "")
				}
				points, _ := cmd.Flags().GetFloat64("points")
				maxPoints, _ := cmd.Flags().GetFloat64("max")

				entry, err := c.App.UniversityService.CreateEntry(ctx, university.CreateEntryRequest{
					SubjectID:    args[0],
					Title:        title,
					Type:         kind,
					PointsEarned: points,
					MaxPoints:    maxPoints,
					Date:         date,
				})
				if err != nil {
					return f.Fail(err, "Use 'lifeos subject list' to see subject IDs")
				}
				return f.Success(entry, []string{entry.ID}, func(w io.Writer) {
					fmt.Fprintf(w, "Entry '%s' recorded (ID: %s)\n", entry.Title, entry.ID)
				})
			})
		},
	}
	cmd.Flags().String("title", "", "Entry title (required)")
	cmd.Flags().String("type", "assignment", "Type: assignment, quiz, project, participation, bonus, deduction")
	cmd.Flags().Float64("points", 0, "Points earned")
	cmd.Flags().Float64("max", 0, "Maximum points (ignored for bonus and deduction)")
	cmd.Flags().String("date", "", "Date (YYYY-MM-DD)")
	cli.AddOutputFlags(cmd)
	return cmd
}
