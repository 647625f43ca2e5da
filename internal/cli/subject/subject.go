package subject

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lifeos/internal/adapters"
	"github.com/thenoetrevino/lifeos/internal/cli"
	"github.com/thenoetrevino/lifeos/internal/grades"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/services/university"
)

// SubjectCmd returns the subject parent command
func SubjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subject",
		Short: "Manage university subjects and view grades",
	}

	cmd.AddCommand(listCmd())
	cmd.AddCommand(addCmd())
	cmd.AddCommand(gradesCmd())

	return cmd
}

// subjectGrade pairs a subject with its computed grade for output
type subjectGrade struct {
	models.Subject
	Grade grades.Calculation `json:"grade"`
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subjects with their current grade",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				subjects, err := c.App.UniversityService.ListSubjects(ctx)
				if err != nil {
					return f.Fail(err, "")
				}
				rows := make([]subjectGrade, len(subjects))
				ids := make([]string, len(subjects))
				for i, s := range subjects {
					calc, err := c.App.UniversityService.SubjectGrade(ctx, s.ID)
					if err != nil {
						return f.Fail(err, "")
					}
					rows[i] = subjectGrade{Subject: s, Grade: calc}
					ids[i] = s.ID
				}
				return f.Success(rows, ids, func(w io.Writer) {
					if len(rows) == 0 {
						fmt.Fprintln(w, "No subjects found")
						return
					}
					for _, r := range rows {
						grade := "no grades"
						if r.Grade.TotalPossible > 0 {
							grade = fmt.Sprintf("%.1f%% %s", r.Grade.Percentage, grades.Letter(r.Grade.Percentage))
						}
						fmt.Fprintf(w, "  [%s] %-30s %s\n", cli.ShortID(r.ID), r.Name, grade)
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
		Short: "Add a subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				p := cli.NewFlagParser(cmd)
				name, err := p.ParseString("name")
				if err != nil {
					return f.Usage(err, "")
				}
				credits, err := p.ParseInt("credits")
				if err != nil {
					return f.Usage(err, "")
				}
				subject, err := c.App.UniversityService.CreateSubject(ctx, university.CreateSubjectRequest{
					Name:      name,
					Code:      p.ParseStringOptional("code"),
					Semester:  p.ParseStringOptional("semester"),
					Credits:   credits,
					Professor: p.ParseStringOptional("professor"),
				})
				if err != nil {
					return f.Fail(err, "")
				}
				return f.Success(subject, []string{subject.ID}, func(w io.Writer) {
					fmt.Fprintf(w, "Subject '%s' added (ID: %s)\n", subject.Name, subject.ID)
				})
			})
		},
	}
	cmd.Flags().String("name", "", "Subject name (required)")
	cmd.Flags().String("code", "", "Course code")
	cmd.Flags().String("semester", "", "Semester")
	cmd.Flags().Int("credits", 0, "Credits")
	cmd.Flags().String("professor", "", "Professor")
	cli.AddOutputFlags(cmd)
	return cmd
}

func gradesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grades <subject-id>",
		Short: "Show the grade breakdown of a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				subject, err := c.App.UniversityService.GetSubject(ctx, args[0])
				if err != nil {
					return f.Fail(err, "Use 'lifeos subject list' to see subject IDs")
				}
				exams, err := c.App.UniversityService.ListExams(ctx, subject.ID)
				if err != nil {
					return f.Fail(err, "")
				}
				entries, err := c.App.UniversityService.ListEntries(ctx, subject.ID)
				if err != nil {
					return f.Fail(err, "")
				}
				calc := grades.Calculate(exams, entries)

				data := map[string]any{"subject": subject, "exams": exams, "entries": entries, "grade": calc}
				return f.Success(data, []string{subject.ID}, func(w io.Writer) {
					fmt.Fprintf(w, "%s\n\n", subject.Name)
					if len(exams) > 0 {
						fmt.Fprintln(w, "Exams:")
						for _, e := range exams {
							fmt.Fprintf(w, "  %s\n", adapters.ExamLine(e))
						}
					}
					if len(entries) > 0 {
						fmt.Fprintln(w, "Entries:")
						for _, g := range entries {
							fmt.Fprintf(w, "  %s\n", adapters.EntryLine(g))
						}
					}
					fmt.Fprintf(w, "\nEarned:   %.2f\n", calc.TotalEarned)
					fmt.Fprintf(w, "Possible: %.2f\n", calc.TotalPossible)
					if calc.BonusPoints != 0 || calc.Deductions != 0 {
						fmt.Fprintf(w, "Bonus:    +%.2f  Deductions: -%.2f\n", calc.BonusPoints, calc.Deductions)
					}
					fmt.Fprintf(w, "Grade:    %.2f%% (%s)\n", calc.Percentage, grades.Letter(calc.Percentage))
				})
			})
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}
