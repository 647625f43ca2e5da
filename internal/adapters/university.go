package adapters

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/lifeos/internal/grades"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/viewmodel"
)

// GradeVariant colors a percentage: passing is success, borderline warning
func GradeVariant(percentage float64) viewmodel.BadgeVariant {
	switch {
	case percentage >= 70:
		return viewmodel.BadgeSuccess
	case percentage >= 50:
		return viewmodel.BadgeWarning
	default:
		return viewmodel.BadgeDanger
	}
}

// SubjectCard builds the list card for a subject and its computed grade
func SubjectCard(s models.Subject, calc grades.Calculation, h Handlers[models.Subject]) viewmodel.CardProps {
	var details []string
	for _, d := range []string{s.Code, s.Semester, s.Professor} {
		if d != "" {
			details = append(details, d)
		}
	}

	var badges []viewmodel.CardBadge
	if s.Credits > 0 {
		badges = append(badges, viewmodel.CardBadge{Label: fmt.Sprintf("%d credits", s.Credits), Variant: viewmodel.BadgeSecondary})
	}

	var footer string
	if calc.TotalPossible > 0 {
		badges = append(badges, viewmodel.CardBadge{
			Label:   grades.Letter(calc.Percentage),
			Variant: GradeVariant(calc.Percentage),
		})
		footer = fmt.Sprintf("%.1f%% (%.1f / %.1f)", calc.Percentage, calc.TotalEarned, calc.TotalPossible)
	} else {
		badges = append(badges, viewmodel.CardBadge{Label: "no grades", Variant: viewmodel.BadgeOutline})
	}

	return viewmodel.CardProps{
		Title:       s.Name,
		Description: strings.Join(details, " · "),
		Badges:      badges,
		Footer:      footer,
		OnClick:     bind(h.OnOpen, s),
		Actions: []viewmodel.CardAction{
			{Label: "Details", Icon: "▤", OnClick: bind(h.OnOpen, s)},
			{Label: "Edit", Icon: "✎", OnClick: bind(h.OnEdit, s)},
			deleteAction(h, s),
		},
	}
}

// ExamLine renders one exam for the subject detail view
func ExamLine(e models.Exam) string {
	date := "no date"
	if e.Date != nil {
		date = formatDate(*e.Date)
	}
	switch {
	case e.Graded():
		return fmt.Sprintf("%s  %s  %.1f/%.1f", e.Title, date, *e.Grade, e.MaxGrade)
	case e.Taken:
		return fmt.Sprintf("%s  %s  awaiting grade", e.Title, date)
	default:
		return fmt.Sprintf("%s  %s  upcoming", e.Title, date)
	}
}

// EntryLine renders one grade entry for the subject detail view
func EntryLine(g models.GradeEntry) string {
	switch g.Type {
	case models.EntryBonus:
		return fmt.Sprintf("%s  bonus  +%.1f", g.Title, g.PointsEarned)
	case models.EntryDeduction:
		return fmt.Sprintf("%s  deduction  -%.1f", g.Title, abs(g.PointsEarned))
	default:
		return fmt.Sprintf("%s  %s  %.1f/%.1f", g.Title, g.Type, g.PointsEarned, g.MaxPoints)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
