// Package grades aggregates a subject's exams and grade entries into a single score.
package grades

import (
	"math"

	"github.com/thenoetrevino/lifeos/internal/models"
)

// Points is an earned/possible pair
type Points struct {
	Earned   float64 `json:"earned"`
	Possible float64 `json:"possible"`
}

// Calculation is the derived grade for one subject. It is never persisted.
type Calculation struct {
	TotalEarned   float64 `json:"totalEarned"`
	TotalPossible float64 `json:"totalPossible"`
	// Percentage is 0 when TotalPossible is 0. It is not clamped and may
	// exceed 100 when bonus points push earned past possible.
	Percentage  float64 `json:"percentage"`
	ExamGrades  Points  `json:"examGrades"`
	EntryGrades Points  `json:"entryGrades"`
	BonusPoints float64 `json:"bonusPoints"`
	Deductions  float64 `json:"deductions"`
}

// Calculate aggregates exams and grade entries.
//
// Only taken exams with a recorded grade count. Regular entries contribute to
// both earned and possible points; bonus entries add to earned only; deduction
// entries subtract their absolute value from earned only.
func Calculate(exams []models.Exam, entries []models.GradeEntry) Calculation {
	var c Calculation

	for _, e := range exams {
		if !e.Graded() {
			continue
		}
		c.ExamGrades.Earned += *e.Grade
		c.ExamGrades.Possible += e.MaxGrade
	}

	for _, g := range entries {
		switch g.Type {
		case models.EntryBonus:
			c.BonusPoints += g.PointsEarned
		case models.EntryDeduction:
			c.Deductions += math.Abs(g.PointsEarned)
		default:
			c.EntryGrades.Earned += g.PointsEarned
			c.EntryGrades.Possible += g.MaxPoints
		}
	}

	c.TotalEarned = c.ExamGrades.Earned + c.EntryGrades.Earned + c.BonusPoints - c.Deductions
	c.TotalPossible = c.ExamGrades.Possible + c.EntryGrades.Possible

	if c.TotalPossible > 0 {
		c.Percentage = c.TotalEarned / c.TotalPossible * 100
	}
	return c
}

// Clamp bounds a percentage to [0, 100] for display as a progress bar
func Clamp(percentage float64) float64 {
	return math.Min(math.Max(percentage, 0), 100)
}

// Letter maps a percentage to a letter grade
func Letter(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A"
	case percentage >= 80:
		return "B"
	case percentage >= 70:
		return "C"
	case percentage >= 60:
		return "D"
	default:
		return "F"
	}
}
