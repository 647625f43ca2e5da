package university

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lifeos/internal/database"
	"github.com/thenoetrevino/lifeos/internal/grades"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/testutil"
)

func setupService(t *testing.T) (Service, *testutil.Clock) {
	t.Helper()
	store := database.NewStorageRepo(testutil.SetupTestDB(t))
	clock := testutil.NewClock(time.Date(2024, 9, 2, 10, 0, 0, 0, time.UTC))
	return NewService(store, clock.Now), clock
}

func createSubject(t *testing.T, svc Service, name string) *models.Subject {
	t.Helper()
	subject, err := svc.CreateSubject(context.Background(), CreateSubjectRequest{Name: name, Credits: 6})
	require.NoError(t, err)
	return subject
}

func grade(v float64) *float64 { return &v }

func TestCreateSubject(t *testing.T) {
	t.Parallel()
	svc, clock := setupService(t)

	subject := createSubject(t, svc, "Linear Algebra")

	assert.NotEmpty(t, subject.ID)
	assert.True(t, subject.CreatedAt.Equal(clock.Now()))

	_, err := svc.CreateSubject(context.Background(), CreateSubjectRequest{Name: " "})
	assert.ErrorIs(t, err, ErrEmptyName)
	_, err = svc.CreateSubject(context.Background(), CreateSubjectRequest{Name: "x", Credits: -1})
	assert.ErrorIs(t, err, ErrInvalidSubject)
}

func TestUpdateSubject(t *testing.T) {
	t.Parallel()
	svc, clock := setupService(t)
	subject := createSubject(t, svc, "Algebra")
	clock.Advance(time.Hour)

	prof := "Dr. Noether"
	got, err := svc.UpdateSubject(context.Background(), UpdateSubjectRequest{ID: subject.ID, Professor: &prof})

	require.NoError(t, err)
	assert.Equal(t, prof, got.Professor)
	assert.Equal(t, 6, got.Credits)
	assert.True(t, got.UpdatedAt.Equal(clock.Now()))
}

func TestCreateExam_RequiresSubject(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)

	_, err := svc.CreateExam(context.Background(), CreateExamRequest{SubjectID: "ghost", Title: "Midterm", MaxGrade: 100})

	assert.ErrorIs(t, err, ErrSubjectNotFound)
}

func TestCreateExam_GradeImpliesTaken(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	subject := createSubject(t, svc, "Physics")

	exam, err := svc.CreateExam(context.Background(), CreateExamRequest{
		SubjectID: subject.ID, Title: "Quiz 1", MaxGrade: 10, Grade: grade(7),
	})

	require.NoError(t, err)
	assert.True(t, exam.Graded())
}

func TestUpdateExam_RecordAndClearGrade(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()
	subject := createSubject(t, svc, "Physics")
	exam, err := svc.CreateExam(ctx, CreateExamRequest{SubjectID: subject.ID, Title: "Final", MaxGrade: 100})
	require.NoError(t, err)
	assert.False(t, exam.Graded())

	exam, err = svc.UpdateExam(ctx, UpdateExamRequest{ID: exam.ID, Grade: grade(88)})
	require.NoError(t, err)
	assert.True(t, exam.Graded())

	exam, err = svc.UpdateExam(ctx, UpdateExamRequest{ID: exam.ID, ClearGrade: true})
	require.NoError(t, err)
	assert.Nil(t, exam.Grade)

	_, err = svc.UpdateExam(ctx, UpdateExamRequest{ID: exam.ID, Grade: grade(-1)})
	assert.ErrorIs(t, err, ErrInvalidExam)
}

func TestSubjectGrade(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()
	math := createSubject(t, svc, "Math")
	other := createSubject(t, svc, "History")

	_, err := svc.CreateExam(ctx, CreateExamRequest{SubjectID: math.ID, Title: "Midterm", MaxGrade: 100, Grade: grade(80)})
	require.NoError(t, err)
	_, err = svc.CreateEntry(ctx, CreateEntryRequest{SubjectID: math.ID, Title: "Extra credit", Type: models.EntryBonus, PointsEarned: 5})
	require.NoError(t, err)
	_, err = svc.CreateExam(ctx, CreateExamRequest{SubjectID: other.ID, Title: "Essay", MaxGrade: 50, Grade: grade(10)})
	require.NoError(t, err)

	got, err := svc.SubjectGrade(ctx, math.ID)
	require.NoError(t, err)

	assert.Equal(t, 85.0, got.TotalEarned)
	assert.Equal(t, 100.0, got.TotalPossible)
	assert.InDelta(t, 85.0, got.Percentage, 1e-9)
	assert.Equal(t, grades.Points{Earned: 80, Possible: 100}, got.ExamGrades)

	_, err = svc.SubjectGrade(ctx, "ghost")
	assert.ErrorIs(t, err, ErrSubjectNotFound)
}

func TestSubjectGrade_NoRecords(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	subject := createSubject(t, svc, "Empty")

	got, err := svc.SubjectGrade(context.Background(), subject.ID)

	require.NoError(t, err)
	assert.Equal(t, grades.Calculation{}, got)
}

func TestDeleteSubject_CascadesExamsAndEntries(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()
	doomed := createSubject(t, svc, "Doomed")
	kept := createSubject(t, svc, "Kept")

	for _, s := range []*models.Subject{doomed, kept} {
		_, err := svc.CreateExam(ctx, CreateExamRequest{SubjectID: s.ID, Title: "Exam", MaxGrade: 10})
		require.NoError(t, err)
		_, err = svc.CreateEntry(ctx, CreateEntryRequest{SubjectID: s.ID, Title: "HW", Type: models.EntryAssignment, MaxPoints: 10})
		require.NoError(t, err)
	}

	require.NoError(t, svc.DeleteSubject(ctx, doomed.ID))

	exams, err := svc.ListExams(ctx, "")
	require.NoError(t, err)
	require.Len(t, exams, 1)
	assert.Equal(t, kept.ID, exams[0].SubjectID)

	entries, err := svc.ListEntries(ctx, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, kept.ID, entries[0].SubjectID)

	assert.ErrorIs(t, svc.DeleteSubject(ctx, doomed.ID), ErrSubjectNotFound)
}

func TestEntries_UpdateAndDelete(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()
	subject := createSubject(t, svc, "Chemistry")

	_, err := svc.CreateEntry(ctx, CreateEntryRequest{SubjectID: subject.ID, Title: "Lab", Type: "homework"})
	assert.ErrorIs(t, err, ErrInvalidEntry)

	entry, err := svc.CreateEntry(ctx, CreateEntryRequest{
		SubjectID: subject.ID, Title: "Lab 1", Type: models.EntryAssignment, PointsEarned: 8, MaxPoints: 10,
	})
	require.NoError(t, err)

	earned := 9.5
	entry, err = svc.UpdateEntry(ctx, UpdateEntryRequest{ID: entry.ID, PointsEarned: &earned})
	require.NoError(t, err)
	assert.Equal(t, 9.5, entry.PointsEarned)

	listed, err := svc.ListEntries(ctx, subject.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	require.NoError(t, svc.DeleteEntry(ctx, entry.ID))
	assert.ErrorIs(t, svc.DeleteEntry(ctx, entry.ID), ErrEntryNotFound)
}
