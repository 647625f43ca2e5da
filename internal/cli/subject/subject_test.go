package subject

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lifeos/internal/app"
	"github.com/thenoetrevino/lifeos/internal/cli"
	clitest "github.com/thenoetrevino/lifeos/internal/testutil/cli"
)

func addSubject(t *testing.T, a *app.App, name string) string {
	t.Helper()
	res, err := clitest.ExecuteCLICommand(t, a, SubjectCmd(), []string{"add", "--name", name, "--credits", "6", "--quiet"})
	require.NoError(t, err)
	id := strings.TrimSpace(res.Stdout)
	require.NotEmpty(t, id)
	return id
}

func TestSubjectAdd(t *testing.T) {
	_, a := clitest.SetupCLITest(t)

	res, err := clitest.ExecuteCLICommand(t, a, SubjectCmd(), []string{
		"add", "--name", "Linear Algebra", "--code", "MATH201", "--professor", "Dr. Noether", "--json",
	})
	require.NoError(t, err)

	out := clitest.ParseJSON(t, res.Stdout)
	data := out["data"].(map[string]any)
	assert.Equal(t, "Linear Algebra", data["name"])
	assert.Equal(t, "MATH201", data["code"])
	assert.Equal(t, "Dr. Noether", data["professor"])

	_, err = clitest.ExecuteCLICommand(t, a, SubjectCmd(), []string{"add"})
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestGradesCombinesExamsAndEntries(t *testing.T) {
	_, a := clitest.SetupCLITest(t)
	id := addSubject(t, a, "Physics")

	res, err := clitest.ExecuteCLICommand(t, a, ExamCmd(), []string{"add", id, "--title", "Midterm", "--grade", "80"})
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "Exam 'Midterm' recorded")

	// scheduled exams do not count
	_, err = clitest.ExecuteCLICommand(t, a, ExamCmd(), []string{"add", id, "--title", "Final", "--date", "2025-06-20"})
	require.NoError(t, err)

	res, err = clitest.ExecuteCLICommand(t, a, EntryCmd(), []string{"add", id, "--title", "Extra credit", "--type", "bonus", "--points", "5"})
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "Entry 'Extra credit' recorded")

	res, err = clitest.ExecuteCLICommand(t, a, SubjectCmd(), []string{"grades", id})
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "Physics")
	assert.Contains(t, res.Stdout, "Midterm")
	assert.Contains(t, res.Stdout, "upcoming")
	assert.Contains(t, res.Stdout, "Earned:   85.00")
	assert.Contains(t, res.Stdout, "Possible: 100.00")
	assert.Contains(t, res.Stdout, "Grade:    85.00% (B)")

	res, err = clitest.ExecuteCLICommand(t, a, SubjectCmd(), []string{"grades", id, "--json"})
	require.NoError(t, err)
	grade := clitest.ParseJSON(t, res.Stdout)["data"].(map[string]any)["grade"].(map[string]any)
	assert.InDelta(t, 85.0, grade["percentage"], 1e-9)
	assert.InDelta(t, 5.0, grade["bonusPoints"], 1e-9)
}

func TestSubjectList(t *testing.T) {
	_, a := clitest.SetupCLITest(t)

	res, err := clitest.ExecuteCLICommand(t, a, SubjectCmd(), []string{"list"})
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "No subjects found")

	id := addSubject(t, a, "Chemistry")
	addSubject(t, a, "History")
	_, err = clitest.ExecuteCLICommand(t, a, EntryCmd(), []string{"add", id, "--title", "Lab 1", "--points", "7", "--max", "10"})
	require.NoError(t, err)

	res, err = clitest.ExecuteCLICommand(t, a, SubjectCmd(), []string{"list"})
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "70.0% C")
	assert.Contains(t, res.Stdout, "no grades")
}

func TestUniversityErrors(t *testing.T) {
	tests := []struct {
		name     string
		cmd      func() *cobra.Command
		args     func(subjectID string) []string
		wantCode int
	}{
		{
			name:     "grades of unknown subject",
			cmd:      SubjectCmd,
			args:     func(string) []string { return []string{"grades", "missing"} },
			wantCode: cli.ExitNotFound,
		},
		{
			name:     "exam for unknown subject",
			cmd:      ExamCmd,
			args:     func(string) []string { return []string{"add", "missing", "--title", "Quiz"} },
			wantCode: cli.ExitNotFound,
		},
		{
			name:     "exam without title",
			cmd:      ExamCmd,
			args:     func(id string) []string { return []string{"add", id} },
			wantCode: cli.ExitUsage,
		},
		{
			name:     "exam with negative grade",
			cmd:      ExamCmd,
			args:     func(id string) []string { return []string{"add", id, "--title", "Quiz", "--grade=-1"} },
			wantCode: cli.ExitValidation,
		},
		{
			name:     "entry with unknown type",
			cmd:      EntryCmd,
			args:     func(id string) []string { return []string{"add", id, "--title", "x", "--type", "essay"} },
			wantCode: cli.ExitUsage,
		},
		{
			name:     "entry with bad date",
			cmd:      EntryCmd,
			args:     func(id string) []string { return []string{"add", id, "--title", "x", "--date", "someday"} },
			wantCode: cli.ExitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, a := clitest.SetupCLITest(t)
			id := addSubject(t, a, "Biology")
			_, err := clitest.ExecuteCLICommand(t, a, tt.cmd(), tt.args(id))
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))
		})
	}
}
