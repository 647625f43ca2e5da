package programming

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lifeos/internal/database"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/testutil"
)

func setupService(t *testing.T) (Service, *testutil.Clock) {
	t.Helper()
	store := database.NewStorageRepo(testutil.SetupTestDB(t))
	clock := testutil.NewClock(time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC))
	return NewService(store, clock.Now), clock
}

func createItem(t *testing.T, svc Service) *models.LearningItem {
	t.Helper()
	item, err := svc.CreateLearningItem(context.Background(), CreateLearningItemRequest{
		Title: "Go Concurrency Patterns",
		Type:  models.LearningVideo,
		URL:   "https://example.com/talk",
	})
	require.NoError(t, err)
	return item
}

func TestCreateLearningItem(t *testing.T) {
	t.Parallel()
	svc, clock := setupService(t)

	item := createItem(t, svc)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, models.LearningPlanned, item.Status)
	assert.Equal(t, 0, item.Progress)
	assert.True(t, item.CreatedAt.Equal(clock.Now()))

	items, err := svc.ListLearningItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
}

func TestCreateLearningItem_Validation(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.CreateLearningItem(ctx, CreateLearningItemRequest{Type: models.LearningBook})
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = svc.CreateLearningItem(ctx, CreateLearningItemRequest{Title: "x", Type: "podcast"})
	assert.ErrorIs(t, err, ErrInvalidLearningItem)

	_, err = svc.CreateLearningItem(ctx, CreateLearningItemRequest{Title: "x", Type: models.LearningBook, URL: "not a url"})
	assert.ErrorIs(t, err, ErrInvalidLearningItem)
}

func TestCreateLearningItem_CompletedStartsAtFullProgress(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)

	item, err := svc.CreateLearningItem(context.Background(), CreateLearningItemRequest{
		Title:  "The Go Programming Language",
		Type:   models.LearningBook,
		Status: models.LearningCompleted,
	})

	require.NoError(t, err)
	assert.Equal(t, 100, item.Progress)
}

func TestUpdateProgress(t *testing.T) {
	t.Parallel()
	svc, clock := setupService(t)
	item := createItem(t, svc)
	ctx := context.Background()
	clock.Advance(time.Hour)

	got, err := svc.UpdateProgress(ctx, item.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, got.Progress)
	assert.Equal(t, models.LearningInProgress, got.Status, "starting progress leaves planned")
	assert.True(t, got.UpdatedAt.Equal(clock.Now()))

	got, err = svc.UpdateProgress(ctx, item.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, models.LearningCompleted, got.Status)

	_, err = svc.UpdateProgress(ctx, item.ID, 101)
	assert.ErrorIs(t, err, ErrInvalidProgress)
	_, err = svc.UpdateProgress(ctx, item.ID, -1)
	assert.ErrorIs(t, err, ErrInvalidProgress)
}

func TestMoveLearningItem(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	item := createItem(t, svc)
	ctx := context.Background()

	changed, err := svc.MoveLearningItem(ctx, item.ID, models.LearningPlanned)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = svc.MoveLearningItem(ctx, item.ID, models.LearningCompleted)
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := svc.GetLearningItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LearningCompleted, got.Status)
	assert.Equal(t, 100, got.Progress)

	_, err = svc.MoveLearningItem(ctx, item.ID, "someday")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = svc.MoveLearningItem(ctx, "missing", models.LearningPlanned)
	assert.ErrorIs(t, err, ErrLearningItemNotFound)
}

func TestUpdateAndDeleteLearningItem(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	item := createItem(t, svc)
	ctx := context.Background()

	notes := "watch at 1.25x"
	got, err := svc.UpdateLearningItem(ctx, UpdateLearningItemRequest{ID: item.ID, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, notes, got.Notes)
	assert.Equal(t, item.Title, got.Title)

	require.NoError(t, svc.DeleteLearningItem(ctx, item.ID))
	assert.ErrorIs(t, svc.DeleteLearningItem(ctx, item.ID), ErrLearningItemNotFound)
}

func TestSkills(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.CreateSkill(ctx, CreateSkillRequest{Name: "Go", Level: 6})
	assert.ErrorIs(t, err, ErrInvalidSkill)

	skill, err := svc.CreateSkill(ctx, CreateSkillRequest{Name: "Go", Category: "languages", Level: 3})
	require.NoError(t, err)

	level := 4
	skill, err = svc.UpdateSkill(ctx, UpdateSkillRequest{ID: skill.ID, Level: &level})
	require.NoError(t, err)
	assert.Equal(t, 4, skill.Level)

	skills, err := svc.ListSkills(ctx)
	require.NoError(t, err)
	assert.Len(t, skills, 1)

	require.NoError(t, svc.DeleteSkill(ctx, skill.ID))
	assert.ErrorIs(t, svc.DeleteSkill(ctx, skill.ID), ErrSkillNotFound)
}

func TestTools(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.CreateTool(ctx, CreateToolRequest{Name: "  "})
	assert.ErrorIs(t, err, ErrEmptyName)

	tool, err := svc.CreateTool(ctx, CreateToolRequest{Name: "Neovim", Proficiency: models.ProficiencyAdvanced})
	require.NoError(t, err)

	bad := models.Proficiency("wizard")
	_, err = svc.UpdateTool(ctx, UpdateToolRequest{ID: tool.ID, Proficiency: &bad})
	assert.ErrorIs(t, err, ErrInvalidTool)

	require.NoError(t, svc.DeleteTool(ctx, tool.ID))
	tools, err := svc.ListTools(ctx)
	require.NoError(t, err)
	assert.Empty(t, tools)
}

func TestCodingProjects(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, CreateProjectRequest{
		Name:      "lifeos",
		TechStack: []string{"Go", " go ", "Go", "", "SQLite"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.CodingIdea, project.Status)
	assert.Equal(t, []string{"Go", "go", "SQLite"}, project.TechStack)

	status := models.CodingInProgress
	project, err = svc.UpdateProject(ctx, UpdateProjectRequest{ID: project.ID, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.CodingInProgress, project.Status)
	assert.Len(t, project.TechStack, 3, "nil stack leaves it unchanged")

	require.NoError(t, svc.DeleteProject(ctx, project.ID))
	_, err = svc.UpdateProject(ctx, UpdateProjectRequest{ID: project.ID, Status: &status})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}
