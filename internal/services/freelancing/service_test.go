package freelancing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thenoetrevino/lifeos/internal/database"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/testutil"
)

func setupService(t *testing.T) (Service, *testutil.Clock) {
	t.Helper()
	store := database.NewStorageRepo(testutil.SetupTestDB(t))
	clock := testutil.NewClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	return NewService(store, clock.Now), clock
}

func createProject(t *testing.T, svc Service) *models.FreelanceProject {
	t.Helper()
	project, err := svc.CreateProject(context.Background(), CreateProjectRequest{
		Name:       "Landing page",
		Client:     "Acme",
		HourlyRate: 80,
	})
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}
	return project
}

func addTask(t *testing.T, svc Service, projectID, title string) *models.ProjectTask {
	t.Helper()
	task, err := svc.AddTask(context.Background(), AddTaskRequest{ProjectID: projectID, Title: title})
	if err != nil {
		t.Fatalf("Failed to add task: %v", err)
	}
	return task
}

func TestCreateProject(t *testing.T) {
	t.Parallel()

	svc, _ := setupService(t)
	project := createProject(t, svc)

	if project.Status != models.FreelanceLead {
		t.Errorf("Expected default status lead, got %s", project.Status)
	}
	if project.Tasks == nil || len(project.Tasks) != 0 {
		t.Errorf("Expected an empty task list, got %v", project.Tasks)
	}

	projects, err := svc.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("Expected 1 project, got %d", len(projects))
	}
}

func TestCreateProject_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := setupService(t)
	ctx := context.Background()

	if _, err := svc.CreateProject(ctx, CreateProjectRequest{}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}
	if _, err := svc.CreateProject(ctx, CreateProjectRequest{Name: "x", HourlyRate: -5}); !errors.Is(err, ErrInvalidProject) {
		t.Errorf("Expected ErrInvalidProject, got %v", err)
	}
}

func TestUpdateProject(t *testing.T) {
	t.Parallel()

	svc, clock := setupService(t)
	project := createProject(t, svc)
	clock.Advance(24 * time.Hour)

	status := models.FreelanceActive
	deadline := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	updated, err := svc.UpdateProject(context.Background(), UpdateProjectRequest{
		ID:       project.ID,
		Status:   &status,
		Deadline: &deadline,
	})
	if err != nil {
		t.Fatalf("UpdateProject failed: %v", err)
	}

	if updated.Status != models.FreelanceActive {
		t.Errorf("Expected status active, got %s", updated.Status)
	}
	if updated.Deadline == nil || !updated.Deadline.Equal(deadline) {
		t.Errorf("Expected deadline %v, got %v", deadline, updated.Deadline)
	}
	if !updated.UpdatedAt.Equal(clock.Now()) {
		t.Errorf("Expected UpdatedAt %v, got %v", clock.Now(), updated.UpdatedAt)
	}
	if updated.Client != "Acme" {
		t.Errorf("Untouched fields must be kept, client is %q", updated.Client)
	}
}

func TestProjectTasks_MoveAndProgress(t *testing.T) {
	t.Parallel()

	svc, _ := setupService(t)
	ctx := context.Background()
	project := createProject(t, svc)
	a := addTask(t, svc, project.ID, "Wireframes")
	addTask(t, svc, project.ID, "Copy")

	progress, err := svc.Progress(ctx, project.ID)
	if err != nil {
		t.Fatalf("Progress failed: %v", err)
	}
	if progress != 0 {
		t.Errorf("Expected 0%% progress, got %v", progress)
	}

	changed, err := svc.MoveTask(ctx, project.ID, a.ID, models.ProjectTaskDone)
	if err != nil {
		t.Fatalf("MoveTask failed: %v", err)
	}
	if !changed {
		t.Error("Expected MoveTask to report a change")
	}

	progress, _ = svc.Progress(ctx, project.ID)
	if progress != 50 {
		t.Errorf("Expected 50%% progress, got %v", progress)
	}

	changed, err = svc.MoveTask(ctx, project.ID, a.ID, models.ProjectTaskDone)
	if err != nil || changed {
		t.Errorf("Moving to the same status should be a no-op, got changed=%v err=%v", changed, err)
	}
}

func TestMoveTask_Errors(t *testing.T) {
	t.Parallel()

	svc, _ := setupService(t)
	ctx := context.Background()
	project := createProject(t, svc)
	task := addTask(t, svc, project.ID, "x")

	tests := []struct {
		name      string
		projectID string
		taskID    string
		status    models.ProjectTaskStatus
		want      error
	}{
		{"bad status", project.ID, task.ID, "blocked", ErrInvalidStatus},
		{"missing project", "nope", task.ID, models.ProjectTaskReview, ErrProjectNotFound},
		{"missing task", project.ID, "nope", models.ProjectTaskReview, ErrTaskNotFound},
		{"empty task id", project.ID, "", models.ProjectTaskReview, ErrInvalidTaskID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.MoveTask(ctx, tt.projectID, tt.taskID, tt.status)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestUpdateAndDeleteTask(t *testing.T) {
	t.Parallel()

	svc, _ := setupService(t)
	ctx := context.Background()
	project := createProject(t, svc)
	task := addTask(t, svc, project.ID, "Draft")

	high := models.PriorityHigh
	updated, err := svc.UpdateTask(ctx, UpdateTaskRequest{ProjectID: project.ID, TaskID: task.ID, Priority: &high})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if updated.Priority != models.PriorityHigh {
		t.Errorf("Expected high priority, got %s", updated.Priority)
	}

	if err := svc.DeleteTask(ctx, project.ID, task.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	got, _ := svc.GetProject(ctx, project.ID)
	if len(got.Tasks) != 0 {
		t.Errorf("Expected no tasks left, got %d", len(got.Tasks))
	}
}

func TestDeleteProject(t *testing.T) {
	t.Parallel()

	svc, _ := setupService(t)
	project := createProject(t, svc)

	if err := svc.DeleteProject(context.Background(), project.ID); err != nil {
		t.Fatalf("DeleteProject failed: %v", err)
	}
	if _, err := svc.GetProject(context.Background(), project.ID); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("Expected ErrProjectNotFound, got %v", err)
	}
}
