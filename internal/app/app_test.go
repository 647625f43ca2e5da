package app

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/lifeos/internal/database"
	"github.com/thenoetrevino/lifeos/internal/services/task"
	"github.com/thenoetrevino/lifeos/internal/storage"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestNew(t *testing.T) {
	app := New(setupTestDB(t))

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.TaskService == nil {
		t.Error("Expected TaskService to be initialized")
	}
	if app.ProgrammingService == nil {
		t.Error("Expected ProgrammingService to be initialized")
	}
	if app.FreelancingService == nil {
		t.Error("Expected FreelancingService to be initialized")
	}
	if app.UniversityService == nil {
		t.Error("Expected UniversityService to be initialized")
	}
	if app.NoteService == nil {
		t.Error("Expected NoteService to be initialized")
	}
	if app.Repo() == nil {
		t.Error("Expected Repo to be initialized")
	}
}

func TestWithClock(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	app := New(setupTestDB(t), WithClock(func() time.Time { return fixed }))
	ctx := context.Background()

	created, err := app.TaskService.CreateTask(ctx, task.CreateTaskRequest{Title: "clocked"})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if !created.CreatedAt.Equal(fixed) {
		t.Errorf("Expected CreatedAt %v, got %v", fixed, created.CreatedAt)
	}

	if _, ok, err := app.Repo().GetItem(ctx, storage.TasksKey); err != nil || !ok {
		t.Errorf("Expected tasks document to be stored, ok=%v err=%v", ok, err)
	}
}

func TestClose(t *testing.T) {
	app := New(setupTestDB(t))

	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
}
