package note

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
	clock := testutil.NewClock(time.Date(2024, 2, 10, 18, 0, 0, 0, time.UTC))
	return NewService(store, clock.Now), clock
}

func titles(notes []models.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Title
	}
	return out
}

func TestCreateNote(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)

	note, err := svc.CreateNote(context.Background(), CreateNoteRequest{
		Title:   "Reading list",
		Content: "# Books\n- SICP",
		Tags:    []string{" Books ", "books", "todo", ""},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"books", "todo"}, note.Tags)
	assert.False(t, note.Pinned)

	_, err = svc.CreateNote(context.Background(), CreateNoteRequest{Content: "orphan"})
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestListNotes_PinnedFirstThenRecent(t *testing.T) {
	t.Parallel()
	svc, clock := setupService(t)
	ctx := context.Background()

	for _, title := range []string{"old", "pinned", "new"} {
		_, err := svc.CreateNote(ctx, CreateNoteRequest{Title: title, Pinned: title == "pinned"})
		require.NoError(t, err)
		clock.Advance(time.Minute)
	}

	notes, err := svc.ListNotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"pinned", "new", "old"}, titles(notes))

	// Editing the old note makes it the most recent unpinned one
	content := "edited"
	_, err = svc.UpdateNote(ctx, UpdateNoteRequest{ID: notes[2].ID, Content: &content})
	require.NoError(t, err)

	notes, err = svc.ListNotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"pinned", "old", "new"}, titles(notes))
}

func TestTogglePin(t *testing.T) {
	t.Parallel()
	svc, clock := setupService(t)
	ctx := context.Background()
	note, err := svc.CreateNote(ctx, CreateNoteRequest{Title: "pin me"})
	require.NoError(t, err)
	clock.Advance(time.Second)

	note, err = svc.TogglePin(ctx, note.ID)
	require.NoError(t, err)
	assert.True(t, note.Pinned)
	assert.True(t, note.UpdatedAt.Equal(clock.Now()))

	note, err = svc.TogglePin(ctx, note.ID)
	require.NoError(t, err)
	assert.False(t, note.Pinned)

	_, err = svc.TogglePin(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestDeleteNote(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()
	note, err := svc.CreateNote(ctx, CreateNoteRequest{Title: "bye"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteNote(ctx, note.ID))

	_, err = svc.GetNote(ctx, note.ID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
	assert.ErrorIs(t, svc.DeleteNote(ctx, ""), ErrInvalidNoteID)
}
