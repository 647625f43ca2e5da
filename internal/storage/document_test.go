package storage

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lifeos/internal/database"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/testutil"
)

func setupStore(t *testing.T) *database.StorageRepo {
	t.Helper()
	return database.NewStorageRepo(testutil.SetupTestDB(t))
}

func TestLoad_MissingKeyIsDefault(t *testing.T) {
	doc := NewDocument[models.NotesData](setupStore(t), NotesKey)

	got, err := doc.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got.Notes)
}

func TestLoad_CorruptJSONIsDefault(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.SetItem(ctx, TasksKey, `{"tasks": [{"id": `))

	got, err := NewDocument[models.TasksData](store, TasksKey).Load(ctx)

	require.NoError(t, err)
	assert.Empty(t, got.Tasks)
}

func TestUpdate_Persists(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	doc := NewDocument[models.NotesData](store, NotesKey)

	err := doc.Update(ctx, func(d *models.NotesData) error {
		d.Notes = append(d.Notes, models.Note{ID: "n1", Title: "hello"})
		return nil
	})
	require.NoError(t, err)

	raw, ok, err := store.GetItem(ctx, NotesKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"title":"hello"`)

	fresh, err := NewDocument[models.NotesData](store, NotesKey).Load(ctx)
	require.NoError(t, err)
	require.Len(t, fresh.Notes, 1)
	assert.Equal(t, "n1", fresh.Notes[0].ID)
}

func TestUpdate_ErrorSkipsSave(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	doc := NewDocument[models.NotesData](store, NotesKey)
	boom := errors.New("boom")

	err := doc.Update(ctx, func(d *models.NotesData) error {
		d.Notes = append(d.Notes, models.Note{ID: "n1"})
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = doc.Update(ctx, func(d *models.NotesData) error {
		d.Notes = append(d.Notes, models.Note{ID: "n2"})
		return ErrUnchanged
	})
	assert.NoError(t, err)

	_, ok, err := store.GetItem(ctx, NotesKey)
	require.NoError(t, err)
	assert.False(t, ok, "nothing should have been written")
}

func TestUpdate_ConcurrentWritersDoNotLoseUpdates(t *testing.T) {
	doc := NewDocument[models.TasksData](setupStore(t), TasksKey)
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, doc.Update(ctx, func(d *models.TasksData) error {
				d.Tasks = append(d.Tasks, models.Task{Title: "t"})
				return nil
			}))
		}()
	}
	wg.Wait()

	got, err := doc.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Tasks, 20)
}

func TestExportImport_RoundTrip(t *testing.T) {
	src := setupStore(t)
	dst := setupStore(t)
	ctx := context.Background()

	require.NoError(t, src.SetItem(ctx, NotesKey, `{"notes":[{"id":"n1","title":"a"}]}`))
	require.NoError(t, src.SetItem(ctx, TasksKey, `not json`))
	require.NoError(t, src.SetItem(ctx, "someone-else", `{}`))

	var buf bytes.Buffer
	require.NoError(t, Export(ctx, src, &buf))
	assert.NotContains(t, buf.String(), "someone-else")
	assert.NotContains(t, buf.String(), TasksKey)

	keys, err := Import(ctx, dst, &buf)
	require.NoError(t, err)
	assert.Equal(t, []string{NotesKey}, keys)

	notes, err := NewDocument[models.NotesData](dst, NotesKey).Load(ctx)
	require.NoError(t, err)
	require.Len(t, notes.Notes, 1)
	assert.Equal(t, "a", notes.Notes[0].Title)
}

func TestImport_RejectsUnknownKeys(t *testing.T) {
	store := setupStore(t)

	_, err := Import(context.Background(), store, strings.NewReader(`{"other": {}}`))

	assert.ErrorIs(t, err, ErrUnknownKey)
}
