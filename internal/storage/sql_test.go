package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmate/internal/config"
	"taskmate/internal/storage"
	"taskmate/internal/task"
	"taskmate/internal/tasklist"
	"taskmate/internal/testutil"
)

func openSQLite(t *testing.T, path string) storage.Store {
	t.Helper()
	s, err := storage.Open(context.Background(), config.DriverSQLite, path)
	require.NoError(t, err)
	require.NotNil(t, s)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_None(t *testing.T) {
	s, err := storage.Open(context.Background(), config.DriverNone, "")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := storage.Open(context.Background(), "postgres", "x")
	assert.Error(t, err)
}

func TestSQLite_EmptyLoad(t *testing.T) {
	s := openSQLite(t, filepath.Join(t.TempDir(), "tasks.db"))
	tasks, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSQLite_SaveLoadPreservesOrderAndState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "tasks.db")
	s := openSQLite(t, path)
	ctx := context.Background()

	d := task.NewDeadline("return book", "June 6th")
	d.MarkComplete()
	in := []task.Task{
		task.NewTodo("read book"),
		d,
		task.NewEvent("project meeting", "Mon 2-4pm"),
		task.NewTodo("read book"),
	}
	require.NoError(t, s.Save(ctx, in))

	// Reopen to make sure the data reached the file.
	require.NoError(t, s.Close())
	s = openSQLite(t, path)

	out, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].ID(), out[i].ID())
		assert.Equal(t, in[i].String(), out[i].String())
		assert.Equal(t, in[i].Kind(), out[i].Kind())
	}
}

func TestSQLite_SaveReplaces(t *testing.T) {
	s := openSQLite(t, filepath.Join(t.TempDir(), "tasks.db"))
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []task.Task{task.NewTodo("a"), task.NewTodo("b")}))
	require.NoError(t, s.Save(ctx, []task.Task{task.NewTodo("c")}))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "c", out[0].Name())

	require.NoError(t, s.Save(ctx, nil))
	out, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRestore(t *testing.T) {
	fake := testutil.NewFakeStore(task.NewTodo("a"), task.NewEvent("b", "noon"))
	l := tasklist.New(10)
	require.NoError(t, storage.Restore(context.Background(), fake, l))
	assert.Equal(t, 2, l.Size())
	assert.Equal(t, "[E][ ] b (at: noon)", l.Get(1).String())
}

func TestRestore_OverCapacity(t *testing.T) {
	fake := testutil.NewFakeStore(task.NewTodo("a"), task.NewTodo("b"), task.NewTodo("c"))
	l := tasklist.New(2)
	err := storage.Restore(context.Background(), fake, l)
	assert.ErrorIs(t, err, tasklist.ErrFull)
	assert.Equal(t, 2, l.Size())
}

func TestRestore_LoadError(t *testing.T) {
	fake := testutil.NewFakeStore()
	fake.LoadErr = assert.AnError
	err := storage.Restore(context.Background(), fake, tasklist.New(10))
	assert.ErrorIs(t, err, assert.AnError)
}
