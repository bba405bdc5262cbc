package tasklist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmate/internal/task"
	"taskmate/internal/tasklist"
)

func TestNewDefaultsCapacity(t *testing.T) {
	assert.Equal(t, tasklist.DefaultCapacity, tasklist.New(0).Cap())
	assert.Equal(t, tasklist.DefaultCapacity, tasklist.New(-3).Cap())
	assert.Equal(t, 7, tasklist.New(7).Cap())
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	l := tasklist.New(10)
	require.NoError(t, l.Add(task.NewTodo("a")))
	require.NoError(t, l.Add(task.NewTodo("b")))
	require.NoError(t, l.Add(task.NewTodo("a")))

	require.Equal(t, 3, l.Size())
	assert.Equal(t, "a", l.Get(0).Name())
	assert.Equal(t, "b", l.Get(1).Name())
	assert.Equal(t, "a", l.Get(2).Name())
}

func TestAddRejectsWhenFull(t *testing.T) {
	l := tasklist.New(2)
	require.NoError(t, l.Add(task.NewTodo("a")))
	assert.False(t, l.Full())
	require.NoError(t, l.Add(task.NewTodo("b")))
	assert.True(t, l.Full())

	err := l.Add(task.NewTodo("c"))
	assert.ErrorIs(t, err, tasklist.ErrFull)
	assert.Equal(t, 2, l.Size())
}

func TestRemove(t *testing.T) {
	l := tasklist.New(10)
	require.NoError(t, l.Add(task.NewTodo("a")))
	require.NoError(t, l.Add(task.NewTodo("b")))
	require.NoError(t, l.Add(task.NewTodo("c")))

	removed, err := l.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, "b", removed.Name())
	require.Equal(t, 2, l.Size())
	assert.Equal(t, "c", l.Get(1).Name())

	_, err = l.Remove(2)
	assert.ErrorIs(t, err, tasklist.ErrOutOfRange)
	_, err = l.Remove(-1)
	assert.ErrorIs(t, err, tasklist.ErrOutOfRange)
}

func TestMarkCompleteIsOneBased(t *testing.T) {
	l := tasklist.New(10)
	require.NoError(t, l.Add(task.NewTodo("a")))
	require.NoError(t, l.Add(task.NewTodo("b")))

	require.NoError(t, l.MarkComplete(2))
	assert.False(t, l.Get(0).IsComplete())
	assert.True(t, l.Get(1).IsComplete())

	assert.ErrorIs(t, l.MarkComplete(0), tasklist.ErrOutOfRange)
	assert.ErrorIs(t, l.MarkComplete(3), tasklist.ErrOutOfRange)
}

func TestMatches(t *testing.T) {
	l := tasklist.New(10)
	require.NoError(t, l.Add(task.NewTodo("read book")))
	require.NoError(t, l.Add(task.NewDeadline("return book", "Sunday")))
	require.NoError(t, l.Add(task.NewEvent("Book club", "Mon")))

	expected := "Here are the matching tasks in your list:\n" +
		"1.[T][ ] read book\n" +
		"2.[D][ ] return book (by: Sunday)"
	assert.Equal(t, expected, l.Matches("book"))

	assert.Equal(t, "Here are the matching tasks in your list:\n3.[E][ ] Book club (at: Mon)", l.Matches("Book"))
	assert.Equal(t, "", l.Matches("xyz"))
}

func TestAllIsACopy(t *testing.T) {
	l := tasklist.New(10)
	require.NoError(t, l.Add(task.NewTodo("a")))

	all := l.All()
	all[0] = task.NewTodo("z")
	assert.Equal(t, "a", l.Get(0).Name())
}
