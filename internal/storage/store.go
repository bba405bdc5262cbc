// Package storage persists the task list between sessions.
//
// Persistence sits outside the command interpreter: the shell restores the
// list once at startup and saves it after each command. No durability is
// promised beyond what the underlying database provides.
package storage

import (
	"context"
	"fmt"

	"taskmate/internal/task"
	"taskmate/internal/tasklist"
)

// Store loads and saves the whole task list.
type Store interface {
	// Load returns the stored tasks in list order.
	Load(ctx context.Context) ([]task.Task, error)

	// Save replaces the stored tasks with tasks.
	Save(ctx context.Context, tasks []task.Task) error

	Close() error
}

// Restore appends the stored tasks to list. It stops at the first task that
// does not fit and returns the wrapped tasklist.ErrFull; tasks added before
// that point stay in the list.
func Restore(ctx context.Context, s Store, list *tasklist.List) error {
	tasks, err := s.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	for i, t := range tasks {
		if err := list.Add(t); err != nil {
			return fmt.Errorf("restoring task %d of %d: %w", i+1, len(tasks), err)
		}
	}
	return nil
}
