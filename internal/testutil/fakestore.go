// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"taskmate/internal/task"
)

// FakeStore is an in-memory implementation of storage.Store for testing.
type FakeStore struct {
	mu     sync.Mutex
	tasks  []task.Task
	saves  int
	closed bool

	// Error injection for testing
	LoadErr  error
	SaveErr  error
	CloseErr error
}

// NewFakeStore creates a FakeStore holding tasks.
func NewFakeStore(tasks ...task.Task) *FakeStore {
	return &FakeStore{tasks: tasks}
}

// Load implements storage.Store.
func (f *FakeStore) Load(ctx context.Context) ([]task.Task, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]task.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

// Save implements storage.Store.
func (f *FakeStore) Save(ctx context.Context, tasks []task.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.tasks = append([]task.Task(nil), tasks...)
	return nil
}

// Close implements storage.Store.
func (f *FakeStore) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return f.CloseErr
}

// Tasks returns the tasks last saved.
func (f *FakeStore) Tasks() []task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]task.Task(nil), f.tasks...)
}

// Saves returns the number of Save calls, failed ones included.
func (f *FakeStore) Saves() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}

// Closed reports whether Close was called.
func (f *FakeStore) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}
