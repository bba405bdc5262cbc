// Package tasklist holds the ordered, capacity-bounded list of tasks the
// command interpreter operates on.
//
// A List is not safe for concurrent use. It is owned by a single caller and
// handed to the interpreter on every call.
package tasklist

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"taskmate/internal/task"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 100

// MatchesHeader starts the listing returned by Matches.
const MatchesHeader = "Here are the matching tasks in your list:"

var (
	// ErrFull is returned by Add when the list is at capacity.
	ErrFull = errors.New("task list is full")

	// ErrOutOfRange is returned for an index outside the list.
	ErrOutOfRange = errors.New("task index out of range")
)

// List is an ordered sequence of tasks in insertion order.
type List struct {
	tasks    []task.Task
	capacity int
}

// New creates an empty list holding at most capacity tasks.
func New(capacity int) *List {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &List{capacity: capacity}
}

// Size returns the number of tasks.
func (l *List) Size() int { return len(l.tasks) }

// Cap returns the maximum number of tasks.
func (l *List) Cap() int { return l.capacity }

// Full reports whether another task can be added.
func (l *List) Full() bool { return len(l.tasks) >= l.capacity }

// Get returns the task at 0-based position i. It panics if i is out of
// range, like a slice index.
func (l *List) Get(i int) task.Task { return l.tasks[i] }

// Add appends t.
func (l *List) Add(t task.Task) error {
	if l.Full() {
		return fmt.Errorf("%w: capacity %d", ErrFull, l.capacity)
	}
	l.tasks = append(l.tasks, t)
	return nil
}

// Remove deletes the task at 0-based position i and returns it.
func (l *List) Remove(i int) (task.Task, error) {
	if i < 0 || i >= len(l.tasks) {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, i)
	}
	removed := l.tasks[i]
	l.tasks = slices.Delete(l.tasks, i, i+1)
	return removed, nil
}

// MarkComplete marks the task at 1-based position n as complete.
func (l *List) MarkComplete(n int) error {
	if n < 1 || n > len(l.tasks) {
		return fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	l.tasks[n-1].MarkComplete()
	return nil
}

// Matches returns a numbered listing of the tasks whose name contains query
// (case-sensitive), or "" when none does. Numbers are positions in the whole
// list.
func (l *List) Matches(query string) string {
	var nums []int
	var found []task.Task
	for i, t := range l.tasks {
		if strings.Contains(t.Name(), query) {
			nums = append(nums, i+1)
			found = append(found, t)
		}
	}
	if len(found) == 0 {
		return ""
	}
	return Listing(MatchesHeader, nums, found)
}

// All returns a copy of the tasks in order.
func (l *List) All() []task.Task {
	out := make([]task.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}
