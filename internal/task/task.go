// Package task defines the task entity and its variants.
//
// Tasks do not validate their own names. Callers that accept user input
// (the command interpreter) reject empty names before constructing one.
package task

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrUnknownKind is returned by Restore for an unrecognised kind.
var ErrUnknownKind = errors.New("unknown task kind")

// Kind identifies a task variant.
type Kind string

const (
	KindTodo     Kind = "todo"
	KindDeadline Kind = "deadline"
	KindEvent    Kind = "event"
)

// Task is implemented by Todo, Deadline and Event only.
type Task interface {
	// ID is an opaque identifier assigned at construction. It is never
	// rendered.
	ID() string

	Kind() Kind
	Name() string

	// Detail is the variant-specific text: the due date of a deadline,
	// the time of an event, empty for a todo.
	Detail() string

	IsComplete() bool

	// MarkComplete sets the completion flag. It does not refuse a task
	// that is already complete.
	MarkComplete()

	// String returns the display rendering, e.g. "[D][X] Submit (by: Fri)".
	String() string

	sealed()
}

var (
	_ Task = (*Todo)(nil)
	_ Task = (*Deadline)(nil)
	_ Task = (*Event)(nil)
)

// base holds the attributes shared by every variant.
type base struct {
	id       string
	name     string
	complete bool
}

func newBase(name string) base {
	return base{id: uuid.New().String(), name: name}
}

func (b *base) ID() string       { return b.id }
func (b *base) Name() string     { return b.name }
func (b *base) IsComplete() bool { return b.complete }
func (b *base) MarkComplete()    { b.complete = true }
func (b *base) sealed()          {}

// render produces "[<tag>][<mark>] <name>".
func (b *base) render(tag string) string {
	mark := " "
	if b.complete {
		mark = "X"
	}
	return fmt.Sprintf("[%s][%s] %s", tag, mark, b.name)
}

// Todo is a task with no date attached.
type Todo struct {
	base
}

// NewTodo creates an incomplete todo.
func NewTodo(name string) *Todo {
	return &Todo{base: newBase(name)}
}

func (t *Todo) Kind() Kind     { return KindTodo }
func (t *Todo) Detail() string { return "" }
func (t *Todo) String() string { return t.render("T") }

// Deadline is a task due by a point in time. By is kept as entered.
type Deadline struct {
	base
	By string
}

// NewDeadline creates an incomplete deadline.
func NewDeadline(name, by string) *Deadline {
	return &Deadline{base: newBase(name), By: by}
}

func (d *Deadline) Kind() Kind     { return KindDeadline }
func (d *Deadline) Detail() string { return d.By }
func (d *Deadline) String() string { return fmt.Sprintf("%s (by: %s)", d.render("D"), d.By) }

// Event is a task happening at a point in time. At is kept as entered.
type Event struct {
	base
	At string
}

// NewEvent creates an incomplete event.
func NewEvent(name, at string) *Event {
	return &Event{base: newBase(name), At: at}
}

func (e *Event) Kind() Kind     { return KindEvent }
func (e *Event) Detail() string { return e.At }
func (e *Event) String() string { return fmt.Sprintf("%s (at: %s)", e.render("E"), e.At) }

// Restore rebuilds a task from its stored fields. An empty id gets a fresh
// one.
func Restore(kind Kind, id, name, detail string, complete bool) (Task, error) {
	var t Task
	switch kind {
	case KindTodo:
		t = NewTodo(name)
	case KindDeadline:
		t = NewDeadline(name, detail)
	case KindEvent:
		t = NewEvent(name, detail)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if id != "" {
		setID(t, id)
	}
	if complete {
		t.MarkComplete()
	}
	return t, nil
}

func setID(t Task, id string) {
	switch v := t.(type) {
	case *Todo:
		v.id = id
	case *Deadline:
		v.id = id
	case *Event:
		v.id = id
	}
}
