package commands

import (
	"fmt"
	"strings"

	"taskmate/internal/task"
	"taskmate/internal/tasklist"
)

const (
	bySeparator = " /by "
	atSeparator = " /at "
)

func init() {
	Register(Command{
		Name:     "todo",
		Synopsis: "Add a task with no date",
		Usage:    "todo <name>",
		Handler:  addTodo,
	})
	Register(Command{
		Name:     "deadline",
		Synopsis: "Add a task due by a date",
		Usage:    "deadline <name> /by <date>",
		Handler:  addDeadline,
	})
	Register(Command{
		Name:     "event",
		Synopsis: "Add a task happening at a time",
		Usage:    "event <name> /at <time>",
		Handler:  addEvent,
	})
}

func addTodo(args string, tasks *tasklist.List) string {
	if tasks.Full() {
		return MsgCapacity
	}
	if blank(args) {
		return UsageTodo
	}
	return runAdd(task.NewTodo(args), tasks)
}

func addDeadline(args string, tasks *tasklist.List) string {
	name, by, ok := strings.Cut(args, bySeparator)
	if !ok {
		return UsageDeadline
	}
	if tasks.Full() {
		return MsgCapacity
	}
	if blank(name) {
		return UsageDeadline
	}
	return runAdd(task.NewDeadline(name, by), tasks)
}

func addEvent(args string, tasks *tasklist.List) string {
	name, at, ok := strings.Cut(args, atSeparator)
	if !ok {
		return UsageEvent
	}
	if tasks.Full() {
		return MsgCapacity
	}
	if blank(name) {
		return UsageEvent
	}
	return runAdd(task.NewEvent(name, at), tasks)
}

// runAdd is the shared tail of todo, deadline and event.
func runAdd(t task.Task, tasks *tasklist.List) string {
	if err := tasks.Add(t); err != nil {
		return MsgCapacity
	}
	return MsgTaskAdded + "\n" +
		taskIndent + t.String() + "\n" +
		fmt.Sprintf(MsgTaskCount, tasks.Size())
}

// blank reports whether a required free-text field is missing.
func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
