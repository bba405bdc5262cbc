// Package commands provides the command interpreter and its handlers.
package commands

import "taskmate/internal/tasklist"

// HandlerFunc executes a command against tasks.
// args is everything after the first space of the input line, verbatim.
// The returned string is shown to the user, success or failure alike.
type HandlerFunc func(args string, tasks *tasklist.List) string

// Command describes one keyword the interpreter understands.
type Command struct {
	// Name is the keyword, e.g. "todo".
	Name string

	// Synopsis is a short description for help output.
	Synopsis string

	// Usage is the syntax shown in help output.
	Usage string

	// Handler runs the command.
	Handler HandlerFunc
}
