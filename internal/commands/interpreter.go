package commands

import (
	"strings"

	"taskmate/internal/tasklist"
)

// Interpreter turns input lines into task list operations.
// It keeps no state between calls.
type Interpreter struct {
	registry *Registry
}

// NewInterpreter creates an interpreter dispatching through registry.
func NewInterpreter(registry *Registry) *Interpreter {
	return &Interpreter{registry: registry}
}

// Execute runs input against tasks and returns the message to display.
// Failures are reported in the returned message; tasks is left unchanged
// when a command is rejected.
func (in *Interpreter) Execute(input string, tasks *tasklist.List) string {
	name, args, _ := strings.Cut(input, " ")
	cmd, ok := in.registry.Find(name)
	if !ok {
		return MsgNotRecognized
	}
	return cmd.Handler(args, tasks)
}

// Keyword returns the command keyword of input, or "" if it is not one the
// interpreter knows.
func (in *Interpreter) Keyword(input string) string {
	name, _, _ := strings.Cut(input, " ")
	if _, ok := in.registry.Find(name); !ok {
		return ""
	}
	return name
}

// Commands returns the known commands sorted by keyword.
func (in *Interpreter) Commands() []Command {
	return in.registry.All()
}
