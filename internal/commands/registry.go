package commands

import (
	"fmt"
	"sort"
)

// Registry maps keywords to commands. It is filled once, before the first
// Execute, and only read afterwards.
type Registry struct {
	cmds map[string]Command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Returns an error if the name is already registered or the command has no
// handler.
func (r *Registry) Register(c Command) error {
	if c.Handler == nil {
		return fmt.Errorf("command has no handler: %s", c.Name)
	}
	if _, exists := r.cmds[c.Name]; exists {
		return fmt.Errorf("command already registered: %s", c.Name)
	}
	r.cmds[c.Name] = c
	return nil
}

// Find looks up a command by keyword.
func (r *Registry) Find(name string) (Command, bool) {
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// All returns all commands sorted by name.
func (r *Registry) All() []Command {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]Command, len(names))
	for i, name := range names {
		result[i] = r.cmds[name]
	}
	return result
}

// DefaultRegistry holds the built-in commands.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
