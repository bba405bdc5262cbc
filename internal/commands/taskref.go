package commands

import (
	"errors"
	"fmt"
	"strconv"

	"taskmate/internal/tasklist"
)

var (
	// errNotANumber indicates the task reference did not parse as an integer.
	errNotANumber = errors.New("task reference is not a number")

	// errNoTasks indicates there is nothing to refer to.
	errNoTasks = errors.New("no tasks")

	// errOutOfBounds indicates the reference is outside [1, size].
	errOutOfBounds = errors.New("task reference out of range")
)

// resolveTaskRef parses a 1-based task reference against tasks.
// Checks run in a fixed order: number syntax, empty list, bounds.
func resolveTaskRef(args string, tasks *tasklist.List) (int, error) {
	n, err := strconv.Atoi(args)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errNotANumber, args)
	}
	if tasks.Size() == 0 {
		return 0, errNoTasks
	}
	if n < 1 || n > tasks.Size() {
		return 0, fmt.Errorf("%w: %d", errOutOfBounds, n)
	}
	return n, nil
}

// refMessage maps a resolveTaskRef error to the message shown to the user.
func refMessage(err error, usage string, tasks *tasklist.List) string {
	switch {
	case errors.Is(err, errNotANumber):
		return usage
	case errors.Is(err, errNoTasks):
		return MsgNoTasks
	default:
		return fmt.Sprintf(MsgOutOfBounds, tasks.Size())
	}
}
