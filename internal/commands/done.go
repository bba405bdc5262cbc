package commands

import (
	"fmt"

	"taskmate/internal/tasklist"
)

func init() {
	Register(Command{
		Name:     "done",
		Synopsis: "Mark a task completed",
		Usage:    "done <num>",
		Handler:  completeTask,
	})
}

func completeTask(args string, tasks *tasklist.List) string {
	n, err := resolveTaskRef(args, tasks)
	if err != nil {
		return refMessage(err, UsageDone, tasks)
	}

	t := tasks.Get(n - 1)
	if t.IsComplete() {
		return fmt.Sprintf(MsgAlreadyDone, t.Name())
	}
	if err := tasks.MarkComplete(n); err != nil {
		return fmt.Sprintf(MsgOutOfBounds, tasks.Size())
	}
	return MsgTaskDone + "\n" + taskIndent + t.String()
}
