package commands

import (
	"fmt"

	"taskmate/internal/tasklist"
)

func init() {
	Register(Command{
		Name:     "delete",
		Synopsis: "Remove a task",
		Usage:    "delete <num>",
		Handler:  deleteTask,
	})
}

func deleteTask(args string, tasks *tasklist.List) string {
	n, err := resolveTaskRef(args, tasks)
	if err != nil {
		return refMessage(err, UsageDelete, tasks)
	}

	removed, err := tasks.Remove(n - 1)
	if err != nil {
		return fmt.Sprintf(MsgOutOfBounds, tasks.Size())
	}
	return MsgTaskDeleted + "\n" +
		taskIndent + removed.String() + "\n" +
		fmt.Sprintf(MsgTaskCount, tasks.Size())
}
