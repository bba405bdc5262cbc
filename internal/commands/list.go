package commands

import "taskmate/internal/tasklist"

func init() {
	Register(Command{
		Name:     "list",
		Synopsis: "List all tasks",
		Usage:    "list",
		Handler:  listTasks,
	})
	Register(Command{
		Name:     "find",
		Synopsis: "List tasks whose name contains a query",
		Usage:    "find <query>",
		Handler:  findTasks,
	})
}

func listTasks(_ string, tasks *tasklist.List) string {
	if tasks.Size() == 0 {
		return MsgNoTasks
	}
	all := tasks.All()
	nums := make([]int, len(all))
	for i := range all {
		nums[i] = i + 1
	}
	return tasklist.Listing(MsgListHeader, nums, all)
}

func findTasks(args string, tasks *tasklist.List) string {
	if tasks.Size() == 0 {
		return MsgNoTasks
	}
	if args == "" {
		return UsageFind
	}
	matches := tasks.Matches(args)
	if matches == "" {
		return MsgNoMatches
	}
	return matches
}
