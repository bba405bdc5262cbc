package commands

// Response templates. Tests compare against these strings exactly.
const (
	MsgListHeader    = "Here are the tasks in your list:"
	MsgTaskAdded     = "Got it. I've added this task:"
	MsgTaskDone      = "Nice! I've marked this task as done:"
	MsgTaskDeleted   = "Noted. I've removed this task:"
	MsgTaskCount     = "Now you have %d tasks in the list."
	MsgOutOfBounds   = "Please enter a number between 1 and %d!"
	MsgAlreadyDone   = "Task %s is already complete!"
	MsgNotRecognized = "Sorry, I do not recognize that command."
	MsgNoTasks       = "No tasks available!"
	MsgCapacity      = "Sorry! You have reached maximum Task capacity."
	MsgNoMatches     = "No tasks match given query."

	UsageTodo     = "Error in command usage. Usage: todo <name>"
	UsageDeadline = "Error in command usage. Usage: deadline <name> /by <date>"
	UsageEvent    = "Error in command usage. Usage: event <name> /at <time>"
	UsageDone     = "Please provide a valid number! Usage: done <num>"
	UsageDelete   = "Please provide a valid number! Usage: delete <num>"
	UsageFind     = "Please provide a query! Usage: find <query>"
)

// taskIndent precedes a task rendering inside a response.
const taskIndent = "   "
