package commands

import (
	"fmt"
	"strings"
)

// sessionCommands are handled by the shell rather than the interpreter but
// still belong in the help text.
var sessionCommands = []Command{
	{Name: "help", Synopsis: "Print usage", Usage: "help"},
	{Name: "bye", Synopsis: "Exit", Usage: "bye"},
}

// HelpText renders a usage summary for cmds followed by the session
// commands, with the usage column padded to the widest entry.
func HelpText(cmds []Command) string {
	all := append(append([]Command(nil), cmds...), sessionCommands...)

	width := 0
	for _, c := range all {
		width = max(width, len(c.Usage))
	}

	var b strings.Builder
	b.WriteString("Usage:")
	for _, c := range all {
		fmt.Fprintf(&b, "\n  %-*s  %s", width, c.Usage, c.Synopsis)
	}
	return b.String()
}
