package tasklist

import (
	"fmt"
	"io"
	"strings"

	"taskmate/internal/task"
)

// FormatTask writes a numbered task line.
// Format: "{N}.{RENDERING}" (no padding, no trailing newline)
func FormatTask(w io.Writer, num int, t task.Task) {
	fmt.Fprintf(w, "%d.%s", num, t)
}

// Listing renders header followed by one numbered line per task.
// nums[i] is the number shown for tasks[i].
func Listing(header string, nums []int, tasks []task.Task) string {
	var b strings.Builder
	b.WriteString(header)
	for i, t := range tasks {
		b.WriteByte('\n')
		FormatTask(&b, nums[i], t)
	}
	return b.String()
}
