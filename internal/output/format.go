// Package output frames interpreter responses for the terminal.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	// Border is the line drawn above and below every response.
	Border = "---------------------------------------------------"

	// Indent prefixes every framed line.
	Indent = "\t"
)

var borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

// SetPlain disables colour in framed output regardless of the terminal.
func SetPlain() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Frame writes msg between two borders, each line prefixed with a tab.
func Frame(w io.Writer, msg string) {
	border := borderStyle.Render(Border)
	fmt.Fprintf(w, "%s%s\n", Indent, border)
	for _, line := range strings.Split(normalizeNewlines(msg), "\n") {
		fmt.Fprintf(w, "%s%s\n", Indent, line)
	}
	fmt.Fprintf(w, "%s%s\n", Indent, border)
}

// normalizeNewlines turns CRLF and lone CR into LF so framing stays aligned.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
