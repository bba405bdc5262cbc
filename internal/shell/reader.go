// Package shell runs the interactive read-execute-print loop around the
// command interpreter.
package shell

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// ErrAborted is returned by ReadLine when the user presses Ctrl-C.
var ErrAborted = errors.New("input aborted")

// LineReader supplies input lines. ReadLine returns io.EOF at end of input.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// Interactive reports whether f is a terminal.
func Interactive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// LinerReader reads from the terminal with line editing and history.
type LinerReader struct {
	line        *liner.State
	historyFile string
}

// NewLinerReader creates a terminal reader. History is loaded from and saved
// to historyFile; an empty path disables history persistence.
func NewLinerReader(historyFile string) *LinerReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	r := &LinerReader{line: line, historyFile: historyFile}
	r.loadHistory()
	return r
}

func (r *LinerReader) loadHistory() {
	if r.historyFile == "" {
		return
	}
	f, err := os.Open(r.historyFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.WithField("cause", err).Warn("Could not open history")
		}
		return
	}
	defer f.Close()
	if _, err := r.line.ReadHistory(f); err != nil {
		log.WithField("cause", err).Warn("Could not read history")
	}
}

// ReadLine implements LineReader. Non-blank lines are added to history.
func (r *LinerReader) ReadLine(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrAborted
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

// Close saves history and restores the terminal.
func (r *LinerReader) Close() error {
	if r.historyFile != "" {
		if f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err != nil {
			log.WithField("cause", err).Warn("Could not save history")
		} else {
			if _, err := r.line.WriteHistory(f); err != nil {
				log.WithField("cause", err).Warn("Could not write history")
			}
			f.Close()
		}
	}
	return r.line.Close()
}

// PlainReader reads newline-terminated lines from a non-terminal input
// such as a pipe. It never prints the prompt. Lines have no length limit.
type PlainReader struct {
	in *bufio.Reader
}

// NewPlainReader creates a reader over in.
func NewPlainReader(in io.Reader) *PlainReader {
	return &PlainReader{in: bufio.NewReader(in)}
}

// ReadLine implements LineReader. The line terminator, LF or CRLF, is
// dropped. A final line without a terminator is still returned.
func (r *PlainReader) ReadLine(string) (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Close implements LineReader.
func (r *PlainReader) Close() error { return nil }
