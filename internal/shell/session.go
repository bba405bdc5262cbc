package shell

import (
	"context"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"taskmate/internal/commands"
	"taskmate/internal/output"
	"taskmate/internal/storage"
	"taskmate/internal/tasklist"
)

const (
	Greeting = "Hello! I'm Taskmate, what can I do for you?"
	Farewell = "Bye. Hope to see you again soon!"

	// DefaultPrompt is shown before each line on a terminal.
	DefaultPrompt = "> "

	exitCommand = "bye"
	helpCommand = "help"
)

// Session drives one conversation: read a line, execute it, print the
// framed response.
type Session struct {
	Reader      LineReader
	Out         io.Writer
	Interpreter *commands.Interpreter
	Tasks       *tasklist.List

	// Store persists the list after each command. Nil disables persistence.
	Store storage.Store

	// Quiet suppresses the greeting and farewell.
	Quiet bool

	Prompt string
}

// Run loops until "bye", end of input, Ctrl-C or ctx cancellation. A
// cancellation ends the session even while a read is blocked. It returns an
// error only when reading input fails.
func (s *Session) Run(ctx context.Context) error {
	if !s.Quiet {
		output.Frame(s.Out, Greeting)
	}

	for {
		if ctx.Err() != nil {
			return s.cancelled(ctx)
		}

		line, err := s.readLine(ctx)
		if ctx.Err() != nil {
			return s.cancelled(ctx)
		}
		if errors.Is(err, io.EOF) || errors.Is(err, ErrAborted) {
			log.WithField("cause", err).Debug("Input ended")
			s.save(ctx)
			return nil
		}
		if err != nil {
			s.save(ctx)
			return fmt.Errorf("failed to read input: %w", err)
		}

		switch line {
		case exitCommand:
			if !s.Quiet {
				output.Frame(s.Out, Farewell)
			}
			return nil
		case helpCommand:
			output.Frame(s.Out, commands.HelpText(s.Interpreter.Commands()))
			continue
		}

		keyword := s.Interpreter.Keyword(line)
		log.WithFields(log.Fields{
			"command": keyword,
			"tasks":   s.Tasks.Size(),
		}).Debug("Executing")

		output.Frame(s.Out, s.Interpreter.Execute(line, s.Tasks))
		if keyword != "" {
			s.save(ctx)
		}
	}
}

// cancelled saves the list past ctx's cancellation and ends the session.
func (s *Session) cancelled(ctx context.Context) error {
	log.WithField("cause", ctx.Err()).Debug("Session cancelled")
	s.save(context.WithoutCancel(ctx))
	return nil
}

type readResult struct {
	line string
	err  error
}

// readLine waits for the next line or for ctx to end, whichever comes
// first. On cancellation the pending ReadLine is abandoned.
func (s *Session) readLine(ctx context.Context) (string, error) {
	ch := make(chan readResult, 1)
	go func() {
		line, err := s.Reader.ReadLine(s.Prompt)
		ch <- readResult{line: line, err: err}
	}()
	select {
	case r := <-ch:
		return r.line, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// save writes the list to the store, logging failures.
func (s *Session) save(ctx context.Context) {
	if s.Store == nil {
		return
	}
	if err := s.Store.Save(ctx, s.Tasks.All()); err != nil {
		log.WithField("cause", err).Warn("Could not save tasks")
	}
}
