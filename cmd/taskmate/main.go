// Package main is the entry point for the taskmate CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"taskmate/internal/cli"
	"taskmate/internal/commands"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		// A second signal gets the default behaviour and kills the process.
		signal.Stop(sigChan)
		cancel()
	}()

	runner := cli.NewRunner(commands.DefaultRegistry, cli.TerminalReaders(os.Stdin), cli.OpenStore)

	code := runner.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
