// Package cli parses the command line and wires the interactive session.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"taskmate/internal/commands"
	"taskmate/internal/config"
	"taskmate/internal/exitcode"
	"taskmate/internal/shell"
	"taskmate/internal/storage"
	"taskmate/internal/tasklist"
)

// Version is the application version. Set at build time.
var Version = "0.1.0"

const usageText = `Usage:
  taskmate [--config <dir>] [--quiet] [--debug] [--memory]
  taskmate --version

Flags:
  --config <dir>   Override config directory
  --quiet          Skip the greeting and farewell
  --debug          Print debug logs to stderr
  --memory         Start empty and do not load or save tasks
  --version        Print version

Type "help" at the prompt for the list of commands.
`

// ReaderFactory creates the input source for a session.
type ReaderFactory func(cfg *config.Config) shell.LineReader

// StoreFactory opens the task store. A nil Store disables persistence.
type StoreFactory func(ctx context.Context, cfg *config.Config) (storage.Store, error)

// Runner handles command-line parsing and runs a session.
type Runner struct {
	registry *commands.Registry
	readers  ReaderFactory
	stores   StoreFactory
}

// NewRunner creates a runner with the given registry and factories.
func NewRunner(registry *commands.Registry, readers ReaderFactory, stores StoreFactory) *Runner {
	return &Runner{
		registry: registry,
		readers:  readers,
		stores:   stores,
	}
}

// TerminalReaders returns a ReaderFactory reading from in: with line editing
// when in is a terminal, plain lines otherwise.
func TerminalReaders(in *os.File) ReaderFactory {
	return func(cfg *config.Config) shell.LineReader {
		if !shell.Interactive(in) {
			return shell.NewPlainReader(in)
		}
		history := ""
		if cfg.Settings.History {
			if err := cfg.EnsureDir(); err != nil {
				log.WithField("cause", err).Warn("Could not create config dir, history disabled")
			} else {
				history = cfg.HistoryPath()
			}
		}
		return shell.NewLinerReader(history)
	}
}

// OpenStore is the default StoreFactory.
func OpenStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	if cfg.Settings.Storage.Driver == config.DriverSQLite && cfg.Settings.Storage.DSN == "" {
		if err := cfg.EnsureDir(); err != nil {
			return nil, fmt.Errorf("failed to create config dir: %w", err)
		}
	}
	return storage.Open(ctx, cfg.Settings.Storage.Driver, cfg.StorageDSN())
}

// Run parses arguments, runs a session and returns the exit code.
func (r *Runner) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	var configDir string
	var quiet, debug, memory, version bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")
	fs.BoolVar(&memory, "memory", false, "")
	fs.BoolVar(&version, "version", false, "")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(out, usageText)
			return exitcode.Success
		}
		fmt.Fprintf(errOut, "error: %s\n", flagErrorMessage(err))
		return exitcode.UserError
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", fs.Arg(0))
		return exitcode.UserError
	}

	if version {
		fmt.Fprintf(out, "%s %s\n", config.AppName, Version)
		return exitcode.Success
	}

	log.SetOutput(errOut)
	if debug {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.ConfigError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug
	log.SetLevel(cfg.Level())
	if wrote, err := cfg.InitFile(); err != nil {
		log.WithField("cause", err).Warn("Could not write default config")
	} else if wrote {
		log.WithField("path", cfg.ConfigPath()).Debug("Wrote default config")
	}
	log.WithFields(log.Fields{
		"dir":      cfg.Dir,
		"capacity": cfg.Settings.Capacity,
		"driver":   cfg.Settings.Storage.Driver,
	}).Debug("Loaded config")

	tasks := tasklist.New(cfg.Settings.Capacity)

	var store storage.Store
	if !memory && r.stores != nil {
		store, err = r.stores(ctx, cfg)
		if err != nil {
			fmt.Fprintf(errOut, "error: storage error: %s\n", err)
			return exitcode.StorageError
		}
	}
	if store != nil {
		defer func() {
			if err := store.Close(); err != nil {
				log.WithField("cause", err).Warn("Could not close task store")
			}
		}()
		if err := storage.Restore(ctx, store, tasks); err != nil {
			fmt.Fprintf(errOut, "error: storage error: %s\n", err)
			return exitcode.StorageError
		}
	}

	reader := r.readers(cfg)
	defer reader.Close()

	session := &shell.Session{
		Reader:      reader,
		Out:         out,
		Interpreter: commands.NewInterpreter(r.registry),
		Tasks:       tasks,
		Store:       store,
		Quiet:       cfg.Quiet,
		Prompt:      shell.DefaultPrompt,
	}
	if err := session.Run(ctx); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.InputError
	}
	return exitcode.Success
}

// flagErrorMessage rewrites flag package errors into the CLI's wording.
func flagErrorMessage(err error) string {
	errStr := err.Error()

	// Check for missing flag value
	if strings.Contains(errStr, "flag needs an argument") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		return "flag needs an argument: " + flagName
	}

	// Check for unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		return "unknown flag: " + strings.TrimPrefix(errStr, "flag provided but not defined: ")
	}

	return errStr
}
