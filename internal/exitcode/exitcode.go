// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates the session ended normally.
	Success = 0

	// UserError indicates bad command-line flags or arguments.
	UserError = 1

	// ConfigError indicates an unreadable or invalid config.toml.
	ConfigError = 2

	// StorageError indicates the task store could not be opened or loaded.
	StorageError = 3

	// InputError indicates reading the input stream failed.
	InputError = 4
)
