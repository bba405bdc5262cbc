// Package config handles the XDG configuration directory, its file paths and
// the optional config.toml settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

const (
	// AppName is the application directory name.
	AppName = "taskmate"

	// ConfigFile is the settings filename.
	ConfigFile = "config.toml"

	// HistoryFile stores line-editing history.
	HistoryFile = "history"

	// DatabaseFile is the default sqlite database filename.
	DatabaseFile = "tasks.db"
)

// Storage drivers.
const (
	DriverNone   = "none"
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// ErrInvalid is wrapped by Validate errors.
var ErrInvalid = errors.New("invalid config")

// Settings are the values read from config.toml.
type Settings struct {
	// Capacity is the maximum number of tasks in the list.
	Capacity int `toml:"capacity"`

	// LogLevel is a logrus level name.
	LogLevel string `toml:"log_level"`

	// History enables line-editing history in the config directory.
	History bool `toml:"history"`

	Storage StorageSettings `toml:"storage"`
}

// StorageSettings select where tasks are persisted between sessions.
type StorageSettings struct {
	// Driver is "sqlite", "mysql" or "none".
	Driver string `toml:"driver"`

	// DSN is a file path for sqlite or a data source name for mysql.
	// Empty means <dir>/tasks.db for sqlite.
	DSN string `toml:"dsn"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses the greeting and farewell.
	Quiet bool

	Settings Settings
}

// Default returns the settings used when config.toml is absent.
func Default() Settings {
	return Settings{
		Capacity: 100,
		LogLevel: "warn",
		History:  true,
		Storage: StorageSettings{
			Driver: DriverSQLite,
		},
	}
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/taskmate or
// $HOME/.config/taskmate. Settings are loaded from config.toml when the
// file exists, then environment overrides are applied and the result is
// validated.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir, Settings: Default()}

	if _, err := os.Stat(cfg.ConfigPath()); err == nil {
		if err := cfg.Load(); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat %s: %w", cfg.ConfigPath(), err)
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to config.toml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// HistoryPath returns the path to the line-editing history file.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.Dir, HistoryFile)
}

// DatabasePath returns the path of the default sqlite database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Dir, DatabaseFile)
}

// StorageDSN returns the data source for the configured driver.
func (c *Config) StorageDSN() string {
	if c.Settings.Storage.DSN == "" && c.Settings.Storage.Driver == DriverSQLite {
		return c.DatabasePath()
	}
	return c.Settings.Storage.DSN
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// Load decodes config.toml over the current settings. Keys missing from the
// file keep their current values.
func (c *Config) Load() error {
	md, err := toml.DecodeFile(c.ConfigPath(), &c.Settings)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", c.ConfigPath(), err)
	}
	for _, key := range md.Undecoded() {
		log.WithFields(log.Fields{
			"path": c.ConfigPath(),
			"key":  key.String(),
		}).Warn("Ignoring unknown config key")
	}
	return nil
}

// Save writes the current settings to config.toml with mode 0600.
func (c *Config) Save() error {
	if err := c.EnsureDir(); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	f, err := os.OpenFile(c.ConfigPath(), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", c.ConfigPath(), err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c.Settings); err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.ConfigPath(), err)
	}
	return nil
}

// InitFile writes the default settings to config.toml when the file does
// not exist yet, so users have a file to edit. It reports whether it wrote
// one. An existing file is never touched.
func (c *Config) InitFile() (bool, error) {
	if _, err := os.Stat(c.ConfigPath()); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to stat %s: %w", c.ConfigPath(), err)
	}
	defaults := &Config{Dir: c.Dir, Settings: Default()}
	if err := defaults.Save(); err != nil {
		return false, err
	}
	return true, nil
}

// ApplyEnvOverrides applies TASKMATE_* environment variables to the
// settings. Malformed numbers are logged and ignored.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("TASKMATE_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.WithFields(log.Fields{
				"value": v,
				"cause": err,
			}).Warn("Ignoring TASKMATE_CAPACITY")
		} else {
			c.Settings.Capacity = n
		}
	}
	if v := os.Getenv("TASKMATE_LOG_LEVEL"); v != "" {
		c.Settings.LogLevel = v
	}
	if v := os.Getenv("TASKMATE_STORAGE_DRIVER"); v != "" {
		c.Settings.Storage.Driver = v
	}
	if v := os.Getenv("TASKMATE_STORAGE_DSN"); v != "" {
		c.Settings.Storage.DSN = v
	}
}

// Validate checks the settings.
func (c *Config) Validate() error {
	s := c.Settings
	if s.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1, got %d", ErrInvalid, s.Capacity)
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	switch s.Storage.Driver {
	case DriverNone, DriverSQLite:
	case DriverMySQL:
		if s.Storage.DSN == "" {
			return fmt.Errorf("%w: storage.dsn is required for mysql", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalid, s.Storage.Driver)
	}
	return nil
}

// Level returns the configured log level, raised to debug by Debug.
func (c *Config) Level() log.Level {
	if c.Debug {
		return log.DebugLevel
	}
	lvl, err := log.ParseLevel(c.Settings.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}
