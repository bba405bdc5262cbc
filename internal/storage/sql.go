package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/go-sql-driver/mysql"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"taskmate/internal/config"
	"taskmate/internal/task"
)

// OpTimeout bounds every database round trip.
const OpTimeout = 5 * time.Second

const schema = `CREATE TABLE IF NOT EXISTS tasks (
    position INTEGER NOT NULL,
    id VARCHAR(36) NOT NULL PRIMARY KEY,
    kind VARCHAR(16) NOT NULL,
    name TEXT NOT NULL,
    detail TEXT NOT NULL,
    complete BOOLEAN NOT NULL
)`

// SQLStore keeps tasks in a single table of a database/sql database.
type SQLStore struct {
	db *sql.DB
}

// Open connects to the store selected by driver. For config.DriverNone it
// returns a nil Store and no error.
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	var (
		s   *SQLStore
		err error
	)
	switch driver {
	case config.DriverNone:
		return nil, nil
	case config.DriverSQLite:
		s, err = openSQLite(ctx, dsn)
	case config.DriverMySQL:
		s, err = openMySQL(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", driver)
	}
	if err != nil {
		return nil, err
	}
	if err := s.migrate(ctx); err != nil {
		s.Close()
		return nil, err
	}
	log.WithField("driver", driver).Debug("Opened task store")
	return s, nil
}

func openSQLite(ctx context.Context, path string) (*SQLStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(ctx, OpTimeout)
	defer cancel()
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set pragma: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func openMySQL(ctx context.Context, dsn string) (*SQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, OpTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) migrate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, OpTimeout)
	defer cancel()
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Load implements Store.
func (s *SQLStore) Load(ctx context.Context) ([]task.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, OpTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, kind, name, detail, complete FROM tasks ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var (
			id, kind, name, detail string
			complete               bool
		)
		if err := rows.Scan(&id, &kind, &name, &detail, &complete); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		t, err := task.Restore(task.Kind(kind), id, name, detail, complete)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}
	return tasks, nil
}

// Save implements Store. The table is rewritten in one transaction.
func (s *SQLStore) Save(ctx context.Context, tasks []task.Task) error {
	ctx, cancel := context.WithTimeout(ctx, OpTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM tasks"); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO tasks (position, id, kind, name, detail, complete) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range tasks {
		if _, err := stmt.ExecContext(ctx, i, t.ID(), string(t.Kind()), t.Name(), t.Detail(), t.IsComplete()); err != nil {
			return fmt.Errorf("failed to insert task %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLStore) Close() error {
	return s.db.Close()
}
