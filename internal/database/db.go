// Package database stores generated almanac days in SQLite.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	cerrors "cloudeng.io/errors"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// =============================================================================
// Almanac Store
// =============================================================================

// DB is the almanac store: a SQLite database holding one row per generated
// Gregorian day.
type DB struct {
	*sql.DB
	path   string
	logger *slog.Logger
}

// Config holds almanac store options.
type Config struct {
	Path            string        // SQLite file, or ":memory:"
	MaxOpenConns    int           // Maximum open connections (default: 1)
	MaxIdleConns    int           // Maximum idle connections (default: 1)
	ConnMaxLifetime time.Duration // Connection max lifetime (default: 1 hour)
	BusyTimeout     time.Duration // How long a writer waits on a locked file (default: 5s)
}

// DefaultConfig returns the settings used by the API server and the
// almanac exporter.
//
// Why these values?
//   - MaxOpenConns=1: SQLite allows one writer at a time, and an almanac
//     export writes thousands of rows in a single transaction. A second
//     connection would only see "database is locked".
//   - MaxOpenConns=1 also keeps ":memory:" databases alive: each new
//     connection to ":memory:" opens a fresh, empty database.
//   - BusyTimeout: the API keeps reading while cmd/almanac rewrites the
//     same file, so a brief lock is waited out rather than failed.
func DefaultConfig(path string) Config {
	return Config{
		Path:            path,
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		BusyTimeout:     5 * time.Second,
	}
}

// dsn builds the connection string with the SQLite pragmas the store needs:
//
//	_journal_mode=WAL: readers are not blocked while an export writes
//	_foreign_keys=ON:  enforce referential integrity
//	_busy_timeout:     wait this many milliseconds on a locked database
func (c Config) dsn() string {
	return fmt.Sprintf("%s?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=%d",
		c.Path, c.BusyTimeout.Milliseconds())
}

// Open connects to the almanac store at cfg.Path, creating the file and its
// directory when they do not exist. Call Migrate before reading or writing
// days.
//
// The caller is responsible for calling Close() when done.
func Open(cfg Config, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	// A fresh checkout has no data/ directory yet.
	if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create almanac directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite3", cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("open almanac %s: %w", cfg.Path, err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	db := &DB{DB: sqlDB, path: cfg.Path, logger: logger}

	// Verify connection and report which journal mode SQLite settled on;
	// in-memory databases cannot use WAL and fall back to "memory".
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var journal string
	if err := db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journal); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("connect to almanac %s: %w", cfg.Path, err)
	}

	logger.Info("almanac store opened",
		slog.String("path", cfg.Path),
		slog.String("journal_mode", journal),
	)
	return db, nil
}

// Close closes the almanac store.
func (db *DB) Close() error {
	db.logger.Info("closing almanac store", slog.String("path", db.path))
	return db.DB.Close()
}

// Health reports whether the almanac store is reachable and fully migrated.
func (db *DB) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	version, err := db.SchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("almanac unreachable: %w", err)
	}
	if want := LatestSchemaVersion(); version != want {
		return fmt.Errorf("almanac schema at version %d, want %d", version, want)
	}
	return nil
}

// =============================================================================
// Migrations
// =============================================================================

const createSchemaMigrations = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`

// SchemaVersion returns the highest migration version applied to the
// almanac, or 0 for a database Migrate has never touched.
func (db *DB) SchemaVersion(ctx context.Context) (int, error) {
	if _, err := db.ExecContext(ctx, createSchemaMigrations); err != nil {
		return 0, fmt.Errorf("create schema_migrations table: %w", err)
	}
	var version int
	err := db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(version), 0) FROM schema_migrations",
	).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

// Migrate brings the almanac schema up to LatestSchemaVersion, applying every
// missing step in one transaction so a failed step leaves the schema where
// it was. It returns the number of steps applied.
func (db *DB) Migrate(ctx context.Context) (int, error) {
	from, err := db.SchemaVersion(ctx)
	if err != nil {
		return 0, err
	}

	var applied []string
	err = db.WithTx(ctx, func(tx *sql.Tx) error {
		for _, m := range migrations {
			if m.version <= from {
				continue
			}
			db.logger.Info("applying almanac migration",
				slog.Int("version", m.version),
				slog.String("name", m.name),
			)
			if _, err := tx.ExecContext(ctx, m.sql); err != nil {
				return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
			}
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO schema_migrations (version, name) VALUES (?, ?)",
				m.version, m.name,
			); err != nil {
				return fmt.Errorf("record migration %d: %w", m.version, err)
			}
			applied = append(applied, m.name)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	stats, err := db.Stats(ctx)
	if err != nil {
		return len(applied), err
	}
	db.logger.Info("almanac schema ready",
		slog.Int("from_version", from),
		slog.Int("version", LatestSchemaVersion()),
		slog.Int("applied", len(applied)),
		slog.Int("days", stats.Days),
	)
	return len(applied), nil
}

// =============================================================================
// Transactions
// =============================================================================

// WithTx runs fn inside a transaction, committing when fn returns nil and
// rolling back otherwise. A failed rollback is reported together with the
// error that caused it.
//
// Example:
//
//	err := db.WithTx(ctx, func(tx *sql.Tx) error {
//	    _, err := tx.ExecContext(ctx, "DELETE FROM almanac_days")
//	    return err
//	})
func (db *DB) WithTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			errs := cerrors.M{}
			errs.Append(err, fmt.Errorf("rollback: %w", rbErr))
			return errs.Err()
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// =============================================================================
// Error Types
// =============================================================================

// ErrNotFound is returned when no almanac row exists for a date.
var ErrNotFound = errors.New("record not found")

// ErrInvalidDay is returned, wrapped, for almanac rows that fail Validate.
var ErrInvalidDay = errors.New("invalid almanac day")

// IsNotFound checks if an error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, sql.ErrNoRows)
}
