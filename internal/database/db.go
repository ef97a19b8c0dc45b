package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// schemaVersion is bumped whenever migrate gains a step.
const schemaVersion = 2

// Database wraps the sqlite connection holding the configuration store.
type Database struct {
	DB *sql.DB
}

// Open connects to the sqlite file at path and brings its schema up to date.
func Open(ctx context.Context, path string) (*Database, error) {
	conn, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, &OpError{Op: "open", Resource: "database", Key: path, Err: err}
	}
	// sqlite serializes writers; one connection keeps settings writes ordered.
	conn.SetMaxOpenConns(1)
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, &OpError{Op: "ping", Resource: "database", Key: path, Err: err}
	}
	d := &Database{DB: conn}
	if err := d.createTables(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := d.migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the connection.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return &OpError{Op: "create", Resource: "schema", Err: fmt.Errorf("%w: %s", err, query)}
		}
	}
	return nil
}

// migrate applies every step newer than the stored schema version.
func (d *Database) migrate(ctx context.Context) error {
	version, err := d.SchemaVersion(ctx)
	if err != nil {
		return err
	}
	steps := map[int][]string{
		// Older stores kept sound/enabled and sound/device apart; fold them into sound/mode.
		2: {
			`INSERT INTO settings (key, value)
				SELECT 'sound/mode', CASE
					WHEN (SELECT value FROM settings WHERE key = 'sound/enabled') IN ('0', 'false') THEN 'none'
					WHEN (SELECT value FROM settings WHERE key = 'sound/device') = 'speaker' THEN 'speaker'
					ELSE 'soundcard'
				END
				WHERE EXISTS (SELECT 1 FROM settings WHERE key = 'sound/enabled')
				ON CONFLICT(key) DO NOTHING`,
			`DELETE FROM settings WHERE key IN ('sound/enabled', 'sound/device')`,
		},
	}
	for v := version + 1; v <= schemaVersion; v++ {
		err := d.WithTx(ctx, func(tx *sql.Tx) error {
			for _, stmt := range steps[v] {
				if _, err := tx.ExecContext(ctx, stmt); err != nil {
					return err
				}
			}
			_, err := tx.ExecContext(ctx, `INSERT INTO meta (key, value) VALUES ('schema_version', ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value`, v)
			return err
		})
		if err != nil {
			return &OpError{Op: "migrate", Resource: "schema", Key: fmt.Sprintf("v%d", v), Err: err}
		}
	}
	return nil
}

// WithTx runs fn in a transaction, committing only if fn succeeds.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	commit := false
	defer func() {
		if !commit {
			_ = tx.Rollback()
		}
	}()
	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	commit = true
	return nil
}

// SchemaVersion reports the applied schema version, 0 for a new file.
func (d *Database) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = 'schema_version'").Scan(&v)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, &OpError{Op: "read", Resource: "schema", Err: err}
	}
	return v, nil
}
