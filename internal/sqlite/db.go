// Package sqlite persists the dashboard state: write-through snapshots
// of the entity collections and the append-only audit log. The in-memory
// store stays the source of truth; this survives restarts.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite handle.
type DB struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
// Use ":memory:" for tests.
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// The driver is single-writer; one connection avoids SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)
	db := &DB{db: sqlDB}
	if err := db.migrate(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the handle.
func (db *DB) Close() error { return db.db.Close() }

// migrations returns the schema statements. Each string is a single SQL
// statement (SQLite executes one at a time).
func migrations() []string {
	return []string{
		// One JSON snapshot per collection, replaced on every write.
		`CREATE TABLE IF NOT EXISTS snapshots (
			collection TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,

		// Append-only audit trail.
		`CREATE TABLE IF NOT EXISTS audit_events (
			id      TEXT PRIMARY KEY,
			ts      TEXT NOT NULL,
			user    TEXT NOT NULL,
			action  TEXT NOT NULL,
			details TEXT NOT NULL,
			risk    TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_audit_ts ON audit_events(ts)`,
	}
}

func (db *DB) migrate() error {
	for _, stmt := range migrations() {
		if _, err := db.db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// SaveSnapshot stores the serialized collection, replacing any previous
// version.
func (db *DB) SaveSnapshot(collection string, payload []byte) error {
	_, err := db.db.Exec(`
		INSERT INTO snapshots (collection, payload, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(collection) DO UPDATE SET
			payload    = excluded.payload,
			updated_at = datetime('now')
	`, collection, string(payload))
	return err
}

// LoadSnapshot returns the stored payload, or ok=false when the
// collection was never saved.
func (db *DB) LoadSnapshot(collection string) (payload []byte, ok bool, err error) {
	var s string
	err = db.db.QueryRow(`SELECT payload FROM snapshots WHERE collection = ?`, collection).Scan(&s)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(s), true, nil
}
