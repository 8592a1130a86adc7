package audit

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const createAuditTable = `
CREATE TABLE IF NOT EXISTS audit_entries (
	id             TEXT PRIMARY KEY,
	actor          TEXT NOT NULL,
	action         TEXT NOT NULL,
	table_name     TEXT NOT NULL,
	record_id      TEXT NOT NULL,
	before_state   TEXT,
	after_state    TEXT,
	origin_address TEXT,
	origin_client  TEXT,
	recorded_at    TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_audit_entries_record
	ON audit_entries (table_name, record_id);
CREATE INDEX IF NOT EXISTS idx_audit_entries_actor
	ON audit_entries (actor);
`

// SQLiteStore persists audit records in a SQLite table. The store only ever
// issues INSERTs; retention and archival belong to operations tooling, not
// to this package.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an existing database handle, creating the audit table
// if it does not exist yet.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if _, err := db.Exec(createAuditTable); err != nil {
		return nil, fmt.Errorf("creating audit schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// OpenSQLiteStore opens (or creates) the database file at path and prepares
// the audit schema.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening audit database: %w", err)
	}
	store, err := NewSQLiteStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Append(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_entries (
			id, actor, action, table_name, record_id,
			before_state, after_state, origin_address, origin_client, recorded_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(),
		rec.Actor,
		string(rec.Action),
		rec.Table,
		rec.RecordID,
		nullableJSON(rec.Before),
		nullableJSON(rec.After),
		nullableString(rec.OriginAddress),
		nullableString(rec.OriginClient),
		rec.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting audit entry: %w", err)
	}
	return nil
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func nullableJSON(raw []byte) any {
	if raw == nil {
		return nil
	}
	return string(raw)
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
