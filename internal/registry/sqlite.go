// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteBackend stores registry state in an embedded SQLite database, for
// deployments where several tools share one identifier pool on a common
// filesystem. The document is still read whole and written whole; the write
// is a single transaction.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend opens or creates the database at path and ensures the
// schema exists.
func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening registry database: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS identifiers (
		kind  TEXT NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (kind, value)
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating registry schema: %w", err)
	}

	return &SQLiteBackend{db: db}, nil
}

// Close releases the database connection.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

// Load reads every issued identifier.
func (b *SQLiteBackend) Load() (State, error) {
	rows, err := b.db.Query(`SELECT kind, value FROM identifiers`)
	if err != nil {
		return nil, fmt.Errorf("reading registry: %w", err)
	}
	defer rows.Close()

	state := State{}
	for rows.Next() {
		var kind, value string
		if err := rows.Scan(&kind, &value); err != nil {
			return nil, fmt.Errorf("scanning registry row: %w", err)
		}
		state[Kind(kind)] = append(state[Kind(kind)], value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading registry: %w", err)
	}
	return state, nil
}

// Save replaces the stored document inside one transaction.
func (b *SQLiteBackend) Save(state State) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning registry transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM identifiers`); err != nil {
		return fmt.Errorf("clearing registry: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO identifiers (kind, value) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing registry insert: %w", err)
	}
	defer stmt.Close()

	for kind, values := range state {
		for _, v := range values {
			if _, err := stmt.Exec(string(kind), v); err != nil {
				return fmt.Errorf("inserting identifier %s/%s: %w", kind, v, err)
			}
		}
	}

	return tx.Commit()
}
