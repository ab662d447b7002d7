// SPDX-License-Identifier: MIT

// Package sqlite persists the airport catalogue in a SQLite database so a
// restarted server can rebuild its network without the source file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/airroute/core"
)

// Store implements catalogue persistence using SQLite
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and migrates its schema.
// ":memory:" gives a private in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dbPath == ":memory:" {
		// Every pooled connection would otherwise see its own empty database.
		db.SetMaxOpenConns(1)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

func dsn(path string) string {
	if path == ":memory:" {
		return path
	}

	return "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS airports (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		display_name TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		latitude REAL NOT NULL,
		longitude REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS metadata (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_airports_position ON airports(position);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveNodes replaces the stored catalogue with nodes, keeping their order.
func (s *Store) SaveNodes(ctx context.Context, nodes []core.Node) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM airports`); err != nil {
		return fmt.Errorf("failed to clear airports: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO airports (id, position, display_name, location, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, n := range nodes {
		if _, err := stmt.ExecContext(ctx, n.ID, i, n.DisplayName, n.Location, n.Latitude, n.Longitude); err != nil {
			return fmt.Errorf("failed to insert airport %q: %w", n.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO metadata (key, value, updated_at) VALUES ('catalog_saved_at', ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return tx.Commit()
}

// Nodes loads the stored catalogue in saved order.
func (s *Store) Nodes(ctx context.Context) ([]core.Node, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, display_name, location, latitude, longitude
		FROM airports
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query airports: %w", err)
	}
	defer rows.Close()

	var nodes []core.Node
	for rows.Next() {
		var n core.Node
		if err := rows.Scan(&n.ID, &n.DisplayName, &n.Location, &n.Latitude, &n.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan airport: %w", err)
		}
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating airports: %w", err)
	}

	return nodes, nil
}

// SavedAt returns when SaveNodes last succeeded; ok is false if never.
func (s *Store) SavedAt(ctx context.Context) (t time.Time, ok bool, err error) {
	var v string
	err = s.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = 'catalog_saved_at'`).Scan(&v)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to query metadata: %w", err)
	}
	t, err = time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to parse saved_at: %w", err)
	}

	return t, true, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
