package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// sqliteBackend stores each document as one row of the documents table.
type sqliteBackend struct {
	conn *sqlx.DB
}

// OpenSQLite opens or creates a SQLite database at path holding the documents.
func OpenSQLite(path string) (*Documents, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	conn.SetMaxOpenConns(1)

	b := &sqliteBackend{conn: conn}
	if err := b.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Documents{b: b}, nil
}

func (s *sqliteBackend) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		name TEXT PRIMARY KEY,
		body TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.conn.Exec(schema)
	return err
}

func (s *sqliteBackend) read(name string) ([]byte, error) {
	var body string
	err := s.conn.Get(&body, "SELECT body FROM documents WHERE name = ?", name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(body), nil
}

func (s *sqliteBackend) write(name string, body []byte) error {
	_, err := s.conn.Exec(
		"INSERT OR REPLACE INTO documents (name, body, updated_at) VALUES (?, ?, ?)",
		name, string(body), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func (s *sqliteBackend) close() error {
	return s.conn.Close()
}
