package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DatabaseFileName is the SQLite file inside the config directory.
const DatabaseFileName = "kegeltoday.db"

const createKVTable = `CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// SQLiteKV stores key/value pairs in a single SQLite table.
type SQLiteKV struct {
	path string
	db   *sql.DB
}

// OpenSQLiteKV opens or creates the database at path.
func OpenSQLiteKV(path string) (*SQLiteKV, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createKVTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &SQLiteKV{path: path, db: db}, nil
}

// Path returns the database file path.
func (store *SQLiteKV) Path() string {
	return store.path
}

// Get returns the value for key or ErrNotFound.
func (store *SQLiteKV) Get(key string) (string, error) {
	var value string
	err := store.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (store *SQLiteKV) Set(key, value string) error {
	_, err := store.db.Exec(
		"INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, datetime('now'))",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Close closes the database.
func (store *SQLiteKV) Close() error {
	if store.db == nil {
		return nil
	}
	return store.db.Close()
}
