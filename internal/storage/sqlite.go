package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const sqliteFileName = "tickdo.sqlite"

// SQLiteStore keeps the blob in a key/value ItemTable inside a local
// sqlite database, keyed by Namespace. Useful when several tools share
// one data file and partial writes must not be observable.
type SQLiteStore struct {
	Dir string
}

func NewSQLiteStore(dir string) SQLiteStore {
	return SQLiteStore{Dir: dir}
}

func (s SQLiteStore) path() string {
	return filepath.Join(s.Dir, sqliteFileName)
}

func (s SQLiteStore) open() (*sql.DB, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", s.Dir, err)
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.path())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path(), err)
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness with concurrent local tools.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("pragma: %w", err)
		}
	}
	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS ItemTable (key TEXT PRIMARY KEY, value BLOB)"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure ItemTable: %w", err)
	}
	return db, nil
}

func (s SQLiteStore) Read() (string, bool, error) {
	if _, err := os.Stat(s.path()); errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	db, err := s.open()
	if err != nil {
		return "", false, err
	}
	defer db.Close()

	var raw []byte
	err = db.QueryRow("SELECT value FROM ItemTable WHERE key = ?", Namespace).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select %s: %w", Namespace, err)
	}
	return string(raw), true, nil
}

func (s SQLiteStore) Write(raw string) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(
		"INSERT INTO ItemTable(key, value) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET value=excluded.value",
		Namespace, []byte(raw),
	)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", Namespace, err)
	}
	return nil
}
