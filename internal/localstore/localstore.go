// Package localstore is the device-local persistence layer. It keeps a
// single-table key-value store in a CGO-free SQLite file; only reminder
// settings and chat history live here — devotional records are
// remote-authoritative and never written locally.
package localstore

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// namespace prefixes every key so the file can be shared with future tools.
const namespace = "ramadhan-care"

// Store is an open local key-value store.
type Store struct {
	db *sql.DB
}

// Open creates or opens the store at path. Use ":memory:" in tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open localstore: %w", err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS kv (
  name  TEXT PRIMARY KEY,
  value BLOB NOT NULL
)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init localstore: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Get returns the value under key, with ok=false when the key is absent.
func (s *Store) Get(key string) (value []byte, ok bool, err error) {
	row := s.db.QueryRow(`SELECT value FROM kv WHERE name=?`, namespace+"/"+key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

// Put stores value under key, replacing any previous value.
func (s *Store) Put(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (name, value) VALUES (?, ?)
		 ON CONFLICT (name) DO UPDATE SET value=excluded.value`,
		namespace+"/"+key, value)
	return err
}

// Delete removes key if present.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE name=?`, namespace+"/"+key)
	return err
}
