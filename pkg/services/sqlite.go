package services

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps the blob as a single row in a key/value table. Writes
// still replace the whole blob, matching the BlobStore contract.
type SQLiteStore struct {
	db      *sql.DB
	key     string
	latency time.Duration
}

func NewSQLiteStore(dir, key string, latency time.Duration) (*SQLiteStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite3", filepath.Join(dir, "content.db"))
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS blobs (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init sqlite store: %w", err)
	}
	return &SQLiteStore{db: db, key: key, latency: latency}, nil
}

func (s *SQLiteStore) Read() ([]byte, error) {
	time.Sleep(s.latency)
	var data []byte
	err := s.db.QueryRow(`SELECT value FROM blobs WHERE key = ?`, s.key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQLiteStore) Write(data []byte) error {
	time.Sleep(s.latency)
	_, err := s.db.Exec(`INSERT INTO blobs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, s.key, data)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
