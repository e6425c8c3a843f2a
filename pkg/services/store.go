package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"portfolio-cms/pkg/config"
)

// ErrNoSnapshot is returned by Read when nothing has been persisted yet.
var ErrNoSnapshot = errors.New("no snapshot stored")

// BlobStore holds one opaque serialized snapshot. Every Write replaces the
// whole blob; there is no finer granularity.
type BlobStore interface {
	Read() ([]byte, error)
	Write(data []byte) error
	Close() error
}

// OpenBlobStore builds the configured backend.
func OpenBlobStore() (BlobStore, error) {
	switch config.StoreBackend {
	case "file":
		return NewFileStore(config.DataDir, config.ContentBlobKey, config.SimulatedLatency)
	case "sqlite":
		return NewSQLiteStore(config.DataDir, config.ContentBlobKey, config.SimulatedLatency)
	}
	return nil, fmt.Errorf("unknown store backend %q", config.StoreBackend)
}

func safeBlobPath(dir, key, ext string) (string, error) {
	clean := filepath.Clean(key)
	if clean == "" || clean == "." || strings.Contains(clean, "..") || strings.ContainsAny(clean, `/\`) {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return filepath.Join(dir, clean+ext), nil
}

// FileStore keeps the blob in a single JSON file under the data dir. The
// configured latency stands in for the round trip a real backend would cost.
type FileStore struct {
	mu      sync.Mutex
	path    string
	latency time.Duration
}

func NewFileStore(dir, key string, latency time.Duration) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	path, err := safeBlobPath(dir, key, ".json")
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path, latency: latency}, nil
}

func (s *FileStore) Read() ([]byte, error) {
	time.Sleep(s.latency)
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	return data, nil
}

func (s *FileStore) Write(data []byte) error {
	time.Sleep(s.latency)
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.WriteFile(s.path, data, 0644)
}

func (s *FileStore) Close() error {
	return nil
}
