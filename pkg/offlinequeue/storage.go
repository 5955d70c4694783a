package offlinequeue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ironnotify/ironnotify-go/pkg/notification"
)

// Storage persists the full queue image. Save always rewrites the complete
// ordered sequence; there is no incremental append. A partial full-image
// write is recoverable (the previous image survives until rename), which is
// why the queue does not keep an append-only log.
type Storage interface {
	// Load reads the persisted sequence, oldest-first. A missing image
	// loads as an empty sequence without error.
	Load(ctx context.Context) ([]notification.Payload, error)

	// Save atomically replaces the persisted sequence.
	Save(ctx context.Context, payloads []notification.Payload) error
}

// FileStorage persists the queue as a single JSON array file. Writes go to a
// temp file in the same directory followed by a rename, so a crash mid-write
// leaves the previous image intact rather than a truncated file.
type FileStorage struct {
	path string
}

// DefaultStoragePath returns the per-user queue file location,
// ~/.ironnotify/offline_queue.json. Falls back to the current directory when
// the home directory cannot be resolved.
func DefaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".ironnotify", "offline_queue.json")
}

// NewFileStorage creates a file storage at the given path. An empty path
// selects DefaultStoragePath.
func NewFileStorage(path string) *FileStorage {
	if path == "" {
		path = DefaultStoragePath()
	}
	return &FileStorage{path: path}
}

// Path returns the backing file location.
func (s *FileStorage) Path() string {
	return s.path
}

func (s *FileStorage) Load(ctx context.Context) ([]notification.Payload, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read queue file: %w", err)
	}

	var payloads []notification.Payload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptImage, err)
	}
	return payloads, nil
}

func (s *FileStorage) Save(ctx context.Context, payloads []notification.Payload) error {
	if payloads == nil {
		payloads = []notification.Payload{}
	}

	data, err := json.Marshal(payloads)
	if err != nil {
		return fmt.Errorf("marshal queue image: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create queue dir: %w", err)
	}

	// Temp file in the same directory so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(dir, ".offline_queue-*.json")
	if err != nil {
		return fmt.Errorf("create temp queue file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write queue image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp queue file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace queue file: %w", err)
	}
	return nil
}
