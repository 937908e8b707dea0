package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps the blob in a single file under Dir. Human-readable,
// portable, no locking; fine for a local single-user app.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) FileStore {
	return FileStore{Dir: dir}
}

func (s FileStore) path() string {
	return filepath.Join(s.Dir, Namespace+".json")
}

func (s FileStore) Read() (string, bool, error) {
	b, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", s.path(), err)
	}
	return string(b), true, nil
}

func (s FileStore) Write(raw string) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", s.Dir, err)
	}
	if err := os.WriteFile(s.path(), []byte(raw), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path(), err)
	}
	return nil
}
