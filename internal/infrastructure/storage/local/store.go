package local

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store writes content under one directory, one uuid-named file per save.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// Save returns the absolute path of the written file. The directory is
// created on first use; a partial write never becomes visible under the
// final name.
func (s *Store) Save(_ context.Context, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return "", fmt.Errorf("create folder %s: %w", s.dir, err)
	}

	dir, err := filepath.Abs(s.dir)
	if err != nil {
		return "", fmt.Errorf("resolve folder %s: %w", s.dir, err)
	}
	fullPath := filepath.Join(dir, uuid.NewString())
	tmpPath := fullPath + ".tmp"

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer f.Close()

	if _, err = f.Write(data); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("write content: %w", err)
	}
	if err = f.Sync(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("fsync: %w", err)
	}
	if err = f.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("rename temp file: %w", err)
	}

	return fullPath, nil
}

func (s *Store) Remove(_ context.Context, location string) error {
	if err := os.Remove(location); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", location, err)
	}

	return nil
}
