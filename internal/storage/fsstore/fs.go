// Package fsstore keeps documents as files in a single data directory.
package fsstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/moodyssey/internal/filex"
	"github.com/dmitrijs2005/moodyssey/internal/storage"
)

const filePerm = 0o600

// Store is a storage.Backend over the local filesystem. Each key is one file
// directly below root.
type Store struct {
	root string
}

// New creates root if needed and returns a Store serving it.
func New(root string) (*Store, error) {
	dir, err := filex.EnsureDir(root)
	if err != nil {
		return nil, err
	}
	return &Store{root: dir}, nil
}

// Root returns the absolute data directory.
func (s *Store) Root() string { return s.root }

func (s *Store) path(key string) (string, error) {
	if key == "" || !filepath.IsLocal(key) || filepath.Base(key) != key {
		return "", fmt.Errorf("invalid document key %q", key)
	}
	return filepath.Join(s.root, key), nil
}

func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, err := s.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *Store) Write(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p, err := s.path(key)
	if err != nil {
		return err
	}
	return filex.WriteFileAtomic(p, data, filePerm)
}
