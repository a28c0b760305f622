package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"guide-backend/internal/shared/storage/object"
	"guide-backend/internal/shared/util"
)

// Store reads objects from a directory on the local filesystem.
type Store struct {
	baseDir string
}

// New creates a new local object reader rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Open opens a stored object for reading.
func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean, err := util.SanitizeKey(key)
	if err != nil {
		return nil, err
	}

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(clean))
	f, err := os.Open(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open %s: %w", clean, object.ErrNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", clean, err)
	}
	return f, nil
}

var _ object.Reader = (*Store)(nil)
