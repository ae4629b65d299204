package storage

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/errors"
)

// LocalStore writes uploaded files to a directory on local disk.
type LocalStore struct {
	Dir string
}

// NewLocalStore creates the upload directory if absent and returns a store over it.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "could not create upload directory")
	}
	return &LocalStore{Dir: dir}, nil
}

// Save writes the file under its original filename, overwriting any existing file.
func (s *LocalStore) Save(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error) {
	dst, err := os.Create(filepath.Join(s.Dir, filename))
	if err != nil {
		return "", errors.Wrap(err, "could not create file")
	}
	_, err = io.Copy(dst, r)
	closeErr := dst.Close()
	if err != nil {
		return "", errors.Wrap(err, "failed to write file")
	}
	if closeErr != nil {
		return "", errors.Wrap(closeErr, "failed to close file")
	}
	return path.Join("/uploads", filename), nil
}

// Open returns the stored file content for reading.
func (s *LocalStore) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.Dir, filename))
}

// Remove deletes the stored file.
func (s *LocalStore) Remove(ctx context.Context, filename string) error {
	return os.Remove(filepath.Join(s.Dir, filename))
}
