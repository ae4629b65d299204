package storage

import (
	"context"
	"io"
)

// FileStore persists uploaded files and serves them back by filename.
// Save returns the public relative path for the stored file. Saving under an
// existing filename overwrites the previous content.
type FileStore interface {
	Save(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error)
	Open(ctx context.Context, filename string) (io.ReadCloser, error)
	Remove(ctx context.Context, filename string) error
}
