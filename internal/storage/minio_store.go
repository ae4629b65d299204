package storage

import (
	"context"
	"io"
	"log"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"portfolio-backend/internal/config"
)

// MinioStore keeps uploaded files in a MinIO bucket instead of local disk.
type MinioStore struct {
	Client *minio.Client
	Bucket string
}

// NewMinioStore initializes a MinIO client and ensures the bucket exists.
func NewMinioStore(cfg *config.Config) (*MinioStore, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioSSL,
	})
	if err != nil {
		return nil, err
	}
	// Ensure the bucket exists (create if not present)
	ctx := context.Background()
	exists, errBucket := client.BucketExists(ctx, cfg.MinioBucket)
	if errBucket != nil {
		return nil, errBucket
	}
	if !exists {
		err = client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{Region: ""})
		if err != nil {
			return nil, err
		}
		log.Printf("Created bucket %s\n", cfg.MinioBucket)
	}
	return &MinioStore{Client: client, Bucket: cfg.MinioBucket}, nil
}

// Save uploads the file under its original filename, overwriting any existing object.
func (s *MinioStore) Save(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.Client.PutObject(ctx, s.Bucket, filename, r, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return path.Join("/uploads", filename), nil
}

// Open streams the stored object content.
func (s *MinioStore) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	obj, err := s.Client.GetObject(ctx, s.Bucket, filename, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	// GetObject is lazy; surface missing objects on first stat
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, err
	}
	return obj, nil
}

// Remove deletes the stored object.
func (s *MinioStore) Remove(ctx context.Context, filename string) error {
	return s.Client.RemoveObject(ctx, s.Bucket, filename, minio.RemoveObjectOptions{})
}
