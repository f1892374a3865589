package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

// GCSStore хранит файлы в бакете Google Cloud Storage
type GCSStore struct {
	bucket *storage.BucketHandle
}

// NewGCSStore создает клиент GCS для указанного бакета
func NewGCSStore(ctx context.Context, bucketName string) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to create gcs client: %w", err)
	}

	return &GCSStore{bucket: client.Bucket(bucketName)}, nil
}

// Save записывает содержимое объекта в бакет
func (s *GCSStore) Save(ctx context.Context, key string, r io.Reader) error {
	w := s.bucket.Object(key).NewWriter(ctx)

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return fmt.Errorf("storage: failed to write gcs object %q: %w", key, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("storage: failed to finalize gcs object %q: %w", key, err)
	}

	return nil
}

// Download открывает содержимое объекта из бакета
func (s *GCSStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.bucket.Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("storage: failed to open gcs object %q: %w", key, err)
	}

	return r, nil
}
