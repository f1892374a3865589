package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore хранит файлы на локальном диске. Используется в разработке
// и в односерверных инсталляциях
type LocalStore struct {
	dir string
}

// NewLocalStore создает LocalStore, создавая каталог при необходимости
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: failed to create directory %q: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save записывает содержимое под указанным ключом
func (s *LocalStore) Save(ctx context.Context, key string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.path(key)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("storage: failed to create object %q: %w", key, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("storage: failed to write object %q: %w", key, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("storage: failed to close object %q: %w", key, err)
	}

	return nil
}

// Download открывает содержимое по ключу
func (s *LocalStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("storage: failed to open object %q: %w", key, err)
	}

	return f, nil
}

// path проверяет ключ и строит путь внутри каталога хранилища
func (s *LocalStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("storage: invalid object key %q", key)
	}
	return filepath.Join(s.dir, key), nil
}
