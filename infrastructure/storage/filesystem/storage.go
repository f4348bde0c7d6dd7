// ABOUTME: Filesystem blob storage bound to a single photos directory
// ABOUTME: Stores captured images as flat files and reports file:// URIs

package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage implements the BlobStorage interface on a local directory.
// Paths are flat filenames; anything that escapes the directory is rejected.
type Storage struct {
	dir string
}

// NewStorage creates a storage rooted at dir, creating it if needed
func NewStorage(dir string) (*Storage, error) {
	if dir == "" {
		return nil, errors.New("storage directory cannot be empty")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage directory: %w", err)
	}

	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &Storage{dir: abs}, nil
}

// ReadFile reads a stored file's contents
func (s *Storage) ReadFile(ctx context.Context, path string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(full)
}

// WriteFile writes data under the storage directory and returns the file URI
func (s *Storage) WriteFile(ctx context.Context, path string, data []byte) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	full, err := s.resolve(path)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", err
	}

	return "file://" + full, nil
}

// DeleteFile removes a stored file. Deleting a missing file is an error,
// which lets callers surface deletes of unknown photos.
func (s *Storage) DeleteFile(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	return os.Remove(full)
}

// resolve maps a storage path onto the bound directory and rejects escapes
func (s *Storage) resolve(path string) (string, error) {
	if path == "" {
		return "", errors.New("storage path cannot be empty")
	}

	full := filepath.Join(s.dir, filepath.Base(filepath.Clean(path)))
	if !strings.HasPrefix(full, s.dir+string(os.PathSeparator)) {
		return "", fmt.Errorf("storage path escapes directory: %s", path)
	}
	return full, nil
}
