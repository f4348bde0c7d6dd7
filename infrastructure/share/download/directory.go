// ABOUTME: Download fallback that saves share payloads into a downloads directory
// ABOUTME: Used when no share surface is available or the surface fails

package download

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Directory implements the Downloader interface on a local folder
type Directory struct {
	dir string
}

// NewDirectory creates a downloader rooted at dir, creating it if needed
func NewDirectory(dir string) (*Directory, error) {
	if dir == "" {
		return nil, errors.New("downloads directory cannot be empty")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve downloads directory: %w", err)
	}

	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create downloads directory: %w", err)
	}

	return &Directory{dir: abs}, nil
}

// Download writes the payload into the downloads folder. An existing file
// with the same name gets a numeric suffix rather than being overwritten.
func (d *Directory) Download(ctx context.Context, name string, data []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if name == "" {
		return errors.New("download name cannot be empty")
	}

	target := filepath.Join(d.dir, filepath.Base(filepath.Clean(name)))
	target = d.deduplicate(target)

	return os.WriteFile(target, data, 0o644)
}

// deduplicate finds a free variant of the target name
func (d *Directory) deduplicate(target string) string {
	if _, err := os.Stat(target); os.IsNotExist(err) {
		return target
	}

	ext := filepath.Ext(target)
	base := strings.TrimSuffix(target, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
