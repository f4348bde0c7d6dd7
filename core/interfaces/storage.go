// ABOUTME: Byte-storage interface for persisting photo image data
// ABOUTME: Defines the contract for the durable storage area owned by the photo library

package interfaces

import "context"

// BlobStorage defines the interface for the photo byte-storage area.
// Paths are storage-relative filenames; the storage root directory is bound
// at construction time by the implementation.
type BlobStorage interface {
	// ReadFile returns the bytes stored under the given filename.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFile stores data under the given filename and returns the
	// full URI of the written entry.
	WriteFile(ctx context.Context, path string, data []byte) (string, error)

	// DeleteFile removes the entry stored under the given filename.
	// Returns an error if the entry cannot be deleted.
	DeleteFile(ctx context.Context, path string) error
}
