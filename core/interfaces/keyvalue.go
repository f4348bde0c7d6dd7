// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is the sentinel every KeyValueStore returns (possibly
// wrapped) when a key has no live value. Callers use it to tell a missing
// key apart from a failing backend.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore defines the interface for the persisted key-value area.
// It doubles as the cache for remote content and as the durable home of the
// photo index, which is stored as one JSON blob under a fixed key.
// Implementations can be in-memory, Redis, or SQLite.
//
// Example usage:
//
//	store := someStore // implements KeyValueStore
//
//	// Store a value
//	err := store.Set(ctx, "photos", indexJSON, 0)
//
//	// Retrieve a value
//	data, err := store.Get(ctx, "photos")
//	if err != nil {
//		// handle error or missing key
//	}
//
//	// Delete a value
//	err = store.Delete(ctx, "photos")
type KeyValueStore interface {
	// Get retrieves a value from the store by key.
	// Returns the stored data as []byte, or an error wrapping ErrKeyNotFound
	// if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under the given key with the given TTL.
	// If ttl is 0, the value must be kept indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the store by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
