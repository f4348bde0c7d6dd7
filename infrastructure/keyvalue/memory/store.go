// ABOUTME: In-memory key-value store with TTL support and automatic cleanup
// ABOUTME: Default backend for single-process deployments and tests

package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"memoria-app-api/core/interfaces"
)

const cleanupInterval = 5 * time.Minute

// Store implements the KeyValueStore interface in process memory
type Store struct {
	cache *gocache.Cache
}

// NewStore creates a new in-memory store instance
func NewStore() *Store {
	return &Store{
		cache: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the store
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, ok := s.cache.Get(key)
	if !ok {
		return nil, interfaces.ErrKeyNotFound
	}

	stored := value.([]byte)
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value with the given TTL. A zero TTL means no expiration.
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	if ttl == 0 {
		ttl = gocache.NoExpiration
	}
	s.cache.Set(key, stored, ttl)
	return nil
}

// Delete removes a key from the store
func (s *Store) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.cache.Delete(key)
	return nil
}
