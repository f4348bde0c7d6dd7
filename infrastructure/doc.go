// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as key-value persistence, blob storage, HTTP communication, sharing
// and logging.
//
// The infrastructure package is organized by technical concern:
//
// - keyvalue/memory: In-memory key-value store backed by go-cache
// - keyvalue/redis: Redis-based key-value store
// - keyvalue/sqlite: SQLite-based key-value store with TTL cleanup
// - storage/filesystem: Directory-confined blob storage for photo bytes
// - share/link: Share surface that mints retrievable link records
// - share/download: Collision-safe download directory fallback
// - http/standard: Standard library HTTP client with retry logic
// - logger/standard: Plain-text structured logger
// - logger/logrus: JSON structured logger built on logrus
//
// # Key-Value Stores
//
// All three stores honor the same contract: a TTL of zero means the value
// is kept forever, which is how the photo index persists.
//
//	store := memory.NewStore()
//	err := store.Set(ctx, "photos", indexJSON, 0)
//	value, err := store.Get(ctx, "photos")
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures:
//
//	client := standard.NewClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// Both loggers support structured logging with fields:
//
//	logger := standard.NewLogger()
//	logger.Info("Processing request", map[string]interface{}{
//	    "request_id": "123",
//	    "path":       "/api/photos",
//	})
package infrastructure
