// ABOUTME: SQLite-backed key-value store for persistent single-node deployments
// ABOUTME: Survives restarts, which the photo index requires when no Redis is available

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"memoria-app-api/core/interfaces"
)

const cleanupPeriod = 5 * time.Minute

// neverExpires is the expiry marker for zero-TTL entries
const neverExpires = int64(0)

// Store implements the KeyValueStore interface using SQLite
type Store struct {
	db       *sql.DB
	filePath string
}

// NewStore creates a new SQLite store at the given file path
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "keyvalue.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{
		db:       db,
		filePath: filePath,
	}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	go store.cleanupRoutine()

	return store, nil
}

// initSchema creates the kv table if it doesn't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_kv_expiry ON kv(expiry);
	`

	_, err := s.db.Exec(query)
	return err
}

// Get retrieves a value from the store
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	var value []byte
	var expiry int64

	query := "SELECT value, expiry FROM kv WHERE key = ? AND (expiry = ? OR expiry > ?)"
	err := s.db.QueryRowContext(ctx, query, key, neverExpires, time.Now().Unix()).Scan(&value, &expiry)

	if err == sql.ErrNoRows {
		return nil, interfaces.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores a value with the given TTL. A zero TTL means the entry never
// expires.
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	// Only a TTL of exactly zero means forever; a negative TTL stores an
	// already-expired entry.
	expiry := neverExpires
	if ttl != 0 {
		expiry = time.Now().Add(ttl).Unix()
	}

	query := "INSERT OR REPLACE INTO kv (key, value, expiry) VALUES (?, ?, ?)"
	if _, err := s.db.ExecContext(ctx, query, key, value, expiry); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// Delete removes a value from the store
func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	return nil
}

// cleanupRoutine periodically removes expired entries
func (s *Store) cleanupRoutine() {
	ticker := time.NewTicker(cleanupPeriod)
	defer ticker.Stop()

	for range ticker.C {
		s.cleanup()
	}
}

// cleanup removes expired entries, leaving zero-expiry rows alone
func (s *Store) cleanup() {
	query := "DELETE FROM kv WHERE expiry != ? AND expiry <= ?"
	_, _ = s.db.Exec(query, neverExpires, time.Now().Unix())
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
