// ABOUTME: Share surface that persists share payloads as retrievable link records
// ABOUTME: Each share gets a UUID and lives in the key-value store until it expires

package link

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"memoria-app-api/core/interfaces"
)

const defaultTTL = 24 * time.Hour

// Record is a persisted share payload addressable by its ID
type Record struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text,omitempty"`
	URL       string    `json:"url,omitempty"`
	FileNames []string  `json:"fileNames,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Surface implements the ShareSurface interface by minting share links.
// File payloads are recorded by name only; the bytes already live in blob
// storage under the same name.
type Surface struct {
	kv  interfaces.KeyValueStore
	ttl time.Duration
	now func() time.Time
}

// NewSurface creates a share surface backed by the given store. A zero TTL
// falls back to 24 hours.
func NewSurface(kv interfaces.KeyValueStore, ttl time.Duration) *Surface {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Surface{
		kv:  kv,
		ttl: ttl,
		now: time.Now,
	}
}

// Share persists the payload under a fresh share ID
func (s *Surface) Share(ctx context.Context, req interfaces.ShareRequest) error {
	_, err := s.Create(ctx, req)
	return err
}

// Create persists the payload and returns the minted record
func (s *Surface) Create(ctx context.Context, req interfaces.ShareRequest) (*Record, error) {
	if s.kv == nil {
		return nil, errors.New("share store not configured")
	}

	record := &Record{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Text:      req.Text,
		URL:       req.URL,
		CreatedAt: s.now(),
	}
	for _, f := range req.Files {
		record.FileNames = append(record.FileNames, f.Name)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	if err := s.kv.Set(ctx, "share:"+record.ID, data, s.ttl); err != nil {
		return nil, err
	}

	return record, nil
}

// Get retrieves a share record by ID
func (s *Surface) Get(ctx context.Context, id string) (*Record, error) {
	if id == "" {
		return nil, errors.New("share ID cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.New("invalid share ID format")
	}

	data, err := s.kv.Get(ctx, "share:"+id)
	if err != nil {
		return nil, err
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
