package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"memoria-app-api/core/interfaces"
	"memoria-app-api/infrastructure/share/link"
)

// kvStore is a map-backed KeyValueStore for handler tests
type kvStore struct {
	data map[string][]byte
}

func newKVStore() *kvStore {
	return &kvStore{data: make(map[string][]byte)}
}

func (s *kvStore) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := s.data[key]
	if !ok {
		return nil, errors.New("key not found: " + key)
	}
	return value, nil
}

func (s *kvStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.data[key] = value
	return nil
}

func (s *kvStore) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func TestShareGet_ReturnsMintedRecord(t *testing.T) {
	surface := link.NewSurface(newKVStore(), 0)
	record, err := surface.Create(context.Background(), interfaces.ShareRequest{
		Title: "Photo",
		Files: []interfaces.ShareFile{{Name: "1700000000000.jpeg"}},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	handler := NewShareHandler(surface)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/shares/{id}", handler.Get)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/shares/"+record.ID, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got link.Record
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if got.ID != record.ID || got.Title != "Photo" {
		t.Errorf("record = %+v, want the minted one", got)
	}
	if len(got.FileNames) != 1 || got.FileNames[0] != "1700000000000.jpeg" {
		t.Errorf("FileNames = %v, want the shared file's name", got.FileNames)
	}
}

func TestShareGet_UnknownIDIs404(t *testing.T) {
	surface := link.NewSurface(newKVStore(), 0)

	handler := NewShareHandler(surface)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/shares/{id}", handler.Get)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/shares/0b2e1fa0-0000-0000-0000-000000000000", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for an unknown share", rec.Code)
	}
}
