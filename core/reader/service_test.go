package reader

import (
	"context"
	"errors"
	"testing"
	"time"

	readability "github.com/go-shiori/go-readability"
)

type mockKV struct {
	data map[string][]byte
}

func newMockKV() *mockKV {
	return &mockKV{data: make(map[string][]byte)}
}

func (m *mockKV) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, errors.New("key not found")
	}
	return v, nil
}

func (m *mockKV) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *mockKV) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(_ string, _ map[string]interface{}) {}
func (nopLogger) Info(_ string, _ map[string]interface{})  {}
func (nopLogger) Warn(_ string, _ map[string]interface{})  {}
func (nopLogger) Error(_ string, _ map[string]interface{}) {}

func TestExtract_SanitizesContent(t *testing.T) {
	svc := NewService(newMockKV(), nopLogger{})
	svc.extract = func(_ string, _ time.Duration) (readability.Article, error) {
		return readability.Article{
			Title:       "Example",
			Content:     `<p onclick="x()">body <script>alert(1)</script>text</p>`,
			TextContent: "body text",
		}, nil
	}

	view := svc.Extract(context.Background(), "https://example.com/post")

	if view.Status != "ok" {
		t.Fatalf("Status = %q, want ok", view.Status)
	}
	if view.Content != "<p>body text</p>" {
		t.Errorf("Content = %q, want event handlers and scripts removed", view.Content)
	}
	if view.Title != "Example" {
		t.Errorf("Title = %q, want Example", view.Title)
	}
}

func TestExtract_ReportsFailurePerEntry(t *testing.T) {
	svc := NewService(newMockKV(), nopLogger{})
	svc.extract = func(_ string, _ time.Duration) (readability.Article, error) {
		return readability.Article{}, errors.New("fetch failed")
	}

	view := svc.Extract(context.Background(), "https://example.com/post")

	if view.Status != "error" {
		t.Errorf("Status = %q, want error", view.Status)
	}
	if view.Error != "fetch failed" {
		t.Errorf("Error = %q, want the extraction failure", view.Error)
	}
	if view.URL != "https://example.com/post" {
		t.Errorf("URL = %q, want the requested URL preserved", view.URL)
	}
}

func TestExtractReaderViews_CachesSuccesses(t *testing.T) {
	kv := newMockKV()
	svc := NewService(kv, nopLogger{})
	calls := 0
	svc.extract = func(_ string, _ time.Duration) (readability.Article, error) {
		calls++
		return readability.Article{Title: "Cached", Content: "<p>ok</p>"}, nil
	}

	svc.ExtractReaderViews(context.Background(), []string{"https://example.com/a"})
	views := svc.ExtractReaderViews(context.Background(), []string{"https://example.com/a"})

	if calls != 1 {
		t.Errorf("extract calls = %d, want 1 (second lookup served from cache)", calls)
	}
	if views[0].Title != "Cached" {
		t.Errorf("cached Title = %q, want Cached", views[0].Title)
	}
}

func TestExtractReaderViews_DoesNotCacheFailures(t *testing.T) {
	kv := newMockKV()
	svc := NewService(kv, nopLogger{})
	svc.extract = func(_ string, _ time.Duration) (readability.Article, error) {
		return readability.Article{}, errors.New("boom")
	}

	svc.ExtractReaderViews(context.Background(), []string{"https://example.com/a"})

	if len(kv.data) != 0 {
		t.Errorf("cache entries = %d, want failures left uncached", len(kv.data))
	}
}

func TestExtractReaderViews_PreservesInputOrder(t *testing.T) {
	svc := NewService(newMockKV(), nopLogger{})
	svc.extract = func(url string, _ time.Duration) (readability.Article, error) {
		return readability.Article{Title: url}, nil
	}

	urls := []string{"https://example.com/1", "https://example.com/2", "https://example.com/3"}
	views := svc.ExtractReaderViews(context.Background(), urls)

	for i, url := range urls {
		if views[i].URL != url {
			t.Errorf("views[%d].URL = %q, want %q", i, views[i].URL, url)
		}
	}
}
