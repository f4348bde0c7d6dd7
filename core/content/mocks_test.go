package content

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"memoria-app-api/core/domain"
	"memoria-app-api/core/interfaces"
)

// mockKV is an in-memory KeyValueStore for tests
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

// mockHTTPClient serves canned responses keyed by URL
type mockHTTPClient struct {
	responses map[string]*mockResponse
	errs      map[string]error
	requests  []string
}

func newMockHTTPClient() *mockHTTPClient {
	return &mockHTTPClient{
		responses: make(map[string]*mockResponse),
		errs:      make(map[string]error),
	}
}

func (m *mockHTTPClient) Get(_ context.Context, url string) (interfaces.Response, error) {
	m.requests = append(m.requests, url)
	if err, ok := m.errs[url]; ok {
		return nil, err
	}
	if resp, ok := m.responses[url]; ok {
		return resp, nil
	}
	return nil, errors.New("no response configured for " + url)
}

func (m *mockHTTPClient) Post(_ context.Context, _ string, _ io.Reader) (interfaces.Response, error) {
	return nil, errors.New("not implemented")
}

// mockResponse implements interfaces.Response over a byte slice
type mockResponse struct {
	status int
	body   []byte
}

func (m *mockResponse) StatusCode() int {
	return m.status
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(bytes.NewReader(m.body))
}

func (m *mockResponse) Header(_ string) string {
	return ""
}

// mockMetadataService returns fixed metadata per URL
type mockMetadataService struct {
	results map[string]*interfaces.MetadataResult
	calls   []string
}

func (m *mockMetadataService) ExtractMetadata(_ context.Context, url string) (*interfaces.MetadataResult, error) {
	m.calls = append(m.calls, url)
	if result, ok := m.results[url]; ok {
		return result, nil
	}
	return nil, errors.New("metadata unavailable")
}

// mockColorService returns a fixed color per image URL
type mockColorService struct {
	colors map[string]*domain.RGBColor
}

func (m *mockColorService) ExtractColor(_ context.Context, imageURL string) (*domain.RGBColor, error) {
	if color, ok := m.colors[imageURL]; ok {
		return color, nil
	}
	return &domain.RGBColor{R: 128, G: 128, B: 128}, nil
}

func (m *mockColorService) ExtractColorBatch(ctx context.Context, imageURLs []string) map[string]*domain.RGBColor {
	results := make(map[string]*domain.RGBColor)
	for _, u := range imageURLs {
		if color, err := m.ExtractColor(ctx, u); err == nil {
			results[u] = color
		}
	}
	return results
}

// nopLogger discards all log output
type nopLogger struct{}

func (nopLogger) Debug(_ string, _ map[string]interface{}) {}
func (nopLogger) Info(_ string, _ map[string]interface{})  {}
func (nopLogger) Warn(_ string, _ map[string]interface{})  {}
func (nopLogger) Error(_ string, _ map[string]interface{}) {}

// testDeps builds a Dependencies container for content tests
func testDeps(kv *mockKV, client *mockHTTPClient) interfaces.Dependencies {
	return interfaces.Dependencies{
		KV:         kv,
		HTTPClient: client,
		Logger:     nopLogger{},
	}
}
