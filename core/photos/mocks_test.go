package photos

import (
	"bytes"
	"context"
	"errors"
	"io"

	"memoria-app-api/core/interfaces"
	"time"
)

// mockKV is an in-memory KeyValueStore for tests
type mockKV struct {
	data   map[string][]byte
	getErr error
	setErr error
}

func newMockKV() *mockKV {
	return &mockKV{data: make(map[string][]byte)}
}

func (m *mockKV) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, interfaces.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockKV) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *mockKV) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

// mockStorage is an in-memory BlobStorage for tests
type mockStorage struct {
	files     map[string][]byte
	readErr   error
	writeErr  error
	deleteErr error
	deleted   []string
}

func newMockStorage() *mockStorage {
	return &mockStorage{files: make(map[string][]byte)}
}

func (m *mockStorage) ReadFile(_ context.Context, path string) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	data, ok := m.files[path]
	if !ok {
		return nil, errors.New("file does not exist")
	}
	return data, nil
}

func (m *mockStorage) WriteFile(_ context.Context, path string, data []byte) (string, error) {
	if m.writeErr != nil {
		return "", m.writeErr
	}
	m.files[path] = data
	return "file:///photos/" + path, nil
}

func (m *mockStorage) DeleteFile(_ context.Context, path string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.files[path]; !ok {
		return errors.New("file does not exist")
	}
	delete(m.files, path)
	m.deleted = append(m.deleted, path)
	return nil
}

// mockCaptureSource returns a fixed capture result
type mockCaptureSource struct {
	result interfaces.CaptureResult
	err    error
}

func (m *mockCaptureSource) GetPhoto(_ context.Context) (interfaces.CaptureResult, error) {
	return m.result, m.err
}

// mockShareSurface records share requests
type mockShareSurface struct {
	err   error
	calls []interfaces.ShareRequest
}

func (m *mockShareSurface) Share(_ context.Context, req interfaces.ShareRequest) error {
	m.calls = append(m.calls, req)
	return m.err
}

// mockDownloader records download fallbacks
type mockDownloader struct {
	err   error
	names []string
}

func (m *mockDownloader) Download(_ context.Context, name string, _ []byte) error {
	if m.err != nil {
		return m.err
	}
	m.names = append(m.names, name)
	return nil
}

// mockHTTPClient serves fixed responses for web-context capture fetches
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, errors.New("no response configured")
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

// nopLogger discards all log output
type nopLogger struct{}

func (nopLogger) Debug(_ string, _ map[string]interface{}) {}
func (nopLogger) Info(_ string, _ map[string]interface{})  {}
func (nopLogger) Warn(_ string, _ map[string]interface{})  {}
func (nopLogger) Error(_ string, _ map[string]interface{}) {}

// testDeps builds a Dependencies container around the given KV store
func testDeps(kv *mockKV) interfaces.Dependencies {
	return interfaces.Dependencies{
		KV:     kv,
		Logger: nopLogger{},
	}
}
