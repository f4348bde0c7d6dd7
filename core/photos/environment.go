// ABOUTME: Environment strategies for web and native-shell execution contexts
// ABOUTME: Centralizes the one behavioral fork in capture, display and share paths

package photos

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"memoria-app-api/core/domain"
	coreerrors "memoria-app-api/core/errors"
	"memoria-app-api/core/interfaces"
)

const (
	jpegMimeType  = "image/jpeg"
	dataURIPrefix = "data:image/jpeg;base64,"
)

// Environment is the capability set that differs between a browser execution
// context and a native-shell one. The strategy is selected once at service
// construction rather than branched on per call.
type Environment interface {
	// Name identifies the execution context ("web" or "hybrid")
	Name() string

	// AcquireCapture turns a capture result into image bytes plus the
	// renderable webview path for the new photo
	AcquireCapture(ctx context.Context, result interfaces.CaptureResult, filename string) ([]byte, string, error)

	// FilepathFor picks the persisted Filepath for a newly written photo,
	// given the storage URI and the bare filename
	FilepathFor(uri, filename string) string

	// ResolveDisplayPath recomputes a photo's renderable source at load time
	ResolveDisplayPath(ctx context.Context, photo *domain.UserPhoto, storage interfaces.BlobStorage) (string, error)

	// BuildShare constructs the context-appropriate share payload. Web
	// payloads carry the image as a binary attachment; native payloads
	// carry the servable URI.
	BuildShare(ctx context.Context, photo *domain.UserPhoto, storage interfaces.BlobStorage) (interfaces.ShareRequest, error)
}

// NativeEnvironment is the native-shell strategy: capture results carry a
// filesystem path that is read directly, and stored paths are assumed
// renderable by the display layer as-is.
type NativeEnvironment struct {
	serveBase string
	readFile  func(string) ([]byte, error)
}

// NewNativeEnvironment creates the native-shell strategy. serveBase is the
// base URL under which stored photos are servable to the display layer.
func NewNativeEnvironment(serveBase string) *NativeEnvironment {
	return &NativeEnvironment{
		serveBase: strings.TrimRight(serveBase, "/"),
		readFile:  os.ReadFile,
	}
}

// Name identifies the execution context
func (e *NativeEnvironment) Name() string {
	return "hybrid"
}

// AcquireCapture reads the captured image directly from the result's path
func (e *NativeEnvironment) AcquireCapture(_ context.Context, result interfaces.CaptureResult, filename string) ([]byte, string, error) {
	if result.Path == "" {
		return nil, "", &coreerrors.ValidationError{Field: "path", Message: "capture result has no native path"}
	}

	data, err := e.readFile(result.Path)
	if err != nil {
		return nil, "", &coreerrors.StorageError{Op: "read", Path: result.Path, Err: err}
	}

	return data, e.servableURI(filename), nil
}

// FilepathFor persists the full storage URI in a native shell
func (e *NativeEnvironment) FilepathFor(uri, _ string) string {
	return uri
}

// ResolveDisplayPath leaves the stored path unchanged; a native shell can
// render it directly
func (e *NativeEnvironment) ResolveDisplayPath(_ context.Context, photo *domain.UserPhoto, _ interfaces.BlobStorage) (string, error) {
	return photo.WebviewPath, nil
}

// BuildShare hands the native share sheet the photo's servable URI
func (e *NativeEnvironment) BuildShare(_ context.Context, photo *domain.UserPhoto, _ interfaces.BlobStorage) (interfaces.ShareRequest, error) {
	uri := photo.WebviewPath
	if uri == "" {
		uri = e.servableURI(photo.Filename())
	}

	return interfaces.ShareRequest{
		Title: photo.Filename(),
		Text:  "Check out this photo",
		URL:   uri,
	}, nil
}

func (e *NativeEnvironment) servableURI(filename string) string {
	return e.serveBase + "/" + filename
}

// WebEnvironment is the browser strategy: capture results carry a
// web-accessible path fetched as a network resource, and raw filesystem
// paths are not renderable, so display sources are embedded data URIs.
type WebEnvironment struct {
	http interfaces.HTTPClient
}

// NewWebEnvironment creates the browser strategy
func NewWebEnvironment(client interfaces.HTTPClient) *WebEnvironment {
	return &WebEnvironment{http: client}
}

// Name identifies the execution context
func (e *WebEnvironment) Name() string {
	return "web"
}

// AcquireCapture fetches the capture result's web path as a network
// resource. The original web path is kept as the webview path since the
// image is already loaded in memory on the client; re-encoding it would be
// a redundant round-trip.
func (e *WebEnvironment) AcquireCapture(ctx context.Context, result interfaces.CaptureResult, _ string) ([]byte, string, error) {
	if result.WebPath == "" {
		return nil, "", &coreerrors.ValidationError{Field: "webPath", Message: "capture result has no web path"}
	}

	resp, err := e.http.Get(ctx, result.WebPath)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, "", &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "failed to fetch captured image",
			API:        result.WebPath,
		}
	}

	data, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, "", err
	}

	return data, result.WebPath, nil
}

// FilepathFor persists the bare storage filename in a browser context
func (e *WebEnvironment) FilepathFor(_, filename string) string {
	return filename
}

// ResolveDisplayPath re-encodes the stored bytes into an embedded data URI,
// since raw filesystem paths are not renderable in a browser
func (e *WebEnvironment) ResolveDisplayPath(ctx context.Context, photo *domain.UserPhoto, storage interfaces.BlobStorage) (string, error) {
	data, err := storage.ReadFile(ctx, photo.Filename())
	if err != nil {
		return "", &coreerrors.StorageError{Op: "read", Path: photo.Filename(), Err: err}
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(data), nil
}

// BuildShare converts the embedded data URI back into a binary attachment
// for the share payload, falling back to a storage read when the photo has
// no data URI loaded
func (e *WebEnvironment) BuildShare(ctx context.Context, photo *domain.UserPhoto, storage interfaces.BlobStorage) (interfaces.ShareRequest, error) {
	var data []byte
	var err error

	if strings.HasPrefix(photo.WebviewPath, "data:") {
		data, err = decodeDataURI(photo.WebviewPath)
	} else {
		data, err = storage.ReadFile(ctx, photo.Filename())
		if err != nil {
			err = &coreerrors.StorageError{Op: "read", Path: photo.Filename(), Err: err}
		}
	}
	if err != nil {
		return interfaces.ShareRequest{}, err
	}

	return interfaces.ShareRequest{
		Title: photo.Filename(),
		Text:  "Check out this photo",
		Files: []interfaces.ShareFile{
			{Name: photo.Filename(), Data: data, MimeType: jpegMimeType},
		},
	}, nil
}

// decodeDataURI extracts and decodes the base64 payload of a data URI
func decodeDataURI(uri string) ([]byte, error) {
	idx := strings.Index(uri, ",")
	if idx < 0 {
		return nil, fmt.Errorf("malformed data URI")
	}
	return base64.StdEncoding.DecodeString(uri[idx+1:])
}
