// ABOUTME: Share surface and download fallback interfaces
// ABOUTME: Defines contracts for handing a photo to the platform share sheet or a download

package interfaces

import "context"

// ShareFile is a binary attachment in a share payload.
type ShareFile struct {
	// Name is the suggested filename for the attachment.
	Name string

	// Data holds the attachment bytes.
	Data []byte

	// MimeType is the attachment content type.
	MimeType string
}

// ShareRequest is the payload handed to a share surface. Either URL or Files
// is set depending on the execution context.
type ShareRequest struct {
	Title string
	Text  string
	URL   string
	Files []ShareFile
}

// ShareSurface hands a payload to the platform's native or web share
// capability. It may fail or be unavailable; callers are expected to fall
// back to a Downloader.
type ShareSurface interface {
	Share(ctx context.Context, req ShareRequest) error
}

// Downloader is the client-side download fallback used when sharing fails.
type Downloader interface {
	// Download delivers the named bytes as a file download.
	Download(ctx context.Context, name string, data []byte) error
}
