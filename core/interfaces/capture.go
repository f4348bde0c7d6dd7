// ABOUTME: Capture source interface for obtaining photos from a camera or picker
// ABOUTME: Defines the contract between the photo library and the device capture surface

package interfaces

import "context"

// CaptureResult is what a capture source hands back. Depending on the
// execution context it carries a native file path, a web-accessible path,
// or both.
type CaptureResult struct {
	// Path is the native filesystem path of the captured image, if any.
	Path string

	// WebPath is a web-accessible URL for the captured image, if any.
	WebPath string
}

// CaptureSource obtains image bytes from a camera or photo picker.
// Implementations may cancel (user dismissed the picker) or fail, in which
// case the returned error propagates to the caller untouched.
type CaptureSource interface {
	// GetPhoto invokes the capture surface and returns an access handle
	// appropriate for the current execution context.
	GetPhoto(ctx context.Context) (CaptureResult, error)
}
