// ABOUTME: Request DTOs for photo library API endpoints
// ABOUTME: Provides validation for capture and share requests

package requests

import "errors"

// CaptureRequest carries the capture result handed over by the client.
// A native shell sends the local file path; a browser sends the
// web-accessible path of the captured image.
type CaptureRequest struct {
	// Path is the native filesystem path of the captured image
	Path string `json:"path,omitempty"`

	// WebPath is the web-accessible path of the captured image
	WebPath string `json:"webPath,omitempty"`
}

// Validate checks that the request carries at least one usable path
func (r *CaptureRequest) Validate() error {
	if r.Path == "" && r.WebPath == "" {
		return errors.New("capture request must carry a path or a webPath")
	}
	return nil
}

// SharePhotoRequest identifies the photo to share by its stored filepath
type SharePhotoRequest struct {
	// Filepath is the photo's stored filepath key
	Filepath string `json:"filepath"`
}

// Validate checks the request for required fields
func (r *SharePhotoRequest) Validate() error {
	if r.Filepath == "" {
		return errors.New("filepath cannot be empty")
	}
	return nil
}
