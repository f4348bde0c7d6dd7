// ABOUTME: Response DTOs for photo library API endpoints
// ABOUTME: Defines the wire shape of photo records and list envelopes

package responses

// Photo is the wire representation of a stored photo
type Photo struct {
	// Filepath is the photo's stored filepath key
	Filepath string `json:"filepath"`

	// Filename is the last segment of the filepath
	Filename string `json:"filename"`

	// WebviewPath is the renderable source for the current environment
	WebviewPath string `json:"webviewPath,omitempty"`

	// DateTaken is the capture time in milliseconds since the Unix epoch
	DateTaken int64 `json:"date"`

	// Size is the image size in bytes
	Size int64 `json:"size"`
}

// PhotoListResponse is the envelope for photo list endpoints
type PhotoListResponse struct {
	Photos []Photo `json:"photos"`
	Count  int     `json:"count"`
}
