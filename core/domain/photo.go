// ABOUTME: UserPhoto domain model represents a captured photo in the local library
// ABOUTME: Provides validation and filename resolution for photo records

package domain

import "strings"

// UserPhoto represents a single captured photo in the library
type UserPhoto struct {
	// Filepath is the storage-relative identifier or URI of the photo bytes.
	// Immutable once assigned at capture time.
	Filepath string `json:"filepath"`

	// WebviewPath is a renderable image source for the display layer.
	// May be recomputed at load time depending on the execution context.
	WebviewPath string `json:"webviewPath,omitempty"`

	// DateTaken is the capture time in epoch milliseconds
	DateTaken int64 `json:"dateTaken,omitempty"`

	// Size is the byte size of the stored image
	Size int64 `json:"size,omitempty"`
}

// Filename returns the storage key for the photo: the last path segment of
// Filepath. In a native-shell context Filepath may be a full URI; the storage
// layer only knows the bare name.
func (p *UserPhoto) Filename() string {
	if idx := strings.LastIndex(p.Filepath, "/"); idx >= 0 {
		return p.Filepath[idx+1:]
	}
	return p.Filepath
}

// IsValid checks if the photo record has its required field
func (p *UserPhoto) IsValid() bool {
	return p.Filepath != ""
}

// PhotoIndex is the ordered photo list, newest first. Insertion order is the
// sole ordering signal; there is no separate sort key.
type PhotoIndex []UserPhoto

// Prepend returns the index with photo inserted at the front
func (idx PhotoIndex) Prepend(photo UserPhoto) PhotoIndex {
	out := make(PhotoIndex, 0, len(idx)+1)
	out = append(out, photo)
	out = append(out, idx...)
	return out
}

// Remove returns the index without the photo whose Filepath matches exactly,
// and whether a matching entry was found
func (idx PhotoIndex) Remove(filepath string) (PhotoIndex, bool) {
	out := make(PhotoIndex, 0, len(idx))
	found := false
	for _, p := range idx {
		if p.Filepath == filepath {
			found = true
			continue
		}
		out = append(out, p)
	}
	return out, found
}
