// ABOUTME: Photo library manager owning the authoritative in-memory photo list
// ABOUTME: Mediates between capture source, byte storage and the persisted index

package photos

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"memoria-app-api/core/domain"
	coreerrors "memoria-app-api/core/errors"
	"memoria-app-api/core/interfaces"
)

const (
	// indexKey is the fixed key the photo index is persisted under
	indexKey = "photos"

	// photoExtension is the fixed extension for captured photo filenames
	photoExtension = ".jpeg"
)

// Service owns the photo library: the in-memory newest-first list, the byte
// storage area and the persisted metadata index. A photo becomes visible to
// the rest of the system only once it is indexed; there is no intermediate
// persistence while a capture is in flight.
type Service struct {
	deps    interfaces.Dependencies
	storage interfaces.BlobStorage
	env     Environment

	surface  interfaces.ShareSurface
	fallback interfaces.Downloader

	// now is the clock used for capture timestamps and filenames
	now func() time.Time

	// mu serializes mutations of the photo list. Rapid concurrent captures
	// or deletes would otherwise race on the full-index rewrite and lose
	// updates.
	mu     sync.Mutex
	photos domain.PhotoIndex
}

// NewService creates a photo library manager for the given execution
// environment. The key-value store in deps holds the persisted index; byte
// storage holds the image data.
func NewService(deps interfaces.Dependencies, storage interfaces.BlobStorage, env Environment) *Service {
	return &Service{
		deps:    deps,
		storage: storage,
		env:     env,
		now:     time.Now,
	}
}

// SetShareSurface sets the platform share capability
func (s *Service) SetShareSurface(surface interfaces.ShareSurface) {
	s.surface = surface
}

// SetDownloader sets the client-side download fallback for failed shares
func (s *Service) SetDownloader(fallback interfaces.Downloader) {
	s.fallback = fallback
}

// LoadAll reads the persisted index and returns the photo list, newest
// first. Display paths are recomputed per environment; an entry whose bytes
// cannot be read is skipped and logged rather than failing the whole load.
func (s *Service) LoadAll(ctx context.Context) ([]domain.UserPhoto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.deps.KV.Get(ctx, indexKey)
	if errors.Is(err, interfaces.ErrKeyNotFound) || (err == nil && data == nil) {
		// no index yet: empty library
		s.photos = nil
		return nil, nil
	}
	if err != nil {
		// A failing backend is not an empty library. Keeping the current
		// in-memory list means a later capture cannot rewrite the index
		// from an empty snapshot.
		return nil, coreerrors.WrapError(err, "reading photo index")
	}

	var persisted domain.PhotoIndex
	if err := json.Unmarshal(data, &persisted); err != nil {
		s.deps.Logger.Warn("Photo index is corrupt, starting empty", map[string]interface{}{
			"key":   indexKey,
			"error": err.Error(),
		})
		s.photos = nil
		return nil, nil
	}

	loaded := make(domain.PhotoIndex, 0, len(persisted))
	for _, photo := range persisted {
		displayPath, err := s.env.ResolveDisplayPath(ctx, &photo, s.storage)
		if err != nil {
			s.deps.Logger.Warn("Skipping unreadable photo", map[string]interface{}{
				"filepath": photo.Filepath,
				"error":    err.Error(),
			})
			continue
		}
		photo.WebviewPath = displayPath
		loaded = append(loaded, photo)
	}

	s.photos = loaded
	return s.snapshot(), nil
}

// Capture obtains a photo from the given source, writes its bytes to
// storage, and prepends the new record to the library. The index is
// rewritten synchronously with the in-memory update.
func (s *Service) Capture(ctx context.Context, source interfaces.CaptureSource) (*domain.UserPhoto, error) {
	if source == nil {
		return nil, &coreerrors.ValidationError{Field: "source", Message: "capture source is required"}
	}

	result, err := source.GetPhoto(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	// Epoch-millis filename; collisions at human interaction rates are
	// accepted, captures are not deduplicated.
	filename := strconv.FormatInt(now.UnixMilli(), 10) + photoExtension

	data, webviewPath, err := s.env.AcquireCapture(ctx, result, filename)
	if err != nil {
		return nil, err
	}

	uri, err := s.storage.WriteFile(ctx, filename, data)
	if err != nil {
		return nil, &coreerrors.StorageError{Op: "write", Path: filename, Err: err}
	}

	photo := domain.UserPhoto{
		Filepath:    s.env.FilepathFor(uri, filename),
		WebviewPath: webviewPath,
		DateTaken:   now.UnixMilli(),
		Size:        int64(len(data)),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.photos = s.photos.Prepend(photo)
	if err := s.persistIndex(ctx); err != nil {
		return nil, err
	}

	s.deps.Logger.Info("Photo captured", map[string]interface{}{
		"filepath": photo.Filepath,
		"size":     photo.Size,
		"context":  s.env.Name(),
	})

	return &photo, nil
}

// Delete removes a photo's bytes and its index entry. The byte-storage
// delete happens first; if it fails the in-memory list and the persisted
// index are left unchanged.
func (s *Service) Delete(ctx context.Context, filepath string) error {
	if filepath == "" {
		return &coreerrors.ValidationError{Field: "filepath", Message: "filepath cannot be empty"}
	}

	// In a native shell the filepath may be a full URI; only the last path
	// segment is the storage key.
	ref := domain.UserPhoto{Filepath: filepath}
	filename := ref.Filename()

	if err := s.storage.DeleteFile(ctx, filename); err != nil {
		return &coreerrors.StorageError{Op: "delete", Path: filename, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	remaining, found := s.photos.Remove(filepath)
	if !found {
		s.deps.Logger.Warn("Deleted photo had no index entry", map[string]interface{}{
			"filepath": filepath,
		})
	}
	s.photos = remaining

	if err := s.persistIndex(ctx); err != nil {
		return err
	}

	s.deps.Logger.Info("Photo deleted", map[string]interface{}{
		"filepath": filepath,
	})
	return nil
}

// Share hands a photo to the platform share surface. In a web context a
// failed or unavailable surface falls back to a file download; the error
// propagates only when the fallback path fails too. Native share errors are
// logged and returned.
func (s *Service) Share(ctx context.Context, photo domain.UserPhoto) error {
	req, err := s.env.BuildShare(ctx, &photo, s.storage)
	if err != nil {
		s.deps.Logger.Error("Failed to build share payload", map[string]interface{}{
			"filepath": photo.Filepath,
			"error":    err.Error(),
		})
		return err
	}

	shareErr := errors.New("share surface unavailable")
	if s.surface != nil {
		shareErr = s.surface.Share(ctx, req)
		if shareErr == nil {
			return nil
		}
		s.deps.Logger.Warn("Share surface failed", map[string]interface{}{
			"filepath": photo.Filepath,
			"error":    shareErr.Error(),
		})
	}

	// Download fallback applies only when the payload carries bytes, which
	// is the web-context shape; native payloads carry a URI and their
	// errors propagate.
	if s.fallback != nil && len(req.Files) > 0 {
		f := req.Files[0]
		if err := s.fallback.Download(ctx, f.Name, f.Data); err != nil {
			s.deps.Logger.Error("Share fallback failed", map[string]interface{}{
				"filepath": photo.Filepath,
				"error":    err.Error(),
			})
			return err
		}
		return nil
	}

	s.deps.Logger.Error("Share failed", map[string]interface{}{
		"filepath": photo.Filepath,
		"error":    shareErr.Error(),
	})
	return shareErr
}

// ReadBytes returns a stored photo's raw bytes. The filepath may be a full
// URI; only the last path segment addresses storage.
func (s *Service) ReadBytes(ctx context.Context, filepath string) ([]byte, error) {
	if filepath == "" {
		return nil, &coreerrors.ValidationError{Field: "filepath", Message: "filepath cannot be empty"}
	}

	ref := domain.UserPhoto{Filepath: filepath}
	filename := ref.Filename()

	data, err := s.storage.ReadFile(ctx, filename)
	if err != nil {
		return nil, &coreerrors.StorageError{Op: "read", Path: filename, Err: err}
	}
	return data, nil
}

// Photos returns the current in-memory list, newest first
func (s *Service) Photos() []domain.UserPhoto {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// persistIndex rewrites the full index; callers hold mu
func (s *Service) persistIndex(ctx context.Context) error {
	data, err := json.Marshal(s.photos)
	if err != nil {
		return coreerrors.WrapError(err, "encoding photo index")
	}
	if err := s.deps.KV.Set(ctx, indexKey, data, 0); err != nil {
		return coreerrors.WrapError(err, "persisting photo index")
	}
	return nil
}

// snapshot copies the list so callers cannot mutate owned state; callers
// hold mu
func (s *Service) snapshot() []domain.UserPhoto {
	out := make([]domain.UserPhoto, len(s.photos))
	copy(out, s.photos)
	return out
}
