// ABOUTME: Thumbnail color extraction service for card and gallery placeholder backgrounds
// ABOUTME: Uses K-means clustering to find the most prominent color in an image

package services

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/EdlinOrg/prominentcolor"
	_ "golang.org/x/image/webp" // WebP support

	"memoria-app-api/core/domain"
	"memoria-app-api/core/interfaces"
)

const (
	defaultColorValue = 128
	colorCacheTTL     = 24 * time.Hour
	imageFetchTimeout = 10 * time.Second
	imageUserAgent    = "Mozilla/5.0 (compatible; MemoriaBot/1.0)"
)

// ThumbnailColorService handles color extraction from images
type ThumbnailColorService struct {
	deps       interfaces.Dependencies
	httpClient *http.Client
}

// NewThumbnailColorService creates a new thumbnail color service
func NewThumbnailColorService(deps interfaces.Dependencies) *ThumbnailColorService {
	return &ThumbnailColorService{
		deps: deps,
		httpClient: &http.Client{
			Timeout: imageFetchTimeout,
		},
	}
}

// ExtractColor extracts the prominent color from an image URL. Extraction
// failures degrade to the default gray rather than erroring; a card without
// its true color is better than a card without a background.
func (s *ThumbnailColorService) ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	if imageURL == "" {
		return s.defaultColor(), nil
	}

	if color := s.cachedColor(ctx, imageURL); color != nil {
		return color, nil
	}

	color, err := s.extractColorFromURL(ctx, imageURL)
	if err != nil {
		s.deps.Logger.Debug("Failed to extract color from thumbnail", map[string]interface{}{
			"url":   imageURL,
			"error": err.Error(),
		})
		color = s.defaultColor()
	}
	if color == nil {
		color = s.defaultColor()
	}

	if s.deps.KV != nil {
		cacheKey := fmt.Sprintf("thumbnailColor:%s", imageURL)
		cacheData := fmt.Sprintf("%d,%d,%d", color.R, color.G, color.B)
		_ = s.deps.KV.Set(ctx, cacheKey, []byte(cacheData), colorCacheTTL)
	}

	return color, nil
}

// ExtractColorBatch extracts colors for multiple URLs concurrently
func (s *ThumbnailColorService) ExtractColorBatch(ctx context.Context, imageURLs []string) map[string]*domain.RGBColor {
	results := make(map[string]*domain.RGBColor)
	var mu sync.Mutex
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, 5)

	for _, u := range imageURLs {
		wg.Add(1)
		go func(imageURL string) {
			defer wg.Done()

			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()

				color, err := s.ExtractColor(ctx, imageURL)
				if err != nil {
					return
				}

				mu.Lock()
				results[imageURL] = color
				mu.Unlock()

			case <-ctx.Done():
				return
			}
		}(u)
	}

	wg.Wait()
	return results
}

func (s *ThumbnailColorService) cachedColor(ctx context.Context, imageURL string) *domain.RGBColor {
	if s.deps.KV == nil {
		return nil
	}

	cacheKey := fmt.Sprintf("thumbnailColor:%s", imageURL)
	data, err := s.deps.KV.Get(ctx, cacheKey)
	if err != nil || data == nil {
		return nil
	}

	var color domain.RGBColor
	if _, err := fmt.Sscanf(string(data), "%d,%d,%d", &color.R, &color.G, &color.B); err != nil {
		return nil
	}
	return &color
}

// extractColorFromURL downloads the image and runs K-means clustering on it
func (s *ThumbnailColorService) extractColorFromURL(ctx context.Context, imageURL string) (color *domain.RGBColor, err error) {
	// prominentcolor can panic on degenerate images
	defer func() {
		if rec := recover(); rec != nil {
			color = s.defaultColor()
			err = fmt.Errorf("panic recovered: %v", rec)
		}
	}()

	parsedURL, parseErr := url.Parse(imageURL)
	if parseErr != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid image URL: %s", imageURL)
	}

	// SVG cannot be decoded as a raster image
	if strings.HasSuffix(strings.ToLower(imageURL), ".svg") {
		return nil, fmt.Errorf("SVG images are not supported")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", imageUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image has empty bounds")
	}

	imgNRGBA := image.NewNRGBA(bounds)
	draw.Draw(imgNRGBA, bounds, img, bounds.Min, draw.Src)

	colors, err := prominentcolor.KmeansWithAll(
		prominentcolor.ArgumentDefault,
		imgNRGBA,
		prominentcolor.DefaultK,
		1,
		prominentcolor.GetDefaultMasks(),
	)
	if err != nil || len(colors) == 0 {
		// Masks can reject the whole image; retry without them
		colors, err = prominentcolor.KmeansWithAll(
			prominentcolor.ArgumentDefault,
			imgNRGBA,
			prominentcolor.DefaultK,
			1,
			nil,
		)
		if err != nil || len(colors) == 0 {
			return nil, fmt.Errorf("no colors extracted from image")
		}
	}

	return &domain.RGBColor{
		R: uint8(colors[0].Color.R),
		G: uint8(colors[0].Color.G),
		B: uint8(colors[0].Color.B),
	}, nil
}

// defaultColor returns the default gray color
func (s *ThumbnailColorService) defaultColor() *domain.RGBColor {
	return &domain.RGBColor{
		R: defaultColorValue,
		G: defaultColorValue,
		B: defaultColorValue,
	}
}
