// ABOUTME: Preview pipeline composes strip-links, sanitize and truncate
// ABOUTME: One deterministic transform from raw description to safe bounded markup

package preview

import "memoria-app-api/core/domain"

const (
	// DefaultWordLimit is the standard word limit for list/preview contexts
	DefaultWordLimit = 40

	// Ellipsis is the literal truncation marker appended to truncated
	// previews. It is not counted as a word.
	Ellipsis = "…"
)

// BuildPreview runs the full preview transform on a raw description.
//
// Order matters: links are neutralized before the word-count check since
// anchor attributes are not visible text, and sanitization follows
// link-stripping so it is the last security-relevant transform applied to
// untrusted input. Output is always safe to render as trusted HTML and never
// exceeds wordLimit words of visible text plus the ellipsis marker.
func BuildPreview(raw string, wordLimit int) domain.PreviewResult {
	if raw == "" {
		return domain.PreviewResult{}
	}

	clean := Sanitize(StripLinks(raw))
	if WordCount(clean) <= wordLimit {
		return domain.PreviewResult{ProcessedMarkup: clean}
	}

	return domain.PreviewResult{
		ProcessedMarkup: TruncateToWords(clean, wordLimit) + Ellipsis,
		IsTruncated:     true,
	}
}

// Pipeline is a preview transform with a fixed word limit, injected into
// services that process description fields in list contexts.
type Pipeline struct {
	wordLimit int
}

// NewPipeline creates a pipeline with the given word limit.
// A non-positive limit falls back to DefaultWordLimit.
func NewPipeline(wordLimit int) *Pipeline {
	if wordLimit <= 0 {
		wordLimit = DefaultWordLimit
	}
	return &Pipeline{wordLimit: wordLimit}
}

// Build runs the preview transform at the configured word limit
func (p *Pipeline) Build(raw string) domain.PreviewResult {
	return BuildPreview(raw, p.wordLimit)
}

// Detail applies only sanitization for full-content detail contexts;
// no link stripping, no truncation.
func (p *Pipeline) Detail(raw string) string {
	return Sanitize(raw)
}
