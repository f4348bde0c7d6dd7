// ABOUTME: Allow-list HTML sanitizer for externally-sourced rich text
// ABOUTME: Strips dangerous markup while preserving plain-text content

package preview

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// allowedTags is the explicit tag allow-list. Everything else is either
// dropped with its content (execution vectors) or unwrapped (text survives).
var allowedTags = map[string]bool{
	"a":    true,
	"p":    true,
	"b":    true,
	"i":    true,
	"u":    true,
	"br":   true,
	"span": true,
	"div":  true,
	"ul":   true,
	"ol":   true,
	"li":   true,
	"hr":   true,
	"code": true,
	"pre":  true,
}

// droppedTags lose their entire subtree, not just the tag. Script and style
// bodies are not user-visible text, so nothing of value is lost.
var droppedTags = map[string]bool{
	"script":   true,
	"style":    true,
	"iframe":   true,
	"object":   true,
	"embed":    true,
	"noscript": true,
	"svg":      true,
	"math":     true,
	"template": true,
}

// allowedAnchorAttrs is the per-tag attribute allow-list. Anchors are the
// only element that keeps any attributes at all.
var allowedAnchorAttrs = map[string]bool{
	"href":   true,
	"target": true,
	"rel":    true,
}

// Sanitize filters markup down to the tag and attribute allow-lists.
// Disallowed tags are removed while their text content is preserved; all
// event-handler attributes and javascript: URIs are neutralized. Empty input
// yields empty output, and malformed input degrades rather than failing.
func Sanitize(markup string) string {
	if markup == "" {
		return ""
	}

	wrapper, err := parseFragment(markup)
	if err != nil {
		return ""
	}

	sanitizeChildren(wrapper)
	return renderChildren(wrapper)
}

// sanitizeChildren rewrites parent's child list in place
func sanitizeChildren(parent *html.Node) {
	c := parent.FirstChild
	for c != nil {
		next := c.NextSibling

		switch c.Type {
		case html.TextNode:
			// text always survives
		case html.ElementNode:
			name := strings.ToLower(c.Data)
			switch {
			case droppedTags[name]:
				parent.RemoveChild(c)
			case !allowedTags[name]:
				sanitizeChildren(c)
				unwrap(parent, c)
			default:
				c.Attr = filterAttrs(name, c.Attr)
				sanitizeChildren(c)
			}
		default:
			// comments, doctypes and anything else the parser produced
			parent.RemoveChild(c)
		}

		c = next
	}
}

// unwrap hoists c's children into c's place and removes c
func unwrap(parent, c *html.Node) {
	for gc := c.FirstChild; gc != nil; {
		gcNext := gc.NextSibling
		c.RemoveChild(gc)
		parent.InsertBefore(gc, c)
		gc = gcNext
	}
	parent.RemoveChild(c)
}

// filterAttrs keeps only the allow-listed attributes for the tag
func filterAttrs(tag string, attrs []html.Attribute) []html.Attribute {
	if tag != "a" {
		return nil
	}

	kept := attrs[:0]
	for _, attr := range attrs {
		if attr.Namespace != "" {
			continue
		}
		key := strings.ToLower(attr.Key)
		if !allowedAnchorAttrs[key] {
			continue
		}
		if key == "href" && !safeHref(attr.Val) {
			continue
		}
		kept = append(kept, attr)
	}
	return kept
}

// safeHref rejects URI schemes that can execute script. Relative URLs and
// http/https/mailto pass.
func safeHref(val string) bool {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, val)
	lower := strings.ToLower(cleaned)

	colon := strings.Index(lower, ":")
	if colon < 0 {
		return true // relative
	}
	// a slash, query or fragment before the colon means it is not a scheme
	if i := strings.IndexAny(lower, "/?#"); i >= 0 && i < colon {
		return true
	}

	switch lower[:colon] {
	case "http", "https", "mailto":
		return true
	}
	return false
}
