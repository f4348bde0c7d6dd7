// ABOUTME: Link neutralizer removes navigational attributes from anchors
// ABOUTME: Keeps preview cards from being independently clickable-through

package preview

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// linkAttrs are the navigational attributes removed from every anchor
var linkAttrs = []string{"href", "target", "rel"}

// StripLinks removes href, target and rel from every anchor element while
// leaving the anchor's text content and surrounding markup untouched.
// Idempotent: applying twice yields the same result as applying once.
func StripLinks(markup string) string {
	if markup == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return markup
	}

	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		for _, attr := range linkAttrs {
			s.RemoveAttr(attr)
		}
	})

	out, err := doc.Find("body").Html()
	if err != nil {
		return markup
	}
	return out
}
