// ABOUTME: Word-bounded truncator cuts markup to at most N visible words
// ABOUTME: Walks text-bearing leaves in document order, preserving tag structure

package preview

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// voidTags render without content and are exempt from empty-element pruning
var voidTags = map[string]bool{
	"br": true,
	"hr": true,
}

// TruncateToWords cuts a markup fragment to at most limit words measured on
// its plain-text rendering. Fragments at or under the limit are returned
// byte-identical. Indexing is rune-aware throughout, so a multi-codepoint
// character is never split.
func TruncateToWords(markup string, limit int) string {
	if markup == "" {
		return ""
	}

	wrapper, err := parseFragment(markup)
	if err != nil {
		return ""
	}

	words := Words(textContent(wrapper))
	if len(words) <= limit {
		return markup
	}

	// Target offset into the plain-text rendering: the length of the first
	// limit words joined by single spaces.
	target := 0
	if limit > 0 {
		target = len([]rune(strings.Join(words[:limit], " ")))
	}

	cutTextLeaves(wrapper, target)
	pruneEmpty(wrapper)

	return strings.TrimSpace(renderChildren(wrapper))
}

// cutTextLeaves walks text leaves in document order, truncating the leaf
// whose span crosses the target offset and clearing every later leaf. Void
// elements past the cut are dropped too, so truncation cannot leave a
// dangling trailing <br> or <hr>.
func cutTextLeaves(wrapper *html.Node, target int) {
	consumed := 0
	done := false

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if done {
				n.Data = ""
				return
			}
			runes := []rune(n.Data)
			if consumed+len(runes) < target {
				consumed += len(runes)
				return
			}
			n.Data = string(runes[:cutOffset(runes, target-consumed)])
			done = true
			return
		}
		c := n.FirstChild
		for c != nil {
			next := c.NextSibling
			if done && c.Type == html.ElementNode && voidTags[strings.ToLower(c.Data)] {
				n.RemoveChild(c)
			} else {
				walk(c)
			}
			c = next
		}
	}
	walk(wrapper)
}

// cutOffset picks the cut index within a leaf: the nearest whitespace
// boundary at or before offset, never mid-word. If no whitespace precedes
// the offset, the raw offset is used.
func cutOffset(runes []rune, offset int) int {
	if offset >= len(runes) {
		return len(runes)
	}
	if unicode.IsSpace(runes[offset]) {
		return offset
	}
	for i := offset; i > 0; i-- {
		if unicode.IsSpace(runes[i-1]) {
			return i - 1
		}
	}
	return offset
}

// pruneEmpty removes elements left without non-blank text after the cut,
// so truncation does not leave dangling empty tags (e.g. an empty list
// item). Void elements are kept.
func pruneEmpty(n *html.Node) {
	c := n.FirstChild
	for c != nil {
		next := c.NextSibling
		pruneEmpty(c)
		if c.Type == html.ElementNode && !voidTags[strings.ToLower(c.Data)] && !hasText(c) {
			n.RemoveChild(c)
		}
		c = next
	}
}
