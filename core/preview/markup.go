// ABOUTME: Shared markup-tree helpers for the preview pipeline
// ABOUTME: Parses HTML-ish fragments into x/net/html node trees and back

package preview

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parseFragment parses untrusted markup into a detached wrapper element whose
// children are the fragment's top-level nodes. Input is never validated as
// well-formed; the parser recovers from anything.
func parseFragment(markup string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}

	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, err
	}

	wrapper := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	for _, n := range nodes {
		wrapper.AppendChild(n)
	}
	return wrapper, nil
}

// renderChildren serializes the wrapper's children back to markup
func renderChildren(wrapper *html.Node) string {
	var buf bytes.Buffer
	for c := wrapper.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return ""
		}
	}
	return buf.String()
}

// textContent returns the concatenated text of all text-bearing leaves in
// document order, tags removed
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// hasText reports whether the node contains any non-blank text
func hasText(n *html.Node) bool {
	if n.Type == html.TextNode {
		return strings.TrimSpace(n.Data) != ""
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasText(c) {
			return true
		}
	}
	return false
}

// PlainText returns the plain-text rendering of a markup fragment.
// Malformed input degrades to whatever text the parser recovers.
func PlainText(markup string) string {
	if markup == "" {
		return ""
	}
	wrapper, err := parseFragment(markup)
	if err != nil {
		return ""
	}
	return textContent(wrapper)
}

// Words splits a plain-text string on runs of whitespace
func Words(text string) []string {
	return strings.Fields(text)
}

// WordCount returns the number of visible words in a markup fragment
func WordCount(markup string) int {
	return len(Words(PlainText(markup)))
}
