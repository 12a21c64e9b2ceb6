package analyzer

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/fuzumoe/domsight-api/internal/fetcher"
)

// forEachElement visits every element node in document order. depth is the
// number of element ancestors, so the root element is at depth 0.
func forEachElement(doc *fetcher.Document, fn func(n *html.Node, depth int)) {
	var walk func(n *html.Node, depth int)
	walk = func(n *html.Node, depth int) {
		next := depth
		if n.Type == html.ElementNode {
			fn(n, depth)
			next++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, next)
		}
	}
	for _, root := range doc.Doc.Nodes {
		walk(root, 0)
	}
}

// attrVal returns the value of the named attribute and whether it exists.
func attrVal(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// classTokens normalizes the class attribute into whitespace-split tokens.
func classTokens(n *html.Node) []string {
	v, ok := attrVal(n, "class")
	if !ok {
		return nil
	}
	return strings.Fields(v)
}

// childElementCount counts direct element children.
func childElementCount(n *html.Node) int {
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			count++
		}
	}
	return count
}

// nodeText concatenates all text nodes beneath n.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
