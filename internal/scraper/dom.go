package scraper

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Small helpers over x/net/html for the selector cascades. The markup we
// parse drifts over time, so everything here is lookup-by-class-prefix and
// nil-tolerant rather than a strict selector engine.

func parseDocument(body []byte) (*html.Node, error) {
	return html.Parse(bytes.NewReader(body))
}

func attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func hasClasses(n *html.Node, classes ...string) bool {
	for _, c := range classes {
		if !hasClass(n, c) {
			return false
		}
	}
	return true
}

// findNode walks the tree depth-first and returns the first node accepted
// by match, preserving document order.
func findNode(root *html.Node, match func(*html.Node) bool) *html.Node {
	if root == nil {
		return nil
	}
	if root.Type == html.ElementNode && match(root) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}
	return nil
}

func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walker func(*html.Node)
	walker = func(n *html.Node) {
		if n == nil {
			return
		}
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walker(c)
		}
	}
	walker(root)
	return out
}

func elementWithClass(tag, class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Data == tag && hasClass(n, class)
	}
}

func element(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == tag }
}

// textContent flattens all text under n, collapsing runs of whitespace.
func textContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walker func(*html.Node)
	walker = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walker(c)
		}
	}
	walker(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
