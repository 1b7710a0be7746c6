package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// renderMarkdown converts a description subtree to a markdown-like plain
// text form: headings get # prefixes, emphasis keeps ** / * wrappers, lists
// become bullet or numbered lines and links become [text](href). Reading
// order and structure survive because this text is the only input the
// cleaning chains ever see.
func renderMarkdown(root *html.Node) string {
	var sb strings.Builder
	renderBlock(&sb, root)
	out := blankRuns.ReplaceAllString(sb.String(), "\n\n")
	return strings.TrimSpace(out)
}

func renderBlock(sb *strings.Builder, n *html.Node) {
	if n == nil {
		return
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style":
			return
		case "h1", "h2", "h3", "h4", "h5", "h6":
			level := int(n.Data[1] - '0')
			sb.WriteString("\n\n")
			sb.WriteString(strings.Repeat("#", level))
			sb.WriteString(" ")
			sb.WriteString(renderInline(n))
			sb.WriteString("\n\n")
			return
		case "ul":
			sb.WriteString("\n\n")
			for _, li := range childItems(n) {
				sb.WriteString("- ")
				sb.WriteString(renderInline(li))
				sb.WriteString("\n")
			}
			sb.WriteString("\n")
			return
		case "ol":
			sb.WriteString("\n\n")
			for i, li := range childItems(n) {
				sb.WriteString(fmt.Sprintf("%d. ", i+1))
				sb.WriteString(renderInline(li))
				sb.WriteString("\n")
			}
			sb.WriteString("\n")
			return
		case "p", "div", "section":
			sb.WriteString("\n\n")
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				renderBlock(sb, c)
			}
			sb.WriteString("\n\n")
			return
		case "br":
			sb.WriteString("\n")
			return
		case "strong", "b", "em", "i", "a", "span":
			sb.WriteString(renderInline(n))
			return
		}
	}
	if n.Type == html.TextNode {
		sb.WriteString(collapseSpace(n.Data))
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderBlock(sb, c)
	}
}

// renderInline flattens a node to a single line, keeping emphasis and links.
func renderInline(n *html.Node) string {
	var sb strings.Builder
	var walker func(*html.Node)
	walker = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(collapseSpace(n.Data))
			return
		}
		if n.Type != html.ElementNode {
			return
		}
		switch n.Data {
		case "script", "style":
			return
		case "strong", "b":
			sb.WriteString("**")
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walker(c)
			}
			sb.WriteString("**")
			return
		case "em", "i":
			sb.WriteString("*")
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walker(c)
			}
			sb.WriteString("*")
			return
		case "a":
			text := textContent(n)
			href := attr(n, "href")
			if href != "" && text != "" {
				sb.WriteString(fmt.Sprintf("[%s](%s)", text, href))
				return
			}
			sb.WriteString(text)
			return
		case "br":
			sb.WriteString(" ")
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walker(c)
		}
	}
	walker(n)
	return strings.TrimSpace(collapseGaps(sb.String()))
}

func childItems(list *html.Node) []*html.Node {
	var items []*html.Node
	for c := list.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "li" {
			items = append(items, c)
		}
	}
	return items
}

func collapseSpace(s string) string {
	if strings.TrimSpace(s) == "" {
		return " "
	}
	fields := strings.Fields(s)
	out := strings.Join(fields, " ")
	if strings.HasPrefix(s, " ") || strings.HasPrefix(s, "\n") || strings.HasPrefix(s, "\t") {
		out = " " + out
	}
	if strings.HasSuffix(s, " ") || strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\t") {
		out += " "
	}
	return out
}

var gapRuns = regexp.MustCompile(` {2,}`)

func collapseGaps(s string) string {
	return gapRuns.ReplaceAllString(s, " ")
}
