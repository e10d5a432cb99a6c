// Package html implements extraction techniques on top of the
// golang.org/x/net/html node tree.
package html

import (
	"strings"

	"github.com/pagemeta/pagemeta"
	"golang.org/x/net/html"
)

var _ pagemeta.Technique = (*Semantic)(nil)

// Semantic proposes candidates from the document's visible structure:
// heading text as titles, paragraph text as descriptions, and img sources
// as images. It is a noisy fallback for pages that carry no structured
// metadata, so it is usually configured last.
type Semantic struct{}

// NewSemantic creates a new Semantic technique.
func NewSemantic() *Semantic {
	return &Semantic{}
}

// Name returns the technique's identifier.
func (t *Semantic) Name() string {
	return "semantic"
}

// Extract walks the parsed node tree. Headings are collected level by level
// so every h1 outranks every h2 regardless of document position; paragraphs
// and images are collected in document order.
func (t *Semantic) Extract(markup string) (pagemeta.Candidates, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "failed to parse HTML: %v", err)
	}

	candidates := make(pagemeta.Candidates)

	for _, tag := range []string{"h1", "h2", "h3"} {
		for _, node := range findAll(root, tag) {
			if text := collapseWhitespace(textContent(node)); text != "" {
				candidates.Add(pagemeta.Titles, text)
			}
		}
	}

	for _, node := range findAll(root, "p") {
		if text := collapseWhitespace(textContent(node)); text != "" {
			candidates.Add(pagemeta.Descriptions, text)
		}
	}

	for _, node := range findAll(root, "img") {
		if src := strings.TrimSpace(attr(node, "src")); src != "" {
			candidates.Add(pagemeta.Images, src)
		}
	}

	return candidates, nil
}

// findAll returns all element nodes with the given tag in document order.
func findAll(root *html.Node, tag string) []*html.Node {
	var nodes []*html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			nodes = append(nodes, cur)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	dfs(root)
	return nodes
}

// textContent concatenates the text nodes under n, skipping script and
// style subtrees.
func textContent(n *html.Node) string {
	var b strings.Builder
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if cur.Type == html.ElementNode && (cur.Data == "script" || cur.Data == "style") {
			return
		}
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	dfs(n)
	return b.String()
}

// attr returns the value of the named attribute, or an empty string.
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

// collapseWhitespace trims and collapses runs of whitespace to single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
